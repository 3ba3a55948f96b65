// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"github.com/danielhkuo/regatta-console/middleware"
	"github.com/danielhkuo/regatta-console/models"
	"github.com/danielhkuo/regatta-console/orcdb"
)

// Registry is the certificate-registry capability the handler needs.
type Registry interface {
	Countries(ctx context.Context) ([]models.Country, error)
	Certificates(ctx context.Context, countryID, family string) ([]models.Certificate, error)
	AllCertificates(ctx context.Context, countryID string) ([]models.Certificate, error)
}

type CertHandler struct {
	registry Registry
}

func NewCertHandler(registry Registry) *CertHandler {
	return &CertHandler{registry: registry}
}

// Countries handles GET /api/orcdb/countries
func (h *CertHandler) Countries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.registry.Countries(r.Context())
	if err != nil {
		slog.Error("failed to fetch country list", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to fetch country list")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.CountriesResponse{Countries: countries})
}

// Certificates handles GET /api/orcdb/certs?country=...&family=...&name=...&sail=...
// Without a family it merges all families; name and sail are
// case-insensitive substring filters.
func (h *CertHandler) Certificates(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	country := query.Get("country")
	if country == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "country is required")
		return
	}

	family := query.Get("family")
	var (
		certs []models.Certificate
		err   error
	)
	if family == "" {
		certs, err = h.registry.AllCertificates(r.Context(), country)
	} else {
		if !slices.Contains(orcdb.Families, family) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "family must be one of ORC, NS, DH")
			return
		}
		certs, err = h.registry.Certificates(r.Context(), country, family)
	}
	if err != nil {
		slog.Error("failed to fetch certificates", "country", country, "family", family, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to fetch certificates")
		return
	}

	certs = orcdb.FilterCertificates(certs, query.Get("name"), query.Get("sail"))
	middleware.JSONResponse(w, http.StatusOK, models.CertificatesResponse{Certificates: certs})
}
