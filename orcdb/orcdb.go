// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package orcdb

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/regatta-console/models"
)

// Families is the set of certificate families fetched for a country.
var Families = []string{"ORC", "NS", "DH"}

// Client queries the public ORC certificate registry. The registry is
// best effort: no SLA, uncontrolled response shapes.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for the registry at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// countryXML matches the registry's country-list XML. ROW elements
// appear at varying depths, so the decoder walks for them by name.
type countryRow struct {
	CountryID   string `xml:"CountryId"`
	CountryName string `xml:"CountryName"`
}

// Countries fetches the registry's country list. Duplicate IDs are
// dropped, keeping first occurrence order.
func (c *Client) Countries(ctx context.Context) ([]models.Country, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("registry request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry returned %d", resp.StatusCode)
	}

	countries := []models.Country{}
	seen := make(map[string]bool)
	decoder := xml.NewDecoder(resp.Body)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse registry XML: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "ROW" {
			continue
		}
		var row countryRow
		if err := decoder.DecodeElement(&row, &start); err != nil {
			return nil, fmt.Errorf("parse registry XML: %w", err)
		}
		if row.CountryID == "" || row.CountryName == "" || seen[row.CountryID] {
			continue
		}
		seen[row.CountryID] = true
		countries = append(countries, models.Country{ID: row.CountryID, Name: row.CountryName})
	}
	return countries, nil
}

// rmsEnvelope is the registry's certificate download shape.
type rmsEnvelope struct {
	RMS []map[string]any `json:"rms"`
}

// Certificates fetches one family of certificates for a country.
func (c *Client) Certificates(ctx context.Context, countryID, family string) ([]models.Certificate, error) {
	query := url.Values{
		"action":    {"DownRMS"},
		"CountryId": {countryID},
		"Family":    {family},
		"ext":       {"json"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("registry request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry returned %d", resp.StatusCode)
	}

	var envelope rmsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode registry response: %w", err)
	}

	certs := make([]models.Certificate, 0, len(envelope.RMS))
	for _, raw := range envelope.RMS {
		certs = append(certs, models.Certificate{
			YachtName: stringField(raw, "YachtName"),
			SailNo:    stringField(raw, "SailNo"),
			CertDate:  stringField(raw, "IssueDate"),
			CertType:  family,
			Raw:       raw,
		})
	}
	return certs, nil
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// AllCertificates fetches every family for a country concurrently and
// merges the results, deduplicated by name|sail|date|type. A failing
// family contributes nothing rather than failing the whole lookup.
func (c *Client) AllCertificates(ctx context.Context, countryID string) ([]models.Certificate, error) {
	var mu sync.Mutex
	byFamily := make(map[string][]models.Certificate, len(Families))

	g, gctx := errgroup.WithContext(ctx)
	for _, family := range Families {
		g.Go(func() error {
			certs, err := c.Certificates(gctx, countryID, family)
			if err != nil {
				slog.Warn("certificate family fetch failed", "country", countryID, "family", family, "error", err)
				return nil
			}
			mu.Lock()
			byFamily[family] = certs
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := []models.Certificate{}
	seen := make(map[string]bool)
	for _, family := range Families {
		for _, cert := range byFamily[family] {
			key := cert.YachtName + "|" + cert.SailNo + "|" + cert.CertDate + "|" + cert.CertType
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, cert)
		}
	}
	return merged, nil
}

// FilterCertificates keeps certificates matching the name and sail
// substrings (case-insensitive; empty matches everything) and returns
// them sorted by yacht name.
func FilterCertificates(certs []models.Certificate, name, sailNo string) []models.Certificate {
	name = strings.ToLower(name)
	sailNo = strings.ToLower(sailNo)

	out := []models.Certificate{}
	for _, cert := range certs {
		if name != "" && !strings.Contains(strings.ToLower(cert.YachtName), name) {
			continue
		}
		if sailNo != "" && !strings.Contains(strings.ToLower(cert.SailNo), sailNo) {
			continue
		}
		out = append(out, cert)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].YachtName < out[j].YachtName
	})
	return out
}
