// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package orcdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/regatta-console/models"
)

const countryListXML = `<?xml version="1.0"?>
<ROOT>
  <DATA>
    <ROW><CountryId>USA</CountryId><CountryName>United States</CountryName></ROW>
    <ROW><CountryId>GBR</CountryId><CountryName>Great Britain</CountryName></ROW>
    <ROW><CountryId>USA</CountryId><CountryName>United States</CountryName></ROW>
    <ROW><CountryId></CountryId><CountryName>Nowhere</CountryName></ROW>
  </DATA>
</ROOT>`

func TestCountries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, countryListXML)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	countries, err := client.Countries(context.Background())
	if err != nil {
		t.Fatalf("Countries failed: %v", err)
	}

	if len(countries) != 2 {
		t.Fatalf("Expected 2 countries after dedup, got %d: %v", len(countries), countries)
	}
	if countries[0].ID != "USA" || countries[1].ID != "GBR" {
		t.Errorf("Expected first-occurrence order USA, GBR; got %v", countries)
	}
}

func TestCountriesRegistryDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.Countries(context.Background()); err == nil {
		t.Fatal("Expected error for non-200 registry response")
	}
}

func TestCertificates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("action") != "DownRMS" || q.Get("CountryId") != "USA" || q.Get("ext") != "json" {
			t.Errorf("Unexpected query %v", q)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"rms": []map[string]any{
				{"YachtName": "Orion", "SailNo": "USA 123", "IssueDate": "2025-04-01", "CDL": 9.1},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	certs, err := client.Certificates(context.Background(), "USA", "ORC")
	if err != nil {
		t.Fatalf("Certificates failed: %v", err)
	}

	if len(certs) != 1 {
		t.Fatalf("Expected 1 certificate, got %d", len(certs))
	}
	cert := certs[0]
	if cert.YachtName != "Orion" || cert.SailNo != "USA 123" || cert.CertDate != "2025-04-01" {
		t.Errorf("Unexpected certificate %+v", cert)
	}
	if cert.CertType != "ORC" {
		t.Errorf("Expected CertType ORC, got %q", cert.CertType)
	}
	if cert.Raw["CDL"] != 9.1 {
		t.Errorf("Expected raw record preserved, got %v", cert.Raw)
	}
}

func TestAllCertificatesToleratesFamilyFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		family := r.URL.Query().Get("Family")
		if family == "NS" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"rms": []map[string]any{
				{"YachtName": "Boat " + family, "SailNo": "1", "IssueDate": "2025-01-01"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	certs, err := client.AllCertificates(context.Background(), "USA")
	if err != nil {
		t.Fatalf("AllCertificates failed: %v", err)
	}

	if len(certs) != 2 {
		t.Fatalf("Expected certificates from the 2 healthy families, got %d", len(certs))
	}
	// Merged in fixed family order: ORC then DH
	if certs[0].CertType != "ORC" || certs[1].CertType != "DH" {
		t.Errorf("Expected ORC then DH, got %v", certs)
	}
}

func TestAllCertificatesDeduplicates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"rms": []map[string]any{
				{"YachtName": "Orion", "SailNo": "USA 123", "IssueDate": "2025-04-01"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	certs, err := client.AllCertificates(context.Background(), "USA")
	if err != nil {
		t.Fatalf("AllCertificates failed: %v", err)
	}

	// Same record per family but distinct CertType, so all three stay
	if len(certs) != 3 {
		t.Errorf("Expected 3 certificates, got %d", len(certs))
	}
}

func TestFilterCertificates(t *testing.T) {
	certs := []models.Certificate{
		{YachtName: "Zephyr", SailNo: "USA 9"},
		{YachtName: "Orion", SailNo: "GBR 4"},
		{YachtName: "Orion II", SailNo: "USA 12"},
	}

	got := FilterCertificates(certs, "orion", "")
	if len(got) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(got))
	}
	if got[0].YachtName != "Orion" || got[1].YachtName != "Orion II" {
		t.Errorf("Expected results sorted by yacht name, got %v", got)
	}

	got = FilterCertificates(certs, "orion", "usa")
	if len(got) != 1 || got[0].YachtName != "Orion II" {
		t.Errorf("Expected combined filters to intersect, got %v", got)
	}

	got = FilterCertificates(certs, "", "")
	if len(got) != 3 {
		t.Errorf("Empty filters should match everything, got %d", len(got))
	}
}
