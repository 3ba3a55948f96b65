// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scorebook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/regatta-console/csvtable"
	"github.com/danielhkuo/regatta-console/models"
)

func TestGetFileEscapesPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		json.NewEncoder(w).Encode(models.ScoringFile{Event: models.EventData{EventTitle: "Fall Cup"}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	file, err := client.GetFile(context.Background(), "fall cup/2025.orcsc")
	if err != nil {
		t.Fatalf("GetFile failed: %v", err)
	}

	if !strings.HasPrefix(gotPath, "/api/files/get/") {
		t.Errorf("Unexpected path %q", gotPath)
	}
	if strings.Count(strings.TrimPrefix(gotPath, "/api/files/get/"), "/") != 0 {
		t.Errorf("File path should be a single escaped segment, got %q", gotPath)
	}
	if file.FilePath != "fall cup/2025.orcsc" {
		t.Errorf("Expected FilePath to be stamped onto the result, got %q", file.FilePath)
	}
	if file.Event.EventTitle != "Fall Cup" {
		t.Errorf("Expected event title decoded, got %q", file.Event.EventTitle)
	}
}

func TestGetFileRejectsEmptyPath(t *testing.T) {
	client := NewClient("http://backend.test")
	if _, err := client.GetFile(context.Background(), "  "); !errors.Is(err, ErrEmptyFilePath) {
		t.Errorf("Expected ErrEmptyFilePath without any network call, got %v", err)
	}
}

func TestAddBoatsSendsBatch(t *testing.T) {
	var got models.AddBoatsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sail := "USA 123"
	boats := []csvtable.Boat{
		{YachtName: "Orion", SailNo: &sail, ClassID: "A"},
		{YachtName: "Comet", ClassID: "B"},
	}

	client := NewClient(srv.URL)
	if err := client.AddBoats(context.Background(), "file.orcsc", boats); err != nil {
		t.Fatalf("AddBoats failed: %v", err)
	}

	if len(got.Boats) != 2 {
		t.Fatalf("Expected 2 boats in one request, got %d", len(got.Boats))
	}
	if got.Boats[1].SailNo != nil {
		t.Errorf("Expected absent sail number to stay absent, got %v", *got.Boats[1].SailNo)
	}
}

func TestDeleteRaceUsesQueryParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if err := client.DeleteRace(context.Background(), "file.orcsc", 7); err != nil {
		t.Fatalf("DeleteRace failed: %v", err)
	}
	if !strings.Contains(gotQuery, "race_id=7") || !strings.Contains(gotQuery, "file_path=file.orcsc") {
		t.Errorf("Unexpected query %q", gotQuery)
	}
}

func TestStatusErrorCarriesBackendDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "no such file"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.ListFiles(context.Background())
	if err == nil {
		t.Fatal("Expected error")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Expected StatusError, got %T: %v", err, err)
	}
	if statusErr.Status != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", statusErr.Status)
	}
	if statusErr.Message != "no such file" {
		t.Errorf("Expected detail extracted, got %q", statusErr.Message)
	}
}

func TestUploadFileMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("Expected multipart form: %v", err)
		}
		f, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("Expected file part: %v", err)
		}
		defer f.Close()
		if header.Filename != "regatta.orcsc" {
			t.Errorf("Expected filename regatta.orcsc, got %q", header.Filename)
		}
		content, _ := io.ReadAll(f)
		if string(content) != "<orcsc/>" {
			t.Errorf("Unexpected file content %q", content)
		}
		json.NewEncoder(w).Encode(models.UploadFileResponse{Filename: "regatta.orcsc", Path: "files/regatta.orcsc"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	body := strings.NewReader("<orcsc/>")
	resp, err := client.UploadFile(context.Background(), "regatta.orcsc", int64(body.Len()), body)
	if err != nil {
		t.Fatalf("UploadFile failed: %v", err)
	}
	if resp.Path != "files/regatta.orcsc" {
		t.Errorf("Expected stored path back, got %q", resp.Path)
	}
}

// zeroReader yields an endless stream of zero bytes.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func TestUploadFileStreamAtSizeLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.Copy(io.Discard, r.Body); err != nil {
			t.Errorf("Failed to drain upload: %v", err)
		}
		json.NewEncoder(w).Encode(models.UploadFileResponse{Filename: "big.orcsc", Path: "files/big.orcsc"})
	}))
	defer srv.Close()

	// The multipart envelope adds boundary and header bytes on top of
	// the file content; only the content counts against the cap
	client := NewClient(srv.URL)
	body := io.LimitReader(zeroReader{}, MaxUploadBytes)
	if _, err := client.UploadFile(context.Background(), "big.orcsc", MaxUploadBytes, body); err != nil {
		t.Errorf("Expected an upload of exactly the cap to pass, got %v", err)
	}
}

func TestUploadFileRejectsOversizeStream(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	// Declared size is unknown; only reading the stream reveals the
	// overrun
	client := NewClient(srv.URL)
	body := io.LimitReader(zeroReader{}, MaxUploadBytes+1)
	_, err := client.UploadFile(context.Background(), "big.orcsc", -1, body)
	if !errors.Is(err, ErrUploadTooLarge) {
		t.Errorf("Expected ErrUploadTooLarge, got %v", err)
	}
	if called {
		t.Error("Expected no backend request for an oversize stream")
	}
}

func TestUploadFileRejectsBadExtensionLocally(t *testing.T) {
	client := NewClient("http://backend.test")
	_, err := client.UploadFile(context.Background(), "regatta.csv", 10, strings.NewReader("x"))
	if !errors.Is(err, ErrBadExtension) {
		t.Errorf("Expected ErrBadExtension, got %v", err)
	}
}

func TestAddBoatFromCertPassesRecordThrough(t *testing.T) {
	var got map[string]any
	var gotClassID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClassID = r.URL.Query().Get("class_id")
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cert := map[string]any{"YachtName": "Orion", "CDL": 9.1, "RefNo": "ABC123"}
	client := NewClient(srv.URL)
	if err := client.AddBoatFromCert(context.Background(), "file.orcsc", "A", cert); err != nil {
		t.Fatalf("AddBoatFromCert failed: %v", err)
	}

	if gotClassID != "A" {
		t.Errorf("Expected class_id=A, got %q", gotClassID)
	}
	if got["RefNo"] != "ABC123" {
		t.Errorf("Expected certificate record forwarded verbatim, got %v", got)
	}
}
