// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scorebook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/danielhkuo/regatta-console/csvtable"
	"github.com/danielhkuo/regatta-console/models"
)

// Backend is the capability the handlers depend on. *Client is the
// real implementation; tests substitute fakes.
type Backend interface {
	ListFiles(ctx context.Context) ([]models.FileInfo, error)
	GetFile(ctx context.Context, filePath string) (*models.ScoringFile, error)
	CreateFile(ctx context.Context, req models.CreateFileRequest) (string, error)
	UploadFile(ctx context.Context, filename string, size int64, r io.Reader) (*models.UploadFileResponse, error)
	ReplaceFile(ctx context.Context, filePath, filename string, size int64, r io.Reader) (*models.UploadFileResponse, error)
	DownloadFile(ctx context.Context, filename string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, filePath string) error
	AddRaces(ctx context.Context, filePath string, races []models.RaceData) error
	DeleteRace(ctx context.Context, filePath string, raceID int) error
	AddBoats(ctx context.Context, filePath string, boats []csvtable.Boat) error
	AddBoatFromCert(ctx context.Context, filePath, classID string, cert map[string]any) error
	UpdateBoat(ctx context.Context, filePath string, req models.UpdateBoatRequest) error
	DeleteBoat(ctx context.Context, filePath string, boatID int) error
	AddClass(ctx context.Context, filePath string, class models.ClassData) error
	DeleteClass(ctx context.Context, filePath, classID string) error
	ListTemplates(ctx context.Context) ([]string, error)
	FileHistory(ctx context.Context, filePath string) ([]models.BackupInfo, error)
	RestoreBackup(ctx context.Context, filePath, backupPath string) error
}

// Client talks to the remote scoring backend. It is injected into
// every handler that needs it; there is no package-level instance.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for the backend at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// StatusError is a non-2xx backend response.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode backend response: %w", err)
		}
	}
	return nil
}

// readErrorMessage pulls a detail/message/error field out of an error
// body, falling back to the raw text.
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var payload map[string]any
	if json.Unmarshal(raw, &payload) == nil {
		for _, key := range []string{"detail", "message", "error"} {
			if s, ok := payload[key].(string); ok && s != "" {
				return s
			}
		}
	}
	return string(raw)
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, query, body, contentType, out)
}

func filePathSegment(filePath string) string {
	return "/api/files/" + url.PathEscape(filePath)
}

// ListFiles returns all stored scoring files.
func (c *Client) ListFiles(ctx context.Context) ([]models.FileInfo, error) {
	var resp models.ListFilesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/files", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Files, nil
}

// GetFile fetches the parsed view of one scoring file.
func (c *Client) GetFile(ctx context.Context, filePath string) (*models.ScoringFile, error) {
	if err := ValidateFilePath(filePath); err != nil {
		return nil, err
	}
	var file models.ScoringFile
	if err := c.doJSON(ctx, http.MethodGet, "/api/files/get/"+url.PathEscape(filePath), nil, nil, &file); err != nil {
		return nil, err
	}
	file.FilePath = filePath
	return &file, nil
}

// CreateFile creates a scoring file from a template and returns its
// path.
func (c *Client) CreateFile(ctx context.Context, req models.CreateFileRequest) (string, error) {
	req.TemplatePath = SanitizeFilename(req.TemplatePath)
	req.Filename = SanitizeFilename(req.Filename)
	var resp models.CreateFileResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/files", nil, req, &resp); err != nil {
		return "", err
	}
	return resp.FilePath, nil
}

func (c *Client) multipartUpload(ctx context.Context, path string, query url.Values, filename string, size int64, r io.Reader) (*models.UploadFileResponse, error) {
	if err := ValidateUpload(filename, size); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", SanitizeFilename(filename))
	if err != nil {
		return nil, fmt.Errorf("build multipart form: %w", err)
	}
	n, err := io.Copy(part, io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if n > MaxUploadBytes {
		return nil, ErrUploadTooLarge
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("build multipart form: %w", err)
	}

	var resp models.UploadFileResponse
	if err := c.do(ctx, http.MethodPost, path, query, &buf, mw.FormDataContentType(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UploadFile uploads a new .orcsc file.
func (c *Client) UploadFile(ctx context.Context, filename string, size int64, r io.Reader) (*models.UploadFileResponse, error) {
	return c.multipartUpload(ctx, "/api/files/upload", nil, filename, size, r)
}

// ReplaceFile uploads a new version over an existing file.
func (c *Client) ReplaceFile(ctx context.Context, filePath, filename string, size int64, r io.Reader) (*models.UploadFileResponse, error) {
	if err := ValidateFilePath(filePath); err != nil {
		return nil, err
	}
	query := url.Values{"file_path": {filePath}}
	return c.multipartUpload(ctx, "/api/files/update", query, filename, size, r)
}

// DownloadFile streams a stored file. The caller closes the reader.
func (c *Client) DownloadFile(ctx context.Context, filename string) (io.ReadCloser, error) {
	if err := ValidateFilePath(filename); err != nil {
		return nil, err
	}
	u := c.baseURL + "/api/files/download/" + url.PathEscape(SanitizeFilename(filename))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, &StatusError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}
	return resp.Body, nil
}

// DeleteFile removes a stored scoring file.
func (c *Client) DeleteFile(ctx context.Context, filePath string) error {
	if err := ValidateFilePath(filePath); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodDelete, filePathSegment(filePath), nil, nil, nil)
}

// AddRaces adds races to a file in one batched call.
func (c *Client) AddRaces(ctx context.Context, filePath string, races []models.RaceData) error {
	if err := ValidateFilePath(filePath); err != nil {
		return err
	}
	req := models.AddRacesRequest{Races: races}
	return c.doJSON(ctx, http.MethodPost, filePathSegment(filePath)+"/races", nil, req, nil)
}

// DeleteRace removes one race.
func (c *Client) DeleteRace(ctx context.Context, filePath string, raceID int) error {
	if err := ValidateFilePath(filePath); err != nil {
		return err
	}
	query := url.Values{
		"file_path": {filePath},
		"race_id":   {fmt.Sprint(raceID)},
	}
	return c.doJSON(ctx, http.MethodDelete, "/api/races", query, nil, nil)
}

// AddBoats adds boats to the fleet in one batched call.
func (c *Client) AddBoats(ctx context.Context, filePath string, boats []csvtable.Boat) error {
	if err := ValidateFilePath(filePath); err != nil {
		return err
	}
	req := models.AddBoatsRequest{Boats: boats}
	return c.doJSON(ctx, http.MethodPost, filePathSegment(filePath)+"/boats", nil, req, nil)
}

// AddBoatFromCert adds a boat from a registry certificate record,
// passed through verbatim.
func (c *Client) AddBoatFromCert(ctx context.Context, filePath, classID string, cert map[string]any) error {
	if err := ValidateFilePath(filePath); err != nil {
		return err
	}
	query := url.Values{"class_id": {classID}}
	return c.doJSON(ctx, http.MethodPost, filePathSegment(filePath)+"/boats/orcjson", query, cert, nil)
}

// UpdateBoat updates one fleet entry.
func (c *Client) UpdateBoat(ctx context.Context, filePath string, req models.UpdateBoatRequest) error {
	if err := ValidateFilePath(filePath); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPost, filePathSegment(filePath)+"/boats/update", nil, req, nil)
}

// DeleteBoat removes one fleet entry.
func (c *Client) DeleteBoat(ctx context.Context, filePath string, boatID int) error {
	if err := ValidateFilePath(filePath); err != nil {
		return err
	}
	query := url.Values{
		"file_path": {filePath},
		"boat_id":   {fmt.Sprint(boatID)},
	}
	return c.doJSON(ctx, http.MethodDelete, "/api/boats", query, nil, nil)
}

// AddClass adds a class definition.
func (c *Client) AddClass(ctx context.Context, filePath string, class models.ClassData) error {
	if err := ValidateFilePath(filePath); err != nil {
		return err
	}
	req := models.AddClassRequest{ClassData: class}
	return c.doJSON(ctx, http.MethodPost, filePathSegment(filePath)+"/classes", nil, req, nil)
}

// DeleteClass removes a class definition.
func (c *Client) DeleteClass(ctx context.Context, filePath, classID string) error {
	if err := ValidateFilePath(filePath); err != nil {
		return err
	}
	query := url.Values{
		"file_path": {filePath},
		"class_id":  {classID},
	}
	return c.doJSON(ctx, http.MethodDelete, "/api/classes", query, nil, nil)
}

// ListTemplates returns the available file templates.
func (c *Client) ListTemplates(ctx context.Context) ([]string, error) {
	var templates []string
	if err := c.doJSON(ctx, http.MethodGet, "/api/templates", nil, nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// FileHistory lists the retained prior versions of a file.
func (c *Client) FileHistory(ctx context.Context, filePath string) ([]models.BackupInfo, error) {
	if err := ValidateFilePath(filePath); err != nil {
		return nil, err
	}
	var resp models.FileHistoryResponse
	if err := c.doJSON(ctx, http.MethodGet, filePathSegment(filePath)+"/history", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Backups, nil
}

// RestoreBackup restores a file from one of its retained versions.
func (c *Client) RestoreBackup(ctx context.Context, filePath, backupPath string) error {
	if err := ValidateFilePath(filePath); err != nil {
		return err
	}
	req := models.RestoreBackupRequest{BackupPath: backupPath}
	return c.doJSON(ctx, http.MethodPost, filePathSegment(filePath)+"/history/restore", nil, req, nil)
}
