// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/regatta-console/csvtable"
	"github.com/danielhkuo/regatta-console/middleware"
	"github.com/danielhkuo/regatta-console/models"
	"github.com/danielhkuo/regatta-console/scorebook"
	"github.com/danielhkuo/regatta-console/sessions"
)

// maxCSVBytes caps uploaded CSV files at 10 MiB. Import files are
// small; anything bigger is a mistake.
const maxCSVBytes = 10 << 20

// previewRows is how many rows the upload response previews.
const previewRows = 5

type ImportHandler struct {
	store   *sessions.Store
	backend scorebook.Backend
}

func NewImportHandler(store *sessions.Store, backend scorebook.Backend) *ImportHandler {
	return &ImportHandler{store: store, backend: backend}
}

func sessionResponse(s *sessions.Session) models.ImportSessionResponse {
	filtered := s.FilteredRows()
	preview := filtered
	if len(preview) > previewRows {
		preview = preview[:previewRows]
	}
	return models.ImportSessionResponse{
		ID:            s.ID,
		Header:        s.Header,
		RowCount:      len(s.Rows),
		Preview:       preview,
		ParseErrors:   s.ParseErrors,
		Mapping:       s.Mapping,
		Filter:        s.Filter,
		Filtered:      filtered,
		Selected:      s.Selected,
		AllSelected:   s.AllSelected(),
		Indeterminate: s.Indeterminate(),
		Boats:         s.Boats(),
	}
}

// Upload handles POST /api/imports. It parses the multipart CSV and
// opens a wizard session. Parse errors are reported in the response as
// warnings; only an unreadable file fails the upload.
func (h *ImportHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxCSVBytes); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	if header.Size > maxCSVBytes {
		middleware.ErrorResponse(w, http.StatusBadRequest, "CSV file exceeds the 10 MiB limit")
		return
	}

	tbl, err := csvtable.Parse(file)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Could not parse CSV: "+err.Error())
		return
	}
	if len(tbl.Header) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "CSV file has no header row")
		return
	}

	s, err := h.store.Create(tbl)
	if err != nil {
		slog.Error("failed to create import session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create import session")
		return
	}

	slog.Info("import session created", "session_id", s.ID, "rows", len(s.Rows), "parse_errors", len(s.ParseErrors))
	middleware.JSONResponse(w, http.StatusCreated, sessionResponse(s))
}

// Get handles GET /api/imports/{id}
func (h *ImportHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, sessionResponse(s))
}

// SetMapping handles PUT /api/imports/{id}/mapping
func (h *ImportHandler) SetMapping(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var req models.SetMappingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	mapping := csvtable.Mapping{YachtName: req.YachtName, SailNo: req.SailNo, ClassID: req.ClassID}
	for _, col := range []string{mapping.YachtName, mapping.SailNo, mapping.ClassID} {
		if col != "" && !hasColumn(s.Header, col) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "unknown column: "+col)
			return
		}
	}

	s, err := h.store.SetMapping(s.ID, mapping)
	if err != nil {
		slog.Error("failed to update mapping", "session_id", s.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update session")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, sessionResponse(s))
}

// SetFilter handles PUT /api/imports/{id}/filter
func (h *ImportHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var req models.SetFilterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Column != "" && !hasColumn(s.Header, req.Column) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "unknown column: "+req.Column)
		return
	}

	s, err := h.store.SetFilter(s.ID, csvtable.Filter{Column: req.Column, Value: req.Value})
	if err != nil {
		slog.Error("failed to update filter", "session_id", s.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update session")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, sessionResponse(s))
}

// SetSelection handles PUT /api/imports/{id}/selection
func (h *ImportHandler) SetSelection(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var req models.SetSelectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var err error
	switch req.Action {
	case models.SelectionToggle:
		s, err = h.store.Toggle(s.ID, req.Index)
	case models.SelectionAll:
		s, err = h.store.SelectAll(s.ID)
	case models.SelectionClear:
		s, err = h.store.ClearSelection(s.ID)
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "action must be toggle, all, or clear")
		return
	}
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	middleware.JSONResponse(w, http.StatusOK, sessionResponse(s))
}

// Values handles GET /api/imports/{id}/values?column=...
func (h *ImportHandler) Values(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	column := r.URL.Query().Get("column")
	if column == "" || !hasColumn(s.Header, column) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "column query parameter must name a CSV column")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.DistinctValuesResponse{
		Column: column,
		Values: csvtable.DistinctValues(s.Rows, column),
	})
}

// Commit handles POST /api/imports/{id}/commit?file_path=...
// The derived boats go to the backend in one batched call; the session
// is deleted only after the backend accepts them.
func (h *ImportHandler) Commit(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	filePath := r.URL.Query().Get("file_path")
	if filePath == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file_path is required")
		return
	}
	if !s.Mapping.Complete() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "yacht name and class columns must be mapped before import")
		return
	}

	boats := s.Boats()
	if len(boats) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "no rows selected for import")
		return
	}

	if err := h.backend.AddBoats(r.Context(), filePath, boats); err != nil {
		slog.Error("failed to import boats", "session_id", s.ID, "file_path", filePath, "error", err)
		backendError(w, err)
		return
	}

	if err := h.store.Delete(s.ID); err != nil {
		slog.Error("failed to delete committed session", "session_id", s.ID, "error", err)
	}

	slog.Info("boats imported", "session_id", s.ID, "file_path", filePath, "count", len(boats))
	middleware.JSONResponse(w, http.StatusOK, models.CommitImportResponse{Imported: len(boats)})
}

// Delete handles DELETE /api/imports/{id}
func (h *ImportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}
	if err := h.store.Delete(id); err != nil {
		slog.Error("failed to delete session", "session_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ImportHandler) loadSession(w http.ResponseWriter, r *http.Request) (*sessions.Session, bool) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return nil, false
	}
	s, err := h.store.Get(id)
	if errors.Is(err, sessions.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Import session not found")
		return nil, false
	}
	if err != nil {
		slog.Error("failed to load session", "session_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load session")
		return nil, false
	}
	return s, true
}

func hasColumn(header []string, name string) bool {
	for _, col := range header {
		if col == name {
			return true
		}
	}
	return false
}
