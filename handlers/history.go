// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/regatta-console/middleware"
	"github.com/danielhkuo/regatta-console/models"
	"github.com/danielhkuo/regatta-console/scorebook"
)

type HistoryHandler struct {
	backend scorebook.Backend
}

func NewHistoryHandler(backend scorebook.Backend) *HistoryHandler {
	return &HistoryHandler{backend: backend}
}

// List handles GET /api/files/{filePath}/history
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	filePath := r.PathValue("filePath")
	if filePath == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file path is required")
		return
	}

	backups, err := h.backend.FileHistory(r.Context(), filePath)
	if err != nil {
		slog.Error("failed to list file history", "file_path", filePath, "error", err)
		backendError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.FileHistoryResponse{Backups: backups})
}

// Restore handles POST /api/files/{filePath}/history/restore
func (h *HistoryHandler) Restore(w http.ResponseWriter, r *http.Request) {
	filePath := r.PathValue("filePath")
	if filePath == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file path is required")
		return
	}

	var req models.RestoreBackupRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.BackupPath == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "backup_path is required")
		return
	}

	if err := h.backend.RestoreBackup(r.Context(), filePath, req.BackupPath); err != nil {
		slog.Error("failed to restore backup", "file_path", filePath, "backup_path", req.BackupPath, "error", err)
		backendError(w, err)
		return
	}

	slog.Info("backup restored", "file_path", filePath, "backup_path", req.BackupPath)
	w.WriteHeader(http.StatusOK)
}
