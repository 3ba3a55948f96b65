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

type ClassHandler struct {
	backend scorebook.Backend
}

func NewClassHandler(backend scorebook.Backend) *ClassHandler {
	return &ClassHandler{backend: backend}
}

// Add handles POST /api/files/{filePath}/classes
func (h *ClassHandler) Add(w http.ResponseWriter, r *http.Request) {
	filePath := r.PathValue("filePath")
	if filePath == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file path is required")
		return
	}

	var req models.AddClassRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ClassData.ClassID == "" || req.ClassData.ClassName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "class id and name are required")
		return
	}

	if err := h.backend.AddClass(r.Context(), filePath, req.ClassData); err != nil {
		slog.Error("failed to add class", "file_path", filePath, "class_id", req.ClassData.ClassID, "error", err)
		backendError(w, err)
		return
	}

	slog.Info("class added", "file_path", filePath, "class_id", req.ClassData.ClassID)
	w.WriteHeader(http.StatusCreated)
}

// Delete handles DELETE /api/classes?file_path=...&class_id=...
func (h *ClassHandler) Delete(w http.ResponseWriter, r *http.Request) {
	filePath := r.URL.Query().Get("file_path")
	if filePath == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file_path is required")
		return
	}
	classID := r.URL.Query().Get("class_id")
	if classID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "class_id is required")
		return
	}

	if err := h.backend.DeleteClass(r.Context(), filePath, classID); err != nil {
		slog.Error("failed to delete class", "file_path", filePath, "class_id", classID, "error", err)
		backendError(w, err)
		return
	}
	slog.Info("class deleted", "file_path", filePath, "class_id", classID)
	w.WriteHeader(http.StatusNoContent)
}
