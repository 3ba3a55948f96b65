// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/regatta-console/middleware"
	"github.com/danielhkuo/regatta-console/models"
	"github.com/danielhkuo/regatta-console/scorebook"
)

type FileHandler struct {
	backend scorebook.Backend
}

func NewFileHandler(backend scorebook.Backend) *FileHandler {
	return &FileHandler{backend: backend}
}

// List handles GET /api/files
func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	files, err := h.backend.ListFiles(r.Context())
	if err != nil {
		slog.Error("failed to list files", "error", err)
		backendError(w, err)
		return
	}
	for i := range files {
		files[i].SizeHuman = humanize.Bytes(uint64(files[i].Size))
	}
	middleware.JSONResponse(w, http.StatusOK, models.ListFilesResponse{Files: files})
}

// Get handles GET /api/files/{filePath}
func (h *FileHandler) Get(w http.ResponseWriter, r *http.Request) {
	filePath := r.PathValue("filePath")
	if filePath == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file path is required")
		return
	}
	file, err := h.backend.GetFile(r.Context(), filePath)
	if err != nil {
		slog.Error("failed to get file", "file_path", filePath, "error", err)
		backendError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, file)
}

// Create handles POST /api/files
func (h *FileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFileRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.TemplatePath == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "template_path is required")
		return
	}
	if req.EventData.EventTitle == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "event title is required")
		return
	}

	filePath, err := h.backend.CreateFile(r.Context(), req)
	if err != nil {
		slog.Error("failed to create file", "template", req.TemplatePath, "error", err)
		backendError(w, err)
		return
	}

	slog.Info("file created", "file_path", filePath, "template", req.TemplatePath)
	middleware.JSONResponse(w, http.StatusCreated, models.CreateFileResponse{FilePath: filePath})
}

func (h *FileHandler) uploadForm(w http.ResponseWriter, r *http.Request) (string, int64, io.ReadCloser, bool) {
	if err := r.ParseMultipartForm(scorebook.MaxUploadBytes); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return "", 0, nil, false
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file field is required")
		return "", 0, nil, false
	}
	return header.Filename, header.Size, file, true
}

// Upload handles POST /api/files/upload
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	filename, size, file, ok := h.uploadForm(w, r)
	if !ok {
		return
	}
	defer file.Close()

	resp, err := h.backend.UploadFile(r.Context(), filename, size, file)
	if err != nil {
		slog.Error("failed to upload file", "filename", filename, "error", err)
		backendError(w, err)
		return
	}

	slog.Info("file uploaded", "filename", resp.Filename, "size", humanize.Bytes(uint64(size)))
	middleware.JSONResponse(w, http.StatusCreated, resp)
}

// Replace handles POST /api/files/update?file_path=...
func (h *FileHandler) Replace(w http.ResponseWriter, r *http.Request) {
	filePath := r.URL.Query().Get("file_path")
	if filePath == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file_path is required")
		return
	}

	filename, size, file, ok := h.uploadForm(w, r)
	if !ok {
		return
	}
	defer file.Close()

	resp, err := h.backend.ReplaceFile(r.Context(), filePath, filename, size, file)
	if err != nil {
		slog.Error("failed to replace file", "file_path", filePath, "error", err)
		backendError(w, err)
		return
	}

	slog.Info("file replaced", "file_path", filePath)
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Download handles GET /api/files/{filename}/download
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")
	if filename == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "filename is required")
		return
	}

	body, err := h.backend.DownloadFile(r.Context(), filename)
	if err != nil {
		slog.Error("failed to download file", "filename", filename, "error", err)
		backendError(w, err)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="`+scorebook.SanitizeFilename(filename)+`"`)
	if _, err := io.Copy(w, body); err != nil {
		slog.Error("failed to stream download", "filename", filename, "error", err)
	}
}

// Delete handles DELETE /api/files/{filePath}
func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	filePath := r.PathValue("filePath")
	if filePath == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file path is required")
		return
	}
	if err := h.backend.DeleteFile(r.Context(), filePath); err != nil {
		slog.Error("failed to delete file", "file_path", filePath, "error", err)
		backendError(w, err)
		return
	}
	slog.Info("file deleted", "file_path", filePath)
	w.WriteHeader(http.StatusNoContent)
}

// Templates handles GET /api/templates
func (h *FileHandler) Templates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.backend.ListTemplates(r.Context())
	if err != nil {
		slog.Error("failed to list templates", "error", err)
		backendError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, templates)
}
