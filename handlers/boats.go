// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/danielhkuo/regatta-console/bulk"
	"github.com/danielhkuo/regatta-console/cliparse"
	"github.com/danielhkuo/regatta-console/middleware"
	"github.com/danielhkuo/regatta-console/models"
	"github.com/danielhkuo/regatta-console/scorebook"
	"github.com/danielhkuo/regatta-console/tableview"
)

type BoatHandler struct {
	backend scorebook.Backend
	cfg     cliparse.Config
}

func NewBoatHandler(backend scorebook.Backend, cfg cliparse.Config) *BoatHandler {
	return &BoatHandler{backend: backend, cfg: cfg}
}

// Add handles POST /api/files/{filePath}/boats
func (h *BoatHandler) Add(w http.ResponseWriter, r *http.Request) {
	filePath := r.PathValue("filePath")
	if filePath == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file path is required")
		return
	}

	var req models.AddBoatsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.Boats) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "at least one boat is required")
		return
	}
	for _, boat := range req.Boats {
		if boat.YachtName == "" || boat.ClassID == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "every boat needs a yacht name and class")
			return
		}
	}

	if err := h.backend.AddBoats(r.Context(), filePath, req.Boats); err != nil {
		slog.Error("failed to add boats", "file_path", filePath, "error", err)
		backendError(w, err)
		return
	}

	slog.Info("boats added", "file_path", filePath, "count", len(req.Boats))
	w.WriteHeader(http.StatusCreated)
}

// AddFromCert handles POST /api/files/{filePath}/boats/orcjson?class_id=...
// The certificate record is passed to the backend untouched.
func (h *BoatHandler) AddFromCert(w http.ResponseWriter, r *http.Request) {
	filePath := r.PathValue("filePath")
	if filePath == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file path is required")
		return
	}
	classID := r.URL.Query().Get("class_id")
	if classID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "class_id is required")
		return
	}

	var cert map[string]any
	if err := middleware.ParseJSONBody(r, &cert); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.backend.AddBoatFromCert(r.Context(), filePath, classID, cert); err != nil {
		slog.Error("failed to add boat from certificate", "file_path", filePath, "class_id", classID, "error", err)
		backendError(w, err)
		return
	}

	slog.Info("boat added from certificate", "file_path", filePath, "class_id", classID)
	w.WriteHeader(http.StatusCreated)
}

// Update handles POST /api/files/{filePath}/boats/update
func (h *BoatHandler) Update(w http.ResponseWriter, r *http.Request) {
	filePath := r.PathValue("filePath")
	if filePath == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file path is required")
		return
	}

	var req models.UpdateBoatRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.YachtName == "" || req.ClassID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "yacht name and class are required")
		return
	}

	if err := h.backend.UpdateBoat(r.Context(), filePath, req); err != nil {
		slog.Error("failed to update boat", "file_path", filePath, "yid", req.YID, "error", err)
		backendError(w, err)
		return
	}
	slog.Info("boat updated", "file_path", filePath, "yid", req.YID)
	w.WriteHeader(http.StatusOK)
}

// Delete handles DELETE /api/boats?file_path=...&boat_id=...
func (h *BoatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	filePath := r.URL.Query().Get("file_path")
	if filePath == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file_path is required")
		return
	}
	boatID, err := strconv.Atoi(r.URL.Query().Get("boat_id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "boat_id must be an integer")
		return
	}

	if err := h.backend.DeleteBoat(r.Context(), filePath, boatID); err != nil {
		slog.Error("failed to delete boat", "file_path", filePath, "boat_id", boatID, "error", err)
		backendError(w, err)
		return
	}
	slog.Info("boat deleted", "file_path", filePath, "boat_id", boatID)
	w.WriteHeader(http.StatusNoContent)
}

// FleetView handles GET /api/files/{filePath}/fleet?sort=...&dir=...
func (h *BoatHandler) FleetView(w http.ResponseWriter, r *http.Request) {
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

	spec := sortSpecFromQuery(r, tableview.FleetSortYID)
	middleware.JSONResponse(w, http.StatusOK, models.FleetViewResponse{
		Sort:       spec.Column,
		Descending: spec.Descending,
		Fleet:      tableview.SortFleet(file.Fleet, spec),
	})
}

// BulkClassChange handles POST /api/files/{filePath}/fleet/class.
// One backend request per boat, bounded fan-out; the first failure is
// surfaced but the fleet is refetched regardless, so changes that did
// apply stay visible.
func (h *BoatHandler) BulkClassChange(w http.ResponseWriter, r *http.Request) {
	filePath := r.PathValue("filePath")
	if filePath == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file path is required")
		return
	}

	var req models.BulkClassChangeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.BoatIDs) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "boat_ids is required")
		return
	}
	if req.ClassID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "class_id is required")
		return
	}

	file, err := h.backend.GetFile(r.Context(), filePath)
	if err != nil {
		slog.Error("failed to get file", "file_path", filePath, "error", err)
		backendError(w, err)
		return
	}

	byYID := make(map[int]models.Boat, len(file.Fleet))
	for _, boat := range file.Fleet {
		byYID[boat.YID] = boat
	}
	boats := make([]models.Boat, 0, len(req.BoatIDs))
	for _, yid := range req.BoatIDs {
		boat, ok := byYID[yid]
		if !ok {
			middleware.ErrorResponse(w, http.StatusBadRequest, "unknown boat id "+strconv.Itoa(yid))
			return
		}
		boats = append(boats, boat)
	}

	var updated atomic.Int32
	runErr := bulk.Run(r.Context(), len(boats), h.cfg.BulkWorkers, func(ctx context.Context, i int) error {
		boat := boats[i]
		err := h.backend.UpdateBoat(ctx, filePath, models.UpdateBoatRequest{
			YID:       boat.YID,
			ClassID:   req.ClassID,
			YachtName: boat.YachtName,
			SailNo:    boat.SailNo,
		})
		if err == nil {
			updated.Add(1)
		}
		return err
	})

	resp := models.BulkClassChangeResponse{
		Updated: int(updated.Load()),
		Failed:  len(boats) - int(updated.Load()),
	}
	if runErr != nil {
		slog.Error("bulk class change partially failed", "file_path", filePath, "class_id", req.ClassID,
			"updated", resp.Updated, "failed", resp.Failed, "error", runErr)
		resp.Error = runErr.Error()
	} else {
		slog.Info("bulk class change applied", "file_path", filePath, "class_id", req.ClassID, "count", resp.Updated)
	}

	// Refetch regardless of errors: partial success must be visible.
	refreshed, err := h.backend.GetFile(r.Context(), filePath)
	if err != nil {
		slog.Error("failed to refresh fleet after bulk change", "file_path", filePath, "error", err)
		backendError(w, err)
		return
	}
	resp.Fleet = tableview.SortFleet(refreshed.Fleet, tableview.SortSpec{Column: tableview.FleetSortYID})

	status := http.StatusOK
	if runErr != nil {
		status = http.StatusBadGateway
	}
	middleware.JSONResponse(w, status, resp)
}
