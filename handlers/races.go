// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/regatta-console/middleware"
	"github.com/danielhkuo/regatta-console/models"
	"github.com/danielhkuo/regatta-console/scorebook"
	"github.com/danielhkuo/regatta-console/tableview"
	"github.com/danielhkuo/regatta-console/timeparse"
)

type RaceHandler struct {
	backend scorebook.Backend
}

func NewRaceHandler(backend scorebook.Backend) *RaceHandler {
	return &RaceHandler{backend: backend}
}

// Add handles POST /api/files/{filePath}/races
func (h *RaceHandler) Add(w http.ResponseWriter, r *http.Request) {
	filePath := r.PathValue("filePath")
	if filePath == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file path is required")
		return
	}

	var req models.AddRacesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.Races) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "at least one race is required")
		return
	}

	// Normalize start times through the one parsing contract before
	// they reach the backend.
	for i, race := range req.Races {
		if race.RaceName == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "race name is required")
			return
		}
		t, err := timeparse.StartTime(race.StartTime)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "race "+race.RaceName+": "+err.Error())
			return
		}
		req.Races[i].StartTime = timeparse.FormatStartTime(t)
	}

	if err := h.backend.AddRaces(r.Context(), filePath, req.Races); err != nil {
		slog.Error("failed to add races", "file_path", filePath, "error", err)
		backendError(w, err)
		return
	}

	slog.Info("races added", "file_path", filePath, "count", len(req.Races))
	w.WriteHeader(http.StatusCreated)
}

// Delete handles DELETE /api/races?file_path=...&race_id=...
func (h *RaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	filePath := r.URL.Query().Get("file_path")
	if filePath == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file_path is required")
		return
	}
	raceID, err := strconv.Atoi(r.URL.Query().Get("race_id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "race_id must be an integer")
		return
	}

	if err := h.backend.DeleteRace(r.Context(), filePath, raceID); err != nil {
		slog.Error("failed to delete race", "file_path", filePath, "race_id", raceID, "error", err)
		backendError(w, err)
		return
	}
	slog.Info("race deleted", "file_path", filePath, "race_id", raceID)
	w.WriteHeader(http.StatusNoContent)
}

// View handles GET /api/files/{filePath}/races?sort=...&dir=...
func (h *RaceHandler) View(w http.ResponseWriter, r *http.Request) {
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

	spec := sortSpecFromQuery(r, tableview.RaceSortID)
	middleware.JSONResponse(w, http.StatusOK, models.RaceViewResponse{
		Sort:       spec.Column,
		Descending: spec.Descending,
		Races:      tableview.SortRaces(file.Races, spec),
	})
}

// sortSpecFromQuery reads sort/dir query parameters, defaulting to the
// given column ascending.
func sortSpecFromQuery(r *http.Request, defaultColumn string) tableview.SortSpec {
	spec := tableview.SortSpec{Column: defaultColumn}
	if col := r.URL.Query().Get("sort"); col != "" {
		spec.Column = col
	}
	spec.Descending = r.URL.Query().Get("dir") == "desc"
	return spec
}
