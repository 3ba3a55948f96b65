// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/regatta-console/cliparse"
	"github.com/danielhkuo/regatta-console/handlers"
	"github.com/danielhkuo/regatta-console/middleware"
	"github.com/danielhkuo/regatta-console/scorebook"
	"github.com/danielhkuo/regatta-console/sessions"
)

func NewRouter(store *sessions.Store, backend scorebook.Backend, registry handlers.Registry, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	importHandler := handlers.NewImportHandler(store, backend)
	fileHandler := handlers.NewFileHandler(backend)
	raceHandler := handlers.NewRaceHandler(backend)
	boatHandler := handlers.NewBoatHandler(backend, cfg)
	classHandler := handlers.NewClassHandler(backend)
	historyHandler := handlers.NewHistoryHandler(backend)
	certHandler := handlers.NewCertHandler(registry)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Boat import wizard
	mux.HandleFunc("POST /api/imports", middleware.WithLogging(importHandler.Upload))
	mux.HandleFunc("GET /api/imports/{id}", middleware.WithLogging(importHandler.Get))
	mux.HandleFunc("PUT /api/imports/{id}/mapping", middleware.WithLogging(importHandler.SetMapping))
	mux.HandleFunc("PUT /api/imports/{id}/filter", middleware.WithLogging(importHandler.SetFilter))
	mux.HandleFunc("PUT /api/imports/{id}/selection", middleware.WithLogging(importHandler.SetSelection))
	mux.HandleFunc("GET /api/imports/{id}/values", middleware.WithLogging(importHandler.Values))
	mux.HandleFunc("POST /api/imports/{id}/commit", middleware.WithLogging(importHandler.Commit))
	mux.HandleFunc("DELETE /api/imports/{id}", middleware.WithLogging(importHandler.Delete))

	// Scoring file management
	mux.HandleFunc("GET /api/files", middleware.WithLogging(fileHandler.List))
	mux.HandleFunc("POST /api/files", middleware.WithLogging(fileHandler.Create))
	mux.HandleFunc("POST /api/files/upload", middleware.WithLogging(fileHandler.Upload))
	mux.HandleFunc("POST /api/files/update", middleware.WithLogging(fileHandler.Replace))
	mux.HandleFunc("GET /api/files/{filePath}", middleware.WithLogging(fileHandler.Get))
	mux.HandleFunc("GET /api/files/{filename}/download", middleware.WithLogging(fileHandler.Download))
	mux.HandleFunc("DELETE /api/files/{filePath}", middleware.WithLogging(fileHandler.Delete))
	mux.HandleFunc("GET /api/templates", middleware.WithLogging(fileHandler.Templates))

	// Races
	mux.HandleFunc("POST /api/files/{filePath}/races", middleware.WithLogging(raceHandler.Add))
	mux.HandleFunc("GET /api/files/{filePath}/races", middleware.WithLogging(raceHandler.View))
	mux.HandleFunc("DELETE /api/races", middleware.WithLogging(raceHandler.Delete))

	// Fleet
	mux.HandleFunc("POST /api/files/{filePath}/boats", middleware.WithLogging(boatHandler.Add))
	mux.HandleFunc("POST /api/files/{filePath}/boats/orcjson", middleware.WithLogging(boatHandler.AddFromCert))
	mux.HandleFunc("POST /api/files/{filePath}/boats/update", middleware.WithLogging(boatHandler.Update))
	mux.HandleFunc("DELETE /api/boats", middleware.WithLogging(boatHandler.Delete))
	mux.HandleFunc("GET /api/files/{filePath}/fleet", middleware.WithLogging(boatHandler.FleetView))
	mux.HandleFunc("POST /api/files/{filePath}/fleet/class", middleware.WithLogging(boatHandler.BulkClassChange))

	// Classes
	mux.HandleFunc("POST /api/files/{filePath}/classes", middleware.WithLogging(classHandler.Add))
	mux.HandleFunc("DELETE /api/classes", middleware.WithLogging(classHandler.Delete))

	// File history
	mux.HandleFunc("GET /api/files/{filePath}/history", middleware.WithLogging(historyHandler.List))
	mux.HandleFunc("POST /api/files/{filePath}/history/restore", middleware.WithLogging(historyHandler.Restore))

	// ORC certificate registry
	mux.HandleFunc("GET /api/orcdb/countries", middleware.WithLogging(certHandler.Countries))
	mux.HandleFunc("GET /api/orcdb/certs", middleware.WithLogging(certHandler.Certificates))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("regatta-console API v1"))
	})

	return mux
}
