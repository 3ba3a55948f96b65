// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the regatta console API.

# Handler Types

Each handler is a struct with its dependencies injected via a
constructor — the scoring backend client, the session store, or the
certificate registry. Nothing talks to a package-level client:

	fileHandler := handlers.NewFileHandler(backendClient)
	importHandler := handlers.NewImportHandler(store, backendClient)

  - ImportHandler: the boat import wizard (upload CSV, map columns,
    filter, select, commit)
  - FileHandler: scoring file management (list, create, upload,
    replace, download, delete, templates)
  - RaceHandler: race batch add, delete, sorted race view
  - BoatHandler: fleet CRUD, sorted fleet view, bulk class change
  - ClassHandler: class add/delete
  - HistoryHandler: file version history and restore
  - CertHandler: ORC registry browse (countries, certificates)

# Import Wizard Flow

	POST /api/imports                   → Upload (parse CSV, open session)
	PUT  /api/imports/{id}/mapping      → SetMapping
	PUT  /api/imports/{id}/filter       → SetFilter (resets selection)
	PUT  /api/imports/{id}/selection    → SetSelection (toggle/all/clear)
	GET  /api/imports/{id}/values       → Values (distinct filter values)
	POST /api/imports/{id}/commit       → Commit (one batched AddBoats)

Commit requires a complete mapping (yacht name + class) and a
non-empty selection; the session is deleted once the backend accepts
the boats.

# Error Mapping

Local validation failures return 400 before any backend call. Backend
failures return 502 (404 passes through). Bulk class changes report
the first failure alongside the refetched fleet so partial success is
never hidden.
*/
package handlers
