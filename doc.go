// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the regatta console API server.

The regatta console is a management frontend for sailing regatta scoring
files (.orcsc). It proxies file, fleet, race and class operations to a
remote scoring backend, runs the CSV boat import wizard against a local
session database, and browses the ORC certificate registry.

# Starting the Server

The server requires the scoring backend URL, via environment variable
or CLI flag:

	BACKEND_URL=http://localhost:8000 go run main.go

Or with flags:

	go run main.go -p 3320 -b "http://localhost:8000"

# Configuration

Required settings:

  - BACKEND_URL (-b): Scoring backend base URL

Optional settings:

  - PORT (-p): Server port (default: 3320)
  - DATABASE_URL (-d): Import session database (default: file:regatta-console.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - CERT_REGISTRY_URL (-cert-registry): ORC registry endpoint
  - BULK_WORKERS (-bulk-workers): Concurrent bulk update workers (default: 4)

A .env file in the working directory is loaded at startup; real
environment variables take precedence.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (imports, files, boats, races, classes, history, certs)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - csvtable: CSV parsing, column mapping, row filtering
  - selection: Row selection set semantics
  - sessions: Import wizard session store
  - tableview: Fleet and race sorting
  - scorebook: Scoring backend HTTP client
  - orcdb: ORC certificate registry client
  - bulk: Bounded concurrent batch runner
  - timeparse: Race start time parsing
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
