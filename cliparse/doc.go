// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3320)
  - BackendURL: Scoring backend base URL (required)
  - DatabaseURL: Import-session database (default: file:regatta-console.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - CertRegistryURL: ORC certificate registry (default: public registry)
  - BulkWorkers: Concurrency cap for per-boat backend requests (default: 4)

# CLI Flags

	-p             Server port
	-b             Scoring backend base URL
	-d             Database URL
	-t             Database type
	-cert-registry Certificate registry URL
	-bulk-workers  Bulk request concurrency cap

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	BACKEND_URL       → -b
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	CERT_REGISTRY_URL → -cert-registry
	BULK_WORKERS      → -bulk-workers

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing or invalid:

  - BACKEND_URL must be provided
  - DATABASE_TYPE must be sqlite or postgres
  - BULK_WORKERS must be at least 1
*/
package cliparse
