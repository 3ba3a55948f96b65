// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Import wizard sessions. Header, rows, parse errors, mapping, filter
-- and selection are stored as JSON; the scoring backend remains the
-- only durable store for regatta data itself.
CREATE TABLE IF NOT EXISTS import_session (
    id TEXT PRIMARY KEY,
    header TEXT NOT NULL,
    rows TEXT NOT NULL,
    parse_errors TEXT NOT NULL,
    mapping TEXT NOT NULL,
    filter TEXT NOT NULL,
    selected TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_import_session_updated ON import_session(updated_at);
`
