// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the database schema for the console.

The only table is import_session: server-side state for in-progress
boat import wizards. The same SQL runs on both supported drivers
(sqlite and postgres); $1-style placeholders are valid on both.
*/
package db
