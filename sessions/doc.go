// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sessions stores in-progress boat import wizards.

A Session holds the parsed CSV table plus the wizard state layered on
top of it: column mapping, row filter, and the set of selected row
indices. State transitions enforce the wizard's invariants — changing
the filter column resets the filter value, and any filter change
clears the selection, since positional indices are only meaningful
against the filtered view they were made for.

Sessions live in SQL so a wizard survives across requests (and server
restarts), but they are working state only: committing an import sends
the derived boats to the scoring backend and deletes the session.
PurgeExpired drops abandoned wizards.
*/
package sessions
