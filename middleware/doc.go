// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP plumbing shared by all handlers.

  - WithLogging: request start/completion logging via slog
  - JSONResponse / ErrorResponse: JSON encoding with consistent error shape
  - ParseJSONBody: request body decoding
  - CORS: cross-origin headers for the browser frontend

ErrorResponse writes models.ErrorResponse with the status text as the
error and an optional human-readable message.
*/
package middleware
