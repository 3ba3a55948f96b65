// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package timeparse is the single parsing contract for race start times.

The backend and older files carry start times in several shapes: Unix
seconds, RFC 3339, and bare date/time layouts. Every call site goes
through StartTime so the accepted forms live in exactly one place, and
an unrecognized value is an error rather than a silent passthrough.
*/
package timeparse
