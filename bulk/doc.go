// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package bulk runs per-row backend requests with a bounded fan-out.

"Apply to selected" actions issue one request per row. Run caps how
many are in flight at once, attempts every row even after a failure,
and reports the first error. Callers refresh their view from the
backend afterwards regardless of the error so partially applied
changes are never hidden.
*/
package bulk
