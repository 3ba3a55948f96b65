// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scorebook is the client for the remote scoring backend, the
sole durable store for .orcsc files.

The Backend interface is what handlers depend on; NewClient builds the
real implementation. Clients are injected explicitly — there is no
package-level instance — so tests run against httptest servers or
fakes without any mocking framework.

Every mutating call maps to exactly one backend request. Client-side
validation runs before any network traffic: file paths must be
non-empty, uploads must carry the .orcsc extension and stay within
MaxUploadBytes, and filenames used in constructed paths are stripped
of ".." and path separators.

Non-2xx responses surface as *StatusError with the backend's detail
message. There are no retries; a failed call is terminal for that
action.
*/
package scorebook
