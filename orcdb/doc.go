// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package orcdb queries the public ORC certificate registry.

The registry is a read-only third-party service with no SLA: the
country list is XML, certificate downloads are JSON {rms: [...]}, and
both shapes are outside our control. AllCertificates fans out over the
ORC, NS and DH families concurrently; a family that fails to fetch is
logged and skipped so one flaky download doesn't empty the whole
browse view. Records are deduplicated by yacht name, sail number,
issue date and family.

Certificate.Raw keeps the registry record untouched — the scoring
backend consumes it verbatim when a boat is added from a certificate.
*/
package orcdb
