// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package testutil provides shared helpers for handler and store tests.

SetupTestDB opens an in-memory SQLite database with the full session
schema. MakeRequest and MakeUploadRequest build JSON and multipart
test requests; AssertStatus and AssertJSON check recorded responses.
*/
package testutil
