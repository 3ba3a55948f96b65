// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scorebook

import (
	"errors"
	"strings"
)

// MaxUploadBytes is the upload size cap: 50 MiB.
const MaxUploadBytes = 50 << 20

var (
	ErrEmptyFilePath  = errors.New("file path is required")
	ErrBadExtension   = errors.New("only .orcsc files are allowed")
	ErrUploadTooLarge = errors.New("file exceeds the 50 MiB upload limit")
	ErrEmptyFilename  = errors.New("filename is required")
)

// ValidateFilePath rejects empty paths before any network call.
func ValidateFilePath(filePath string) error {
	if strings.TrimSpace(filePath) == "" {
		return ErrEmptyFilePath
	}
	return nil
}

// ValidateUpload checks the client-side upload rules: a filename with
// the .orcsc extension and a size within the cap. A negative size is
// unknown and checked again while reading.
func ValidateUpload(filename string, size int64) error {
	if strings.TrimSpace(filename) == "" {
		return ErrEmptyFilename
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".orcsc") {
		return ErrBadExtension
	}
	if size > MaxUploadBytes {
		return ErrUploadTooLarge
	}
	return nil
}

// SanitizeFilename strips path traversal from names used to build
// backend paths: ".." sequences and both separator styles.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "..", "")
	name = strings.ReplaceAll(name, "/", "")
	name = strings.ReplaceAll(name, "\\", "")
	return name
}
