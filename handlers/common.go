// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/regatta-console/middleware"
	"github.com/danielhkuo/regatta-console/scorebook"
)

// backendError maps a scorebook error to an HTTP response. Validation
// failures never reached the network and are the caller's fault; a
// backend 404 passes through; everything else is a bad gateway.
func backendError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scorebook.ErrEmptyFilePath),
		errors.Is(err, scorebook.ErrEmptyFilename),
		errors.Is(err, scorebook.ErrBadExtension),
		errors.Is(err, scorebook.ErrUploadTooLarge):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var statusErr *scorebook.StatusError
	if errors.As(err, &statusErr) && statusErr.Status == http.StatusNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, statusErr.Message)
		return
	}

	middleware.ErrorResponse(w, http.StatusBadGateway, err.Error())
}
