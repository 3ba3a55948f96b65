// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes for the regatta console API.

NewRouter wires every handler to a Go 1.22+ method pattern on a
stdlib ServeMux and wraps each route in request logging. Dependencies
(session store, scoring backend client, certificate registry, config)
are passed in and handed to the handler constructors — the router owns
no state of its own.
*/
package router
