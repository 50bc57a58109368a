// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests
received by the in-process dictionary service.

It abstracts away the router's parameter extraction and the query list
encoding, so handlers read parameters the same way the client writes them.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/dictionary/pkg/apperr"
	"github.com/taibuivan/dictionary/pkg/query"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns:
  - error: a BAD_REQUEST [apperr.AppError] if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return apperr.BadRequest("Invalid JSON body")
	}
	return nil
}

// Param retrieves a named URL parameter from the request.
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// List retrieves a list query parameter sent as repeated keys or as a
// comma-separated value.
func List(request *http.Request, name string) []string {
	return query.Values(request.URL.Query(), name)
}

// IntOr retrieves an integer query parameter, or def when it is absent.
func IntOr(request *http.Request, name string, def int) int {
	return query.IntOr(request.URL.Query(), name, def)
}

// Bool retrieves a boolean query parameter.
func Bool(request *http.Request, name string) bool {
	return query.Bool(request.URL.Query(), name)
}
