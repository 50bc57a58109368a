// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides the limit/offset window shared by list queries.
//
// # Overview
//
// The dictionary service pages its list endpoints with "limit" and "offset"
// query parameters. Unlike a server, a client must not clamp out-of-range
// values silently: [Window.Validate] rejects them before the call is made.
package pagination

import (
	"github.com/taibuivan/dictionary/internal/platform/constants"
	"github.com/taibuivan/dictionary/internal/platform/validate"
)

// Window holds the page size and starting offset of a list query.
type Window struct {
	Limit  int
	Offset int
}

// New returns a window with the given default limit and a zero offset.
func New(defaultLimit int) Window {
	return Window{Limit: defaultLimit}
}

// Validate reports an INVALID_QUERY error when limit is outside
// [0, MaxLimit] or offset is negative.
func (w Window) Validate() error {
	validator := &validate.Validator{}
	validator.Range("limit", w.Limit, 0, constants.MaxLimit).
		Min("offset", w.Offset, 0)

	return validator.Err()
}
