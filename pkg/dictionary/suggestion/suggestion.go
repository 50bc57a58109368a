// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package suggestion implements the autocomplete lookups of the dictionary
// client.
package suggestion

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/taibuivan/dictionary/internal/platform/constants"
	"github.com/taibuivan/dictionary/internal/platform/validate"
	"github.com/taibuivan/dictionary/pkg/apperr"
	"github.com/taibuivan/dictionary/pkg/pagination"
	"github.com/taibuivan/dictionary/pkg/query"
	"github.com/taibuivan/dictionary/pkg/slice"
)

// Type selects the vocabulary a suggestion query searches.
type Type string

const (
	Industry            Type = "Industry"
	IndustrySector      Type = "IndustrySector"
	IndustryGroup       Type = "IndustryGroup"
	IndustryCode        Type = "IndustryCode"
	Keyword             Type = "Keyword"
	Vertical            Type = "Vertical"
	ProductCode         Type = "ProductCode"
	OwnershipStatus     Type = "OwnershipStatus"
	Universe            Type = "Universe"
	DealStatus          Type = "DealStatus"
	ServiceProviderType Type = "ServiceProviderType"
	InvestorType        Type = "InvestorType"
	DealType            Type = "DealType"
)

var allTypes = []Type{
	Industry, IndustrySector, IndustryGroup, IndustryCode, Keyword, Vertical,
	ProductCode, OwnershipStatus, Universe, DealStatus, ServiceProviderType,
	InvestorType, DealType,
}

// Types returns every suggestion type in declaration order.
func Types() []Type {
	return append([]Type(nil), allTypes...)
}

// Valid reports whether t is a known suggestion type.
func (t Type) Valid() bool {
	for _, known := range allTypes {
		if t == known {
			return true
		}
	}
	return false
}

// String returns the wire name.
func (t Type) String() string { return string(t) }

// ParseType resolves a type name. Matching is exact.
func ParseType(name string) (Type, error) {
	if t := Type(name); t.Valid() {
		return t, nil
	}
	return "", apperr.MalformedIdentifier("Unknown suggestion type: " + name)
}

// Suggestion is one autocomplete hit.
type Suggestion struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// # Request

// Request is a suggestion query.
type Request struct {
	Type      Type
	Query     string
	ParentIDs []string
	pagination.Window
}

// Option configures a [Request].
type Option func(*Request)

// WithQuery sets the search text.
func WithQuery(q string) Option {
	return func(r *Request) { r.Query = strings.TrimSpace(q) }
}

// WithLimit sets the page size.
func WithLimit(limit int) Option {
	return func(r *Request) { r.Limit = limit }
}

// WithOffset sets the page offset.
func WithOffset(offset int) Option {
	return func(r *Request) { r.Offset = offset }
}

// WithParentIDs scopes the query to descendants of the given paths.
// Duplicates are dropped; order is preserved.
func WithParentIDs(ids ...string) Option {
	return func(r *Request) { r.ParentIDs = slice.Unique(append(r.ParentIDs, ids...)) }
}

// NewRequest builds and validates a query. Defaults: limit 10, offset 0.
func NewRequest(suggestionType Type, opts ...Option) (Request, error) {
	r := Request{Type: suggestionType, Window: pagination.New(constants.DefaultSuggestionLimit)}
	for _, opt := range opts {
		opt(&r)
	}

	if err := r.Validate(); err != nil {
		return Request{}, err
	}
	return r, nil
}

// Validate checks the request locally.
func (r Request) Validate() error {
	validator := &validate.Validator{}
	validator.Custom("suggestionType", !r.Type.Valid(), "Unknown suggestion type").
		Range("limit", r.Limit, 0, constants.MaxLimit).
		Min("offset", r.Offset, 0)

	for _, id := range r.ParentIDs {
		validator.Path("parentIds", id)
	}

	return validator.Err()
}

// Values encodes the request as query parameters.
func (r Request) Values() url.Values {
	return query.New().
		String(constants.ParamSuggestionType, r.Type.String()).
		String(constants.ParamQuery, r.Query).
		Int(constants.ParamLimit, r.Limit).
		Int(constants.ParamOffset, r.Offset).
		Strings(constants.ParamParentIDs, r.ParentIDs).
		Values()
}

// listResponse is the envelope of the suggestion endpoint.
type listResponse struct {
	ListSuggestion []Suggestion `json:"listSuggestion"`
}

// UnmarshalJSON lets a missing or null list decode as empty.
func (l *listResponse) UnmarshalJSON(data []byte) error {
	type plain listResponse
	var raw plain
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.ListSuggestion == nil {
		raw.ListSuggestion = []Suggestion{}
	}
	*l = listResponse(raw)
	return nil
}
