// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"net/url"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/taibuivan/dictionary/internal/platform/constants"
	"github.com/taibuivan/dictionary/internal/platform/validate"
	"github.com/taibuivan/dictionary/pkg/apperr"
	"github.com/taibuivan/dictionary/pkg/pagination"
	"github.com/taibuivan/dictionary/pkg/pointer"
	"github.com/taibuivan/dictionary/pkg/query"
	"github.com/taibuivan/dictionary/pkg/slice"
	"github.com/taibuivan/dictionary/pkg/slug"
)

const maxNameLength = 255

// normalizeName applies NFC normalization and trims surrounding whitespace.
func normalizeName(name string) string {
	return strings.TrimSpace(norm.NFC.String(name))
}

// # Create Request

// TagCreateRequest is the payload for creating one tag.
type TagCreateRequest struct {
	ID   *string `json:"id,omitempty"`
	Name string  `json:"name"`
	Type TagType `json:"type"`
	Path *string `json:"path,omitempty"`
}

// CreateOption configures a [TagCreateRequest].
type CreateOption func(*TagCreateRequest)

// WithID sets an explicit tag id.
func WithID(id string) CreateOption {
	return func(r *TagCreateRequest) { r.ID = pointer.NonEmpty(id) }
}

// WithPath places the tag in a hierarchy.
func WithPath(path string) CreateOption {
	return func(r *TagCreateRequest) { r.Path = pointer.NonEmpty(path) }
}

// WithSlugID derives the id from the name.
func WithSlugID() CreateOption {
	return func(r *TagCreateRequest) { r.ID = pointer.NonEmpty(slug.From(r.Name)) }
}

// NewTagCreateRequest builds a create request. The result is normalized but
// not validated; [TagCreateRequest.Validate] runs before it is sent.
func NewTagCreateRequest(name string, tagType TagType, opts ...CreateOption) TagCreateRequest {
	r := TagCreateRequest{Name: normalizeName(name), Type: tagType}
	for _, opt := range opts {
		opt(&r)
	}
	return r.Normalize()
}

// Normalize returns a copy with a normalized name, trimmed id and a path
// stripped of surrounding dots. Empty optionals become nil.
func (r TagCreateRequest) Normalize() TagCreateRequest {
	r.Name = normalizeName(r.Name)
	if r.ID != nil {
		r.ID = pointer.NonEmpty(strings.TrimSpace(*r.ID))
	}
	if r.Path != nil {
		r.Path = pointer.NonEmpty(strings.Trim(strings.TrimSpace(*r.Path), "."))
	}
	return r
}

// Validate checks the request locally.
func (r TagCreateRequest) Validate() error {
	validator := &validate.Validator{}
	validator.Custom("type", !r.Type.Valid(), "Unknown tag type").
		Required("name", r.Name).
		MaxLen("name", r.Name, maxNameLength)

	if r.ID != nil && r.Type.Valid() {
		switch r.Type.IDKind() {
		case IDKindUUID:
			validator.UUID("id", *r.ID)
		default:
			validator.Slug("id", *r.ID)
		}
	}
	if r.Path != nil {
		validator.Path("path", *r.Path)
	}

	return validator.Err()
}

// # Get Request

// TagGetRequest is a list query. At least one of IDs, Names or Paths must
// be set. Types only narrow a names or paths query; ids alone may not be
// combined with types.
type TagGetRequest struct {
	IDs        []string
	Names      []string
	Paths      []string
	Types      []TagType
	WithParent bool
	pagination.Window
}

// GetOption configures a [TagGetRequest].
type GetOption func(*TagGetRequest)

// WithIDs filters by tag id.
func WithIDs(ids ...string) GetOption {
	return func(r *TagGetRequest) { r.IDs = append(r.IDs, ids...) }
}

// WithNames filters by exact name.
func WithNames(names ...string) GetOption {
	return func(r *TagGetRequest) { r.Names = append(r.Names, names...) }
}

// WithPaths filters by materialized path.
func WithPaths(paths ...string) GetOption {
	return func(r *TagGetRequest) { r.Paths = append(r.Paths, paths...) }
}

// WithTypes restricts the result to the given types.
func WithTypes(types ...TagType) GetOption {
	return func(r *TagGetRequest) { r.Types = append(r.Types, types...) }
}

// WithParent asks the service to resolve parent chains.
func WithParent(withParent bool) GetOption {
	return func(r *TagGetRequest) { r.WithParent = withParent }
}

// WithLimit sets the page size.
func WithLimit(limit int) GetOption {
	return func(r *TagGetRequest) { r.Limit = limit }
}

// WithOffset sets the page offset.
func WithOffset(offset int) GetOption {
	return func(r *TagGetRequest) { r.Offset = offset }
}

// NewTagGetRequest builds and validates a list query.
// Defaults: limit 30, offset 0, no parents.
func NewTagGetRequest(opts ...GetOption) (TagGetRequest, error) {
	r := TagGetRequest{Window: pagination.New(constants.DefaultTagLimit)}
	for _, opt := range opts {
		opt(&r)
	}
	r.Names = slice.Map(r.Names, normalizeName)

	if err := r.Validate(); err != nil {
		return TagGetRequest{}, err
	}
	return r, nil
}

// Validate checks the selector and paging rules.
func (r TagGetRequest) Validate() error {
	if len(r.IDs) == 0 && len(r.Names) == 0 && len(r.Paths) == 0 {
		return apperr.InvalidQuery("ids, names, paths must be not null or empty")
	}
	if len(r.IDs) > 0 && len(r.Types) > 0 && len(r.Names) == 0 && len(r.Paths) == 0 {
		return apperr.InvalidQuery("Query must be names or paths")
	}

	validator := &validate.Validator{}
	for _, t := range r.Types {
		validator.Custom("types", !t.Valid(), "Unknown tag type")
	}
	if err := validator.Err(); err != nil {
		return err
	}

	return r.Window.Validate()
}

// Query encodes the request as repeated query parameters.
func (r TagGetRequest) Query() url.Values {
	return query.New().
		Strings(constants.ParamIDs, r.IDs).
		Strings(constants.ParamNames, r.Names).
		Strings(constants.ParamPaths, r.Paths).
		Strings(constants.ParamTypes, slice.Map(r.Types, TagType.String)).
		Bool(constants.ParamWithParent, r.WithParent).
		Int(constants.ParamLimit, r.Limit).
		Int(constants.ParamOffset, r.Offset).
		Values()
}
