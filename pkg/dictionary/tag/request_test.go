// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/dictionary/pkg/apperr"
	"github.com/taibuivan/dictionary/pkg/dictionary/tag"
	"github.com/taibuivan/dictionary/pkg/pointer"
)

/*
TestNewTagGetRequest covers the selector and paging rules.
*/
func TestNewTagGetRequest(t *testing.T) {
	tests := []struct {
		name    string
		opts    []tag.GetOption
		message string
	}{
		{"ids", []tag.GetOption{tag.WithIDs("a", "b")}, ""},
		{"names_and_paths", []tag.GetOption{tag.WithNames("Energy"), tag.WithPaths("10")}, ""},
		{"limit_upper_bound", []tag.GetOption{tag.WithIDs("a"), tag.WithLimit(100)}, ""},
		{"limit_zero", []tag.GetOption{tag.WithIDs("a"), tag.WithLimit(0)}, ""},
		{"empty", nil, "ids, names, paths must be not null or empty"},
		{"only_types", []tag.GetOption{tag.WithTypes(tag.Industry)}, "ids, names, paths must be not null or empty"},
		{"ids_and_names", []tag.GetOption{tag.WithIDs("a"), tag.WithNames("A")}, ""},
		{"ids_and_paths", []tag.GetOption{tag.WithIDs("a"), tag.WithPaths("1")}, ""},
		{"names_and_types", []tag.GetOption{tag.WithNames("A"), tag.WithTypes(tag.Industry)}, ""},
		{"ids_names_and_types", []tag.GetOption{tag.WithIDs("a"), tag.WithNames("A"), tag.WithTypes(tag.Industry)}, ""},
		{"ids_and_types", []tag.GetOption{tag.WithIDs("a"), tag.WithTypes(tag.Industry)}, "Query must be names or paths"},
		{"limit_too_large", []tag.GetOption{tag.WithIDs("a"), tag.WithLimit(101)}, "Validation failed"},
		{"negative_offset", []tag.GetOption{tag.WithIDs("a"), tag.WithOffset(-1)}, "Validation failed"},
		{"unknown_type", []tag.GetOption{tag.WithNames("A"), tag.WithTypes(tag.TagType(99))}, "Validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tag.NewTagGetRequest(tt.opts...)
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, apperr.ErrInvalidQuery)
			assert.Equal(t, tt.message, apperr.As(err).Message)
		})
	}
}

/*
TestTagGetRequest_Query verifies defaults and the repeated-key encoding.
*/
func TestTagGetRequest_Query(t *testing.T) {
	request, err := tag.NewTagGetRequest(
		tag.WithNames("  Café "),
		tag.WithTypes(tag.Industry, tag.Vertical),
		tag.WithParent(true),
	)
	require.NoError(t, err)

	assert.Equal(t, 30, request.Limit)
	assert.Equal(t, 0, request.Offset)
	assert.Equal(t, []string{"Café"}, request.Names)

	values := request.Query()
	assert.Equal(t, []string{"Café"}, values["names"])
	assert.Equal(t, []string{"Industry", "Vertical"}, values["types"])
	assert.Equal(t, "true", values.Get("withParent"))
	assert.Equal(t, "30", values.Get("limit"))
	assert.Equal(t, "0", values.Get("offset"))
	assert.Empty(t, values["ids"])
}

/*
TestTagCreateRequest_Normalize verifies trimming and the optional forms.
*/
func TestTagCreateRequest_Normalize(t *testing.T) {
	request := tag.NewTagCreateRequest("  Software and Services ", tag.Industry,
		tag.WithSlugID(),
		tag.WithPath(" .10.1010. "),
	)

	assert.Equal(t, "Software and Services", request.Name)
	assert.Equal(t, "software-and-services", pointer.Val(request.ID))
	assert.Equal(t, "10.1010", pointer.Val(request.Path))

	blank := tag.TagCreateRequest{Name: "X", Type: tag.Vertical, ID: pointer.To("  "), Path: pointer.To("..")}.Normalize()
	assert.Nil(t, blank.ID)
	assert.Nil(t, blank.Path)
}

/*
TestTagCreateRequest_Validate covers the id syntax per tag type.
*/
func TestTagCreateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request tag.TagCreateRequest
		field   string
	}{
		{"slug_ok", tag.NewTagCreateRequest("Fintech", tag.Vertical, tag.WithID("fintech")), ""},
		{"uuid_ok", tag.NewTagCreateRequest("AI", tag.Keyword, tag.WithID("0190a6f6-8f5e-7c7a-9b1e-3f2d4c5b6a79")), ""},
		{"no_id_ok", tag.NewTagCreateRequest("AI", tag.Keyword), ""},
		{"slug_for_keyword", tag.NewTagCreateRequest("AI", tag.Keyword, tag.WithID("ai")), "id"},
		{"empty_name", tag.NewTagCreateRequest("  ", tag.Vertical), "name"},
		{"unknown_type", tag.NewTagCreateRequest("X", tag.TagType(0)), "type"},
		{"bad_path", tag.NewTagCreateRequest("X", tag.Industry, tag.WithPath("10..20")), "path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, apperr.ErrInvalidQuery)
			assert.Equal(t, tt.field, apperr.As(err).Details[0].Field)
		})
	}
}
