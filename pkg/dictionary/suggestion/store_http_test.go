// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package suggestion_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/dictionary/internal/dictionarytest"
	"github.com/taibuivan/dictionary/internal/platform/transport"
	"github.com/taibuivan/dictionary/pkg/apperr"
	"github.com/taibuivan/dictionary/pkg/dictionary/suggestion"
)

/*
TestHTTPRepository_List exercises the suggestion endpoint end to end.
*/
func TestHTTPRepository_List(t *testing.T) {
	server := dictionarytest.New()
	t.Cleanup(server.Close)

	server.AddSuggestion(suggestion.Industry, suggestion.Suggestion{ID: "10", Name: "Energy"}, "10")
	server.AddSuggestion(suggestion.Industry, suggestion.Suggestion{ID: "1010", Name: "Energy Equipment"}, "10.1010")
	server.AddSuggestion(suggestion.Industry, suggestion.Suggestion{ID: "45", Name: "Information Technology"}, "45")

	client, err := transport.New(server.Config(), nil)
	require.NoError(t, err)
	service := suggestion.NewService(suggestion.NewHTTPRepository(client), nil)
	ctx := context.Background()

	got, err := service.Search(ctx, suggestion.Industry, "energy")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = service.Search(ctx, suggestion.Industry, "", suggestion.WithParentIDs("10"))
	require.NoError(t, err)
	assert.Equal(t, []suggestion.Suggestion{{ID: "1010", Name: "Energy Equipment"}}, got)

	got, err = service.Search(ctx, suggestion.Keyword, "anything")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	server.Fail(http.MethodGet, "suggestions/", http.StatusNotAcceptable, "")
	_, err = service.Search(ctx, suggestion.Industry, "energy")
	require.ErrorIs(t, err, apperr.ErrValidationFailed)
	assert.Equal(t, "Suggestion type not found", apperr.As(err).Message)

	server.Fail(http.MethodGet, "suggestions/", http.StatusNotFound, "")
	_, err = service.Search(ctx, suggestion.Industry, "energy")
	assert.ErrorIs(t, err, apperr.ErrUnexpectedServiceError)
}
