// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dictionarytest_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/dictionary/internal/dictionarytest"
	"github.com/taibuivan/dictionary/pkg/dictionary/tag"
	"github.com/taibuivan/dictionary/pkg/pointer"
)

/*
TestListTags_QueryRules checks the selector rules the service enforces on raw queries.
*/
func TestListTags_QueryRules(t *testing.T) {
	server := dictionarytest.New()
	t.Cleanup(server.Close)

	server.AddTag(
		tag.Tag{ID: tag.NewTagID("10", tag.Industry), Name: "Energy", Path: pointer.To("10")},
		tag.Tag{ID: tag.NewTagID("fintech", tag.Vertical), Name: "Fintech"},
	)

	tests := []struct {
		name        string
		query       string
		wantStatus  int
		wantMessage string
		wantIDs     []string
	}{
		{name: "ids_only", query: "ids=10&ids=fintech", wantStatus: http.StatusOK, wantIDs: []string{"10", "fintech"}},
		{name: "ids_and_names", query: "ids=10&names=Energy", wantStatus: http.StatusOK, wantIDs: []string{"10"}},
		{name: "names_and_types", query: "names=Energy&names=Fintech&types=Vertical", wantStatus: http.StatusOK, wantIDs: []string{"fintech"}},
		{name: "ids_and_types", query: "ids=10&types=Industry", wantStatus: http.StatusBadRequest, wantMessage: "Query must be names or paths"},
		{name: "unknown_type", query: "names=Energy&types=Nope", wantStatus: http.StatusNotAcceptable, wantMessage: "Tag type not found"},
		{name: "no_selector", query: "types=Industry", wantStatus: http.StatusBadRequest, wantMessage: "ids, names, paths must be not null or empty"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(server.URL + "/api/v" + dictionarytest.Version + "/tags/?" + tc.query)
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, tc.wantStatus, resp.StatusCode)

			if tc.wantStatus != http.StatusOK {
				var payload struct {
					Message string `json:"message"`
				}
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
				assert.Equal(t, tc.wantMessage, payload.Message)
				return
			}

			var body struct {
				Tags []tag.Tag `json:"tags"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

			ids := make([]string, 0, len(body.Tags))
			for _, item := range body.Tags {
				ids = append(ids, item.ID.ID)
			}
			assert.ElementsMatch(t, tc.wantIDs, ids)
		})
	}
}
