// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/dictionary/internal/api"
	"github.com/taibuivan/dictionary/internal/dictionarytest"
	"github.com/taibuivan/dictionary/pkg/dictionary/tag"
)

func newTestServer(t *testing.T, checks ...api.Check) (*httptest.Server, *dictionarytest.Service) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := dictionarytest.NewService()
	liveness, readiness := api.NewHealthHandlers(checks, logger)

	server := api.NewServer(":0", logger, api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Dictionary: service.Handler(),
	})

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return ts, service
}

/*
TestHealth_Probes covers liveness and readiness with and without failing checks.
*/
func TestHealth_Probes(t *testing.T) {
	tests := []struct {
		name       string
		checks     []api.Check
		wantStatus int
		wantState  string
	}{
		{name: "no_checks", wantStatus: http.StatusOK, wantState: "ready"},
		{
			name:       "passing_check",
			checks:     []api.Check{{Name: "seed", Run: func() error { return nil }}},
			wantStatus: http.StatusOK,
			wantState:  "ready",
		},
		{
			name:       "failing_check",
			checks:     []api.Check{{Name: "seed", Run: func() error { return errors.New("not loaded") }}},
			wantStatus: http.StatusServiceUnavailable,
			wantState:  "degraded",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts, _ := newTestServer(t, tc.checks...)

			live, err := http.Get(ts.URL + "/health")
			require.NoError(t, err)
			live.Body.Close()
			assert.Equal(t, http.StatusOK, live.StatusCode)

			ready, err := http.Get(ts.URL + "/ready")
			require.NoError(t, err)
			defer ready.Body.Close()
			assert.Equal(t, tc.wantStatus, ready.StatusCode)

			var body struct {
				Status string `json:"status"`
			}
			require.NoError(t, json.NewDecoder(ready.Body).Decode(&body))
			assert.Equal(t, tc.wantState, body.Status)
		})
	}
}

/*
TestServer_MountsDictionaryAPI checks the versioned API is reachable next to the probes.
*/
func TestServer_MountsDictionaryAPI(t *testing.T) {
	ts, service := newTestServer(t)
	service.AddTag(tag.Tag{ID: tag.NewTagID("fintech", tag.Vertical), Name: "FinTech"})

	resp, err := http.Get(ts.URL + "/api/v" + dictionarytest.Version + "/tags/Vertical/fintech/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got tag.Tag
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "FinTech", got.Name)
	assert.Equal(t, 1, service.Calls(http.MethodGet, "tags/Vertical/fintech/"))
}
