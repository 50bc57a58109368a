// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dictionarytest_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/dictionary/internal/dictionarytest"
	"github.com/taibuivan/dictionary/pkg/apperr"
	"github.com/taibuivan/dictionary/pkg/dictionary"
	"github.com/taibuivan/dictionary/pkg/dictionary/permission"
	"github.com/taibuivan/dictionary/pkg/dictionary/suggestion"
	"github.com/taibuivan/dictionary/pkg/dictionary/tag"
)

const (
	seedUser    = "3f0c6d2e-8a44-4b8e-9a51-0d5f3c2b7e11"
	seedCompany = "9a1b2c3d-4e5f-4a6b-8c7d-0e1f2a3b4c5d"
)

const seedYAML = `
tags:
  - {type: Industry, id: "10", name: Energy, path: "10"}
  - {type: Industry, id: "1010", name: Oil and Gas, path: "10.1010"}
  - {type: Vertical, id: fintech, name: FinTech}
suggestions:
  - {type: Industry, id: "1010", name: Oil and Gas, path: "10.1010"}
roles:
  - userId: ` + seedUser + `
    accessObjectType: Company
    accessObjectId: ` + seedCompany + `
    role: Owner
rights:
  - role: Owner
    rights: ["EditCompanyProfile@Company"]
`

/*
TestSeed_LoadAndApply reads a seed file and serves its state to a client.
*/
func TestSeed_LoadAndApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	seed, err := dictionarytest.LoadSeed(path)
	require.NoError(t, err)
	assert.Len(t, seed.Tags, 3)

	server := dictionarytest.New()
	t.Cleanup(server.Close)
	require.NoError(t, server.Apply(seed))

	client, err := dictionary.New(server.Config(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	found, err := client.Tags.GetTagByID(ctx, tag.NewTagID("1010", tag.Industry), true)
	require.NoError(t, err)
	require.True(t, found.HasParent())
	assert.Equal(t, "Energy", found.Parent.Name)

	suggestions, err := client.Suggestions.Search(ctx, suggestion.Industry, "oil")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "1010", suggestions[0].ID)

	allowed := client.Permissions.CheckPermission(ctx,
		uuid.MustParse(seedUser),
		uuid.MustParse(seedCompany),
		permission.NewPermissionRight("EditCompanyProfile", permission.Company),
	)
	assert.True(t, allowed)
}

/*
TestSeed_ApplyRejects covers malformed entries. Nothing is applied on error.
*/
func TestSeed_ApplyRejects(t *testing.T) {
	const keptTag = "tags:\n  - {type: Vertical, id: kept, name: Kept}\n"

	tests := []struct {
		name string
		yaml string
	}{
		{name: "unknown_tag_type", yaml: keptTag + "  - {type: Nope, id: x, name: X}\n"},
		{name: "unknown_suggestion_type", yaml: keptTag + "suggestions:\n  - {type: Nope, id: x, name: X}\n"},
		{name: "bad_user_id", yaml: keptTag + "roles:\n  - {userId: nope, accessObjectType: Company, accessObjectId: " + seedCompany + ", role: Owner}\n"},
		{name: "unknown_role", yaml: keptTag + "rights:\n  - {role: Guest, rights: [\"a@Company\"]}\n"},
		{name: "malformed_right", yaml: keptTag + "rights:\n  - {role: Owner, rights: [\"no-separator\"]}\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seed, err := dictionarytest.ParseSeed([]byte(tc.yaml))
			require.NoError(t, err)

			service := dictionarytest.NewService()
			require.Error(t, service.Apply(seed))

			_, ok := service.Tag(tag.NewTagID("kept", tag.Vertical))
			assert.False(t, ok)
		})
	}
}

/*
TestParseSeed_InvalidYAML reports decoding failures.
*/
func TestParseSeed_InvalidYAML(t *testing.T) {
	_, err := dictionarytest.ParseSeed([]byte("tags: [unclosed"))
	require.Error(t, err)

	_, err = dictionarytest.LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Nil(t, apperr.As(err))
}
