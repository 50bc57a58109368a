// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dictionarytest

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/taibuivan/dictionary/pkg/dictionary/permission"
	"github.com/taibuivan/dictionary/pkg/dictionary/suggestion"
	"github.com/taibuivan/dictionary/pkg/dictionary/tag"
	"github.com/taibuivan/dictionary/pkg/pointer"
)

// Seed is the initial state of a [Service], usually read from YAML:
//
//	tags:
//	  - {type: Industry, id: "10", name: Energy, path: "10"}
//	suggestions:
//	  - {type: Industry, id: "10", name: Energy, path: "10"}
//	roles:
//	  - userId: 3f0c...
//	    accessObjectType: Company
//	    accessObjectId: 9a1b...
//	    role: Owner
//	rights:
//	  - role: Owner
//	    rights: ["EditCompanyProfile@Company"]
type Seed struct {
	Tags        []SeedTag        `yaml:"tags"`
	Suggestions []SeedSuggestion `yaml:"suggestions"`
	Roles       []SeedRole       `yaml:"roles"`
	Rights      []SeedRights     `yaml:"rights"`
}

type SeedTag struct {
	Type string `yaml:"type"`
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

type SeedSuggestion struct {
	Type string `yaml:"type"`
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

type SeedRole struct {
	UserID           string `yaml:"userId"`
	AccessObjectType string `yaml:"accessObjectType"`
	AccessObjectID   string `yaml:"accessObjectId"`
	Role             string `yaml:"role"`
}

type SeedRights struct {
	Role   string   `yaml:"role"`
	Rights []string `yaml:"rights"`
}

// LoadSeed reads a YAML seed file.
func LoadSeed(path string) (*Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: failed to read %s: %w", path, err)
	}
	return ParseSeed(raw)
}

// ParseSeed decodes a YAML seed document.
func ParseSeed(raw []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("seed: failed to parse: %w", err)
	}
	return &seed, nil
}

// Apply loads every entry of seed into the service. Entries are checked
// first; on error nothing is applied.
func (s *Service) Apply(seed *Seed) error {
	tags := make([]tag.Tag, 0, len(seed.Tags))
	for i, entry := range seed.Tags {
		tagType, err := tag.ParseTagType(entry.Type)
		if err != nil {
			return fmt.Errorf("seed: tags[%d]: %w", i, err)
		}
		tags = append(tags, tag.Tag{
			ID:   tag.NewTagID(entry.ID, tagType),
			Name: entry.Name,
			Path: pointer.NonEmpty(entry.Path),
		})
	}

	type suggestionEntry struct {
		suggestionType suggestion.Type
		item           suggestion.Suggestion
		path           string
	}
	suggestions := make([]suggestionEntry, 0, len(seed.Suggestions))
	for i, entry := range seed.Suggestions {
		suggestionType, err := suggestion.ParseType(entry.Type)
		if err != nil {
			return fmt.Errorf("seed: suggestions[%d]: %w", i, err)
		}
		suggestions = append(suggestions, suggestionEntry{
			suggestionType: suggestionType,
			item:           suggestion.Suggestion{ID: entry.ID, Name: entry.Name},
			path:           entry.Path,
		})
	}

	type roleEntry struct {
		scope permission.Scope
		role  permission.PermissionRole
	}
	roles := make([]roleEntry, 0, len(seed.Roles))
	for i, entry := range seed.Roles {
		scope, role, err := entry.parse()
		if err != nil {
			return fmt.Errorf("seed: roles[%d]: %w", i, err)
		}
		roles = append(roles, roleEntry{scope: scope, role: role})
	}

	rights := make(map[permission.PermissionRole][]permission.PermissionRight, len(seed.Rights))
	for i, entry := range seed.Rights {
		role, err := permission.ParsePermissionRole(entry.Role)
		if err != nil {
			return fmt.Errorf("seed: rights[%d]: %w", i, err)
		}
		for _, raw := range entry.Rights {
			right, err := permission.ParsePermissionRight(raw)
			if err != nil {
				return fmt.Errorf("seed: rights[%d]: %w", i, err)
			}
			rights[role] = append(rights[role], right)
		}
	}

	s.AddTag(tags...)
	for _, entry := range suggestions {
		s.AddSuggestion(entry.suggestionType, entry.item, entry.path)
	}
	for _, entry := range roles {
		s.AddRole(entry.scope, entry.role)
	}
	for role, granted := range rights {
		s.SetRights(role, granted...)
	}
	return nil
}

func (r SeedRole) parse() (permission.Scope, permission.PermissionRole, error) {
	userID, err := uuid.Parse(r.UserID)
	if err != nil {
		return permission.Scope{}, 0, fmt.Errorf("userId: %w", err)
	}
	objectType, err := permission.ParseAccessObjectType(r.AccessObjectType)
	if err != nil {
		return permission.Scope{}, 0, err
	}
	objectID, err := uuid.Parse(r.AccessObjectID)
	if err != nil {
		return permission.Scope{}, 0, fmt.Errorf("accessObjectId: %w", err)
	}
	role, err := permission.ParsePermissionRole(r.Role)
	if err != nil {
		return permission.Scope{}, 0, err
	}

	scope := permission.Scope{UserID: userID, AccessObjectType: objectType, AccessObjectID: objectID}
	return scope, role, nil
}
