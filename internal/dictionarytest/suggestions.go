// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dictionarytest

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/dictionary/internal/platform/constants"
	requestutil "github.com/taibuivan/dictionary/internal/platform/request"
	"github.com/taibuivan/dictionary/internal/platform/respond"
	"github.com/taibuivan/dictionary/pkg/dictionary/suggestion"
)

type seededSuggestion struct {
	suggestion.Suggestion
	path string
}

// AddSuggestion seeds a suggestion. path places it below parent paths for
// parentIds filtering and may be empty.
func (s *Service) AddSuggestion(suggestionType suggestion.Type, item suggestion.Suggestion, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.suggestions[suggestionType] = append(s.suggestions[suggestionType], seededSuggestion{Suggestion: item, path: path})
}

func (s *Service) registerSuggestionRoutes(router chi.Router) {
	router.Get("/", s.listSuggestions)
}

type suggestionListBody struct {
	ListSuggestion []suggestion.Suggestion `json:"listSuggestion"`
}

func (s *Service) listSuggestions(writer http.ResponseWriter, request *http.Request) {
	suggestionType, err := suggestion.ParseType(request.URL.Query().Get(constants.ParamSuggestionType))
	if err != nil {
		respond.Status(writer, http.StatusNotAcceptable, "Suggestion type not found")
		return
	}

	text := strings.ToLower(request.URL.Query().Get(constants.ParamQuery))
	parents := requestutil.List(request, constants.ParamParentIDs)
	limit := requestutil.IntOr(request, constants.ParamLimit, constants.DefaultSuggestionLimit)
	offset := requestutil.IntOr(request, constants.ParamOffset, 0)

	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []suggestion.Suggestion
	for _, item := range s.suggestions[suggestionType] {
		if text != "" && !strings.Contains(strings.ToLower(item.Name), text) {
			continue
		}
		if len(parents) > 0 && !underAny(item.path, parents) {
			continue
		}
		matched = append(matched, item.Suggestion)
	}

	// An empty result is sent as null, like the real service does.
	respond.OK(writer, suggestionListBody{ListSuggestion: page(matched, limit, offset)})
}

func underAny(path string, parents []string) bool {
	for _, parent := range parents {
		if strings.HasPrefix(path, parent+".") {
			return true
		}
	}
	return false
}
