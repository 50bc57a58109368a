// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package suggestion

import (
	"context"
	"log/slog"

	"github.com/taibuivan/dictionary/internal/platform/ctxutil"
)

// Service answers autocomplete queries.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new [Service]. A nil logger uses slog.Default().
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// GetSuggestions runs request. On success the result is never nil.
func (service *Service) GetSuggestions(ctx context.Context, request Request) ([]Suggestion, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	suggestions, err := service.repo.List(ctx, request)
	if err != nil {
		return nil, err
	}
	if suggestions == nil {
		suggestions = []Suggestion{}
	}

	ctxutil.GetLogger(ctx, service.logger).DebugContext(ctx, "suggestions_listed",
		slog.String("type", request.Type.String()),
		slog.Int("count", len(suggestions)),
	)
	return suggestions, nil
}

// Search is a shorthand for a text query of the given type.
func (service *Service) Search(ctx context.Context, suggestionType Type, text string, opts ...Option) ([]Suggestion, error) {
	request, err := NewRequest(suggestionType, append([]Option{WithQuery(text)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return service.GetSuggestions(ctx, request)
}
