// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package suggestion

import (
	"context"

	"github.com/taibuivan/dictionary/internal/platform/constants"
	"github.com/taibuivan/dictionary/internal/platform/svcerr"
	"github.com/taibuivan/dictionary/internal/platform/transport"
)

// HTTPRepository implements [Repository] against the dictionary service.
type HTTPRepository struct {
	client *transport.Client
}

// NewHTTPRepository creates a new [HTTPRepository].
func NewHTTPRepository(client *transport.Client) *HTTPRepository {
	return &HTTPRepository{client: client}
}

// List implements [Repository].
func (r *HTTPRepository) List(ctx context.Context, request Request) ([]Suggestion, error) {
	var resp listResponse
	if err := r.client.Get(ctx, constants.PathSuggestion, nil, request.Values(), &resp); err != nil {
		return nil, svcerr.Wrap(svcerr.APISuggestions, err)
	}
	return resp.ListSuggestion, nil
}
