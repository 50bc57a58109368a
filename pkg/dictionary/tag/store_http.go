// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"strconv"

	"github.com/taibuivan/dictionary/internal/platform/constants"
	"github.com/taibuivan/dictionary/internal/platform/svcerr"
	"github.com/taibuivan/dictionary/internal/platform/transport"
	"github.com/taibuivan/dictionary/pkg/apperr"
	"github.com/taibuivan/dictionary/pkg/query"
)

// HTTPRepository implements [Repository] against the dictionary service.
type HTTPRepository struct {
	client *transport.Client
}

// NewHTTPRepository creates a new [HTTPRepository].
func NewHTTPRepository(client *transport.Client) *HTTPRepository {
	return &HTTPRepository{client: client}
}

// tagListResponse is the envelope of list and bulk responses.
type tagListResponse struct {
	Tags []Tag `json:"tags"`
}

// bulkCreateRequest is the body of a bulk create.
type bulkCreateRequest struct {
	Tags []TagCreateRequest `json:"tags"`
}

// Get implements [Repository]. The id is path-escaped by the transport.
func (r *HTTPRepository) Get(ctx context.Context, id TagID, withParent bool) (*Tag, error) {
	pathParams := map[string]string{
		"type": id.Type.String(),
		"id":   id.ID,
	}
	params := query.New().Bool(constants.ParamWithParent, withParent).Values()

	var tag Tag
	if err := r.client.Get(ctx, constants.PathTag, pathParams, params, &tag); err != nil {
		return nil, svcerr.Wrap(svcerr.APITags, err)
	}

	return &tag, nil
}

// List implements [Repository].
func (r *HTTPRepository) List(ctx context.Context, request TagGetRequest) ([]Tag, error) {
	var resp tagListResponse
	if err := r.client.Get(ctx, constants.PathTags, nil, request.Query(), &resp); err != nil {
		return nil, svcerr.Wrap(svcerr.APITags, err)
	}

	if resp.Tags == nil {
		return []Tag{}, nil
	}
	return resp.Tags, nil
}

// Create implements [Repository].
func (r *HTTPRepository) Create(ctx context.Context, request TagCreateRequest) (*Tag, error) {
	var tag Tag
	if err := r.client.Post(ctx, constants.PathTags, request, &tag); err != nil {
		return nil, svcerr.Wrap(svcerr.APITags, err)
	}

	return &tag, nil
}

// CreateBatch implements [Repository].
func (r *HTTPRepository) CreateBatch(ctx context.Context, requests []TagCreateRequest) ([]Tag, error) {
	var resp tagListResponse
	if err := r.client.Post(ctx, constants.PathTagsBulk, bulkCreateRequest{Tags: requests}, &resp); err != nil {
		return nil, svcerr.Wrap(svcerr.APITags, err)
	}

	if len(resp.Tags) != len(requests) {
		return nil, unexpectedBatchSize(len(requests), len(resp.Tags))
	}
	return resp.Tags, nil
}

func unexpectedBatchSize(want, got int) error {
	return apperr.UnexpectedServiceError(
		"bulk create returned "+strconv.Itoa(got)+" tags for "+strconv.Itoa(want)+" requests", 0, nil)
}
