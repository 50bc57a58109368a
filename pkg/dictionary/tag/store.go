// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import "context"

// Repository is the storage port of the tag domain. Implementations return
// domain errors from [apperr].
type Repository interface {
	// Get fetches one tag; EntityNotFound when it does not exist.
	Get(ctx context.Context, id TagID, withParent bool) (*Tag, error)

	// List runs a list query. The result may be shorter than requested.
	List(ctx context.Context, request TagGetRequest) ([]Tag, error)

	// Create creates one tag and returns it as stored.
	Create(ctx context.Context, request TagCreateRequest) (*Tag, error)

	// CreateBatch creates several tags atomically.
	CreateBatch(ctx context.Context, requests []TagCreateRequest) ([]Tag, error)
}
