// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/dictionary/internal/platform/ctxutil"
	"github.com/taibuivan/dictionary/pkg/apperr"
	"github.com/taibuivan/dictionary/pkg/slice"
)

// Service is the caller-facing facade of the tag domain.
//
// It validates requests before they reach the [Repository] and adds the
// lookup semantics the service itself does not offer (all-or-nothing batch
// reads, find-or-create).
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new [Service]. A nil logger uses slog.Default().
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Reads

// GetTagByID fetches one tag; EntityNotFound when it does not exist.
func (service *Service) GetTagByID(ctx context.Context, id TagID, withParent bool) (*Tag, error) {
	if !id.Type.Valid() {
		return nil, apperr.MalformedIdentifier("Unknown tag type in id: " + id.String())
	}
	return service.repo.Get(ctx, id, withParent)
}

// FindTagByID is [Service.GetTagByID] with absence reported as ok=false.
func (service *Service) FindTagByID(ctx context.Context, id TagID, withParent bool) (*Tag, bool, error) {
	tag, err := service.GetTagByID(ctx, id, withParent)
	if errors.Is(err, apperr.ErrEntityNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return tag, true, nil
}

// GetTagByName finds the tag with the exact name (and path, when given) of
// the given type.
func (service *Service) GetTagByName(ctx context.Context, name string, tagType TagType, path *string, withParent bool) (*Tag, error) {
	opts := []GetOption{
		WithNames(name),
		WithTypes(tagType),
		WithParent(withParent),
		WithLimit(1),
	}
	if path != nil && *path != "" {
		opts = append(opts, WithPaths(*path))
	}

	request, err := NewTagGetRequest(opts...)
	if err != nil {
		return nil, err
	}

	tags, err := service.repo.List(ctx, request)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return nil, apperr.EntityNotFound(fmt.Sprintf("Tag not found: %s (%s)", name, tagType))
	}

	return &tags[0], nil
}

// GetTags runs a list query. The result is never nil.
func (service *Service) GetTags(ctx context.Context, request TagGetRequest) ([]Tag, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	tags, err := service.repo.List(ctx, request)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []Tag{}
	}
	return tags, nil
}

// GetTagsByIDs fetches every tag in ids or fails. Duplicate ids are sent
// once; if the service returns fewer (or more) tags than distinct ids were
// requested, the call fails with EntityNotFound.
func (service *Service) GetTagsByIDs(ctx context.Context, ids []string, withParent bool, limit, offset int) ([]Tag, error) {
	unique := slice.Unique(ids)

	request, err := NewTagGetRequest(
		WithIDs(unique...),
		WithParent(withParent),
		WithLimit(limit),
		WithOffset(offset),
	)
	if err != nil {
		return nil, err
	}

	tags, err := service.repo.List(ctx, request)
	if err != nil {
		return nil, err
	}

	returned := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		returned[t.ID.ID] = struct{}{}
	}

	var missing []string
	for _, id := range unique {
		if _, ok := returned[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		return nil, apperr.EntityNotFound("Tags not found: " + strings.Join(missing, ", "))
	}
	if len(tags) != len(unique) {
		return nil, apperr.EntityNotFound(fmt.Sprintf("Expected %d tags, service returned %d", len(unique), len(tags)))
	}

	return tags, nil
}

// # Writes

// GetTagIfNotExistsCreate returns the existing tag matching request, or
// creates it. Lookup is by id when the request has one, by name (and path)
// otherwise. A concurrent creation surfaces as EntityAlreadyExists.
func (service *Service) GetTagIfNotExistsCreate(ctx context.Context, request TagCreateRequest, withParent bool) (*Tag, error) {
	request = request.Normalize()
	if err := request.Validate(); err != nil {
		return nil, err
	}

	var (
		existing *Tag
		err      error
	)
	if request.ID != nil {
		existing, err = service.repo.Get(ctx, NewTagID(*request.ID, request.Type), withParent)
	} else {
		existing, err = service.GetTagByName(ctx, request.Name, request.Type, request.Path, withParent)
	}

	switch {
	case err == nil:
		return existing, nil
	case !errors.Is(err, apperr.ErrEntityNotFound):
		return nil, err
	}

	created, err := service.create(ctx, request)
	if err != nil {
		return nil, err
	}

	// A freshly created tag comes back without its parent chain.
	if withParent && created.Path != nil && created.Parent == nil {
		return service.repo.Get(ctx, created.ID, true)
	}
	return created, nil
}

// CreateTag validates and creates one tag.
func (service *Service) CreateTag(ctx context.Context, request TagCreateRequest) (*Tag, error) {
	request = request.Normalize()
	if err := request.Validate(); err != nil {
		return nil, err
	}
	return service.create(ctx, request)
}

// CreateTags validates every request, then creates them in one call. A
// single invalid request rejects the whole batch before any network call.
func (service *Service) CreateTags(ctx context.Context, requests []TagCreateRequest) ([]Tag, error) {
	if len(requests) == 0 {
		return []Tag{}, nil
	}

	normalized := make([]TagCreateRequest, len(requests))
	var details []apperr.FieldError
	for i, request := range requests {
		normalized[i] = request.Normalize()
		ae := apperr.As(normalized[i].Validate())
		if ae == nil {
			continue
		}
		for _, d := range ae.Details {
			details = append(details, apperr.FieldError{
				Field:   fmt.Sprintf("tags[%d].%s", i, d.Field),
				Message: d.Message,
			})
		}
	}
	if len(details) > 0 {
		return nil, apperr.InvalidQuery("Validation failed", details...)
	}

	tags, err := service.repo.CreateBatch(ctx, normalized)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx, service.logger).InfoContext(ctx, "tags_created",
		slog.Int("count", len(tags)),
	)
	return tags, nil
}

func (service *Service) create(ctx context.Context, request TagCreateRequest) (*Tag, error) {
	tag, err := service.repo.Create(ctx, request)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx, service.logger).InfoContext(ctx, "tag_created",
		slog.String("tag_id", tag.ID.String()),
	)
	return tag, nil
}
