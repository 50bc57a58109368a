// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dictionarytest

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/dictionary/internal/platform/constants"
	requestutil "github.com/taibuivan/dictionary/internal/platform/request"
	"github.com/taibuivan/dictionary/internal/platform/respond"
	"github.com/taibuivan/dictionary/pkg/apperr"
	"github.com/taibuivan/dictionary/pkg/dictionary/tag"
	"github.com/taibuivan/dictionary/pkg/pointer"
	"github.com/taibuivan/dictionary/pkg/slice"
	"github.com/taibuivan/dictionary/pkg/slug"
	"github.com/taibuivan/dictionary/pkg/uuid"
)

// AddTag seeds a tag. A tag's path is its own materialized path: the parent
// of "10.1010" is the tag of the same type whose path is "10".
func (s *Service) AddTag(tags ...tag.Tag) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range tags {
		t.Parent = nil
		s.tags[t.ID] = t
	}
}

// Tag returns a stored tag.
func (s *Service) Tag(id tag.TagID) (tag.Tag, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tags[id]
	return t, ok
}

func (s *Service) registerTagRoutes(router chi.Router) {
	router.Get("/", s.listTags)
	router.Post("/", s.createTag)
	router.Post("/bulk", s.createTags)
	router.Get("/{type}/{id}/", s.getTag)
}

type tagListBody struct {
	Tags []tag.Tag `json:"tags"`
}

type bulkCreateBody struct {
	Tags []tag.TagCreateRequest `json:"tags"`
}

func (s *Service) getTag(writer http.ResponseWriter, request *http.Request) {
	tagType, err := tag.ParseTagType(requestutil.Param(request, "type"))
	if err != nil {
		respond.Status(writer, http.StatusNotAcceptable, "Tag type not found")
		return
	}

	id := tag.NewTagID(requestutil.Param(request, "id"), tagType)

	s.mu.Lock()
	defer s.mu.Unlock()

	found, ok := s.tags[id]
	if !ok {
		respond.Status(writer, http.StatusNotFound, "Tag not found")
		return
	}

	if requestutil.Bool(request, constants.ParamWithParent) {
		found = s.linkParents(found)
	}
	respond.OK(writer, found)
}

func (s *Service) listTags(writer http.ResponseWriter, request *http.Request) {
	ids := requestutil.List(request, constants.ParamIDs)
	names := requestutil.List(request, constants.ParamNames)
	paths := requestutil.List(request, constants.ParamPaths)
	limit := requestutil.IntOr(request, constants.ParamLimit, constants.DefaultTagLimit)
	offset := requestutil.IntOr(request, constants.ParamOffset, 0)

	if len(ids) == 0 && len(names) == 0 && len(paths) == 0 {
		respond.Status(writer, http.StatusBadRequest, "ids, names, paths must be not null or empty")
		return
	}
	if limit < 0 || limit > constants.MaxLimit || offset < 0 {
		respond.Status(writer, http.StatusBadRequest, "Invalid limit or offset")
		return
	}

	types, err := slice.MapErr(requestutil.List(request, constants.ParamTypes), tag.ParseTagType)
	if err != nil {
		respond.Status(writer, http.StatusNotAcceptable, "Tag type not found")
		return
	}
	if len(ids) > 0 && len(types) > 0 && len(names) == 0 && len(paths) == 0 {
		respond.Status(writer, http.StatusBadRequest, "Query must be names or paths")
		return
	}

	withParent := requestutil.Bool(request, constants.ParamWithParent)

	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []tag.Tag
	for _, t := range s.tags {
		if len(types) > 0 && !t.HasType(types...) {
			continue
		}
		if len(ids) > 0 && !contains(ids, t.ID.ID) {
			continue
		}
		if len(names) > 0 && !contains(names, t.Name) {
			continue
		}
		if len(paths) > 0 && !contains(paths, pointer.Val(t.Path)) {
			continue
		}
		if withParent {
			t = s.linkParents(t)
		}
		matched = append(matched, t)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ID.String() < matched[j].ID.String()
	})

	respond.OK(writer, tagListBody{Tags: page(matched, limit, offset)})
}

func (s *Service) createTag(writer http.ResponseWriter, request *http.Request) {
	var body tag.TagCreateRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.insertTag(body)
	if err != nil {
		respond.Error(writer, err)
		return
	}
	respond.Created(writer, created)
}

func (s *Service) createTags(writer http.ResponseWriter, request *http.Request) {
	var body bulkCreateBody
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[tag.TagID]tag.Tag, len(s.tags))
	for k, v := range s.tags {
		snapshot[k] = v
	}

	created := make([]tag.Tag, 0, len(body.Tags))
	for _, req := range body.Tags {
		t, err := s.insertTag(req)
		if err != nil {
			s.tags = snapshot
			respond.Error(writer, err)
			return
		}
		created = append(created, t)
	}

	respond.Created(writer, tagListBody{Tags: created})
}

// insertTag applies the service's create rules. Callers hold s.mu.
func (s *Service) insertTag(req tag.TagCreateRequest) (tag.Tag, error) {
	if !req.Type.Valid() {
		return tag.Tag{}, statusError(http.StatusNotAcceptable, "Tag type not found")
	}

	path := pointer.Val(req.Path)
	if parentPath := parentOf(path); parentPath != "" {
		if _, ok := s.findByPath(req.Type, parentPath); !ok {
			return tag.Tag{}, statusError(http.StatusNotFound, "Parent tag not found")
		}
	}

	id := pointer.Val(req.ID)
	if id == "" {
		if req.Type.IDKind() == tag.IDKindUUID {
			id = uuid.New()
		} else {
			id = slug.From(req.Name)
		}
	}

	created := tag.Tag{ID: tag.NewTagID(id, req.Type), Name: req.Name, Path: pointer.NonEmpty(path)}
	if _, exists := s.tags[created.ID]; exists {
		return tag.Tag{}, statusError(http.StatusConflict, "Tag and path already exists")
	}
	for _, t := range s.tags {
		if t.ID.Type == req.Type && t.Name == req.Name && pointer.Val(t.Path) == path {
			return tag.Tag{}, statusError(http.StatusConflict, "Tag and path already exists")
		}
	}

	s.tags[created.ID] = created
	return created, nil
}

// linkParents returns a copy of t with its parent chain resolved.
// Callers hold s.mu.
func (s *Service) linkParents(t tag.Tag) tag.Tag {
	parentPath := parentOf(pointer.Val(t.Path))
	if parentPath == "" {
		return t
	}

	parent, ok := s.findByPath(t.ID.Type, parentPath)
	if !ok {
		return t
	}

	linked := s.linkParents(parent)
	t.Parent = &linked
	return t
}

func (s *Service) findByPath(tagType tag.TagType, path string) (tag.Tag, bool) {
	for _, t := range s.tags {
		if t.ID.Type == tagType && pointer.Val(t.Path) == path {
			return t, true
		}
	}
	return tag.Tag{}, false
}

// parentOf drops the last label of a materialized path.
func parentOf(path string) string {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return ""
	}
	return path[:i]
}

func statusError(status int, message string) *apperr.AppError {
	return &apperr.AppError{Code: apperr.CodeBadRequest, Message: message, HTTPStatus: status}
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}
