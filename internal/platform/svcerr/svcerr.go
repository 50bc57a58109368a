// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package svcerr provides a bridge between the dictionary service's error
// payloads and the domain errors of [apperr].
//
// The meaning of a status code depends on the sub-API that produced it (a 404
// from the tag API is a missing parent tag, from the role API a missing
// permission role), so translation is table driven per [API]. Every table has
// an explicit default, which makes the mapping total.
package svcerr

import (
	"errors"
	"net/http"

	"github.com/taibuivan/dictionary/internal/platform/transport"
	"github.com/taibuivan/dictionary/pkg/apperr"
)

// API identifies the sub-API whose error table applies.
type API string

const (
	APITags             API = "tags"
	APISuggestions      API = "suggestions"
	APIPermissionRoles  API = "permission_roles"
	APIPermissionRights API = "permission_rights"
)

// rule builds a domain error from a message, using fallback when the service
// sent none.
type rule struct {
	build    func(msg string) *apperr.AppError
	fallback string
}

// table maps status codes to rules; missing codes use the default rule.
type table map[int]rule

var unexpected = rule{
	build: func(msg string) *apperr.AppError {
		return apperr.UnexpectedServiceError(msg, 0, nil)
	},
	fallback: "Unexpected dictionary service error",
}

var tables = map[API]table{
	APITags: {
		http.StatusBadRequest:    {apperr.BadRequest, "Bad request"},
		http.StatusForbidden:     {apperr.AccessDenied, "Access denied"},
		http.StatusNotFound:      {apperr.EntityNotFound, "Parent tag not found"},
		http.StatusNotAcceptable: {apperr.ValidationFailed, "Tag type not found"},
		http.StatusConflict:      {apperr.EntityAlreadyExists, "Tag and path already exists"},
	},
	APISuggestions: {
		http.StatusForbidden:     {apperr.AccessDenied, "Access denied"},
		http.StatusNotAcceptable: {apperr.ValidationFailed, "Suggestion type not found"},
	},
	APIPermissionRoles: {
		http.StatusForbidden: {apperr.AccessDenied, "Access denied"},
		http.StatusNotFound:  {apperr.UserPermissionRoleNotFound, "User permission role not found"},
		http.StatusConflict:  {apperr.PermissionRoleAlreadyExists, "Permission role already exists"},
	},
	APIPermissionRights: {
		http.StatusForbidden: {apperr.AccessDenied, "Access denied"},
		http.StatusNotFound:  {apperr.PermissionRightNotFound, "Permission right not found"},
		http.StatusConflict:  {apperr.PermissionRoleAlreadyExists, "Permission role already exists"},
	},
}

// Translate maps a {statusCode, message} pair from api into a domain error.
// Unknown APIs and unlisted status codes yield UNEXPECTED_SERVICE_ERROR.
func Translate(api API, statusCode int, message string) *apperr.AppError {
	r, ok := tables[api][statusCode]
	if !ok {
		r = unexpected
	}

	if message == "" {
		message = r.fallback
	}

	ae := r.build(message)
	ae.HTTPStatus = statusCode
	return ae
}

// Wrap translates a [*transport.StatusError] found in err's chain.
// Any other error (already a domain error, or nil) is returned unchanged.
func Wrap(api API, err error) error {
	if err == nil {
		return nil
	}

	var statusErr *transport.StatusError
	if errors.As(err, &statusErr) {
		return Translate(api, statusErr.StatusCode, statusErr.Message)
	}

	return err
}
