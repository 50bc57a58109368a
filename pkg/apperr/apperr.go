// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the error taxonomy returned by the dictionary client.

Every error that leaves a domain service is an [*AppError] carrying a
machine-readable Code. Callers branch on the code with [errors.Is] against
the package sentinels:

	tag, err := client.Tags.GetTagByID(ctx, id, false)
	if errors.Is(err, apperr.ErrEntityNotFound) {
	    // ...
	}

Architecture:

  - Construction-time failures (InvalidQuery, MalformedIdentifier, ...) are
    produced locally before any network call.
  - Remote failures are produced by the error translator from the status
    code and message of the service's error payload.
  - UnexpectedServiceError is the catch-all; it keeps the original cause so
    [errors.Is] still reaches e.g. [context.DeadlineExceeded].
*/
package apperr

import (
	"errors"
	"net/http"
)

// # Error Codes

const (
	CodeBadRequest                 = "BAD_REQUEST"
	CodeAccessDenied               = "ACCESS_DENIED"
	CodeValidationFailed           = "VALIDATION_FAILED"
	CodeEntityNotFound             = "ENTITY_NOT_FOUND"
	CodeEntityAlreadyExists        = "ENTITY_ALREADY_EXISTS"
	CodePermissionRightNotFound    = "PERMISSION_RIGHT_NOT_FOUND"
	CodeUserPermissionRoleNotFound = "USER_PERMISSION_ROLE_NOT_FOUND"
	CodePermissionRoleExists       = "PERMISSION_ROLE_ALREADY_EXISTS"
	CodeMalformedIdentifier        = "MALFORMED_IDENTIFIER"
	CodeMalformedPermissionRight   = "MALFORMED_PERMISSION_RIGHT"
	CodeInvalidQuery               = "INVALID_QUERY"
	CodeUnexpectedServiceError     = "UNEXPECTED_SERVICE_ERROR"
)

// AppError is the canonical error type of the dictionary client.
//
// It carries a machine-readable code, a human-readable message, the HTTP
// status reported by the service (0 for locally produced errors), and an
// optional slice of field-level validation errors.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "ENTITY_NOT_FOUND").
	Code string `json:"code"`
	// Message is a human-readable description.
	Message string `json:"error"`
	// HTTPStatus is the status code returned by the service, if any.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error (transport failure, context error).
	Cause error `json:"-"`
	// Details holds per-field validation errors for INVALID_QUERY errors.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the request field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an [*AppError] with the same Code.
//
// This makes the package sentinels usable with [errors.Is] regardless of the
// message or status carried by the actual error.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// # Sentinels

var (
	ErrBadRequest                 = &AppError{Code: CodeBadRequest}
	ErrAccessDenied               = &AppError{Code: CodeAccessDenied}
	ErrValidationFailed           = &AppError{Code: CodeValidationFailed}
	ErrEntityNotFound             = &AppError{Code: CodeEntityNotFound}
	ErrEntityAlreadyExists        = &AppError{Code: CodeEntityAlreadyExists}
	ErrPermissionRightNotFound    = &AppError{Code: CodePermissionRightNotFound}
	ErrUserPermissionRoleNotFound = &AppError{Code: CodeUserPermissionRoleNotFound}
	ErrPermissionRoleExists       = &AppError{Code: CodePermissionRoleExists}
	ErrMalformedIdentifier        = &AppError{Code: CodeMalformedIdentifier}
	ErrMalformedPermissionRight   = &AppError{Code: CodeMalformedPermissionRight}
	ErrInvalidQuery               = &AppError{Code: CodeInvalidQuery}
	ErrUnexpectedServiceError     = &AppError{Code: CodeUnexpectedServiceError}
)

// # Remote Errors

// BadRequest creates a 400 [AppError].
func BadRequest(msg string) *AppError {
	return &AppError{Code: CodeBadRequest, Message: msg, HTTPStatus: http.StatusBadRequest}
}

// AccessDenied creates a 403 [AppError].
func AccessDenied(msg string) *AppError {
	return &AppError{Code: CodeAccessDenied, Message: msg, HTTPStatus: http.StatusForbidden}
}

// ValidationFailed creates an [AppError] for values rejected by a domain rule.
//
// The service reports it as 406. It is also raised locally when a composite
// value such as a company industry violates its invariants.
func ValidationFailed(msg string) *AppError {
	return &AppError{Code: CodeValidationFailed, Message: msg, HTTPStatus: http.StatusNotAcceptable}
}

// EntityNotFound creates a 404 [AppError].
//
// Example:
//
//	apperr.EntityNotFound("Tag not found")
func EntityNotFound(msg string) *AppError {
	return &AppError{Code: CodeEntityNotFound, Message: msg, HTTPStatus: http.StatusNotFound}
}

// EntityAlreadyExists creates a 409 [AppError].
func EntityAlreadyExists(msg string) *AppError {
	return &AppError{Code: CodeEntityAlreadyExists, Message: msg, HTTPStatus: http.StatusConflict}
}

// PermissionRightNotFound creates a 404 [AppError] for the rights endpoint.
func PermissionRightNotFound(msg string) *AppError {
	return &AppError{Code: CodePermissionRightNotFound, Message: msg, HTTPStatus: http.StatusNotFound}
}

// UserPermissionRoleNotFound creates a 404 [AppError] for the role endpoints.
func UserPermissionRoleNotFound(msg string) *AppError {
	return &AppError{Code: CodeUserPermissionRoleNotFound, Message: msg, HTTPStatus: http.StatusNotFound}
}

// PermissionRoleAlreadyExists creates a 409 [AppError].
func PermissionRoleAlreadyExists(msg string) *AppError {
	return &AppError{Code: CodePermissionRoleExists, Message: msg, HTTPStatus: http.StatusConflict}
}

// UnexpectedServiceError creates the catch-all [AppError].
// status is the HTTP status when one was received, 0 otherwise.
func UnexpectedServiceError(msg string, status int, cause error) *AppError {
	return &AppError{Code: CodeUnexpectedServiceError, Message: msg, HTTPStatus: status, Cause: cause}
}

// # Local Errors

// MalformedIdentifier creates an [AppError] for an unparsable tag id or type.
func MalformedIdentifier(msg string) *AppError {
	return &AppError{Code: CodeMalformedIdentifier, Message: msg}
}

// MalformedPermissionRight creates an [AppError] for an unparsable permission right.
func MalformedPermissionRight(value string) *AppError {
	return &AppError{Code: CodeMalformedPermissionRight, Message: "Failed to parse permission right: " + value}
}

// InvalidQuery creates an [AppError] for a request rejected at construction time.
func InvalidQuery(msg string, details ...FieldError) *AppError {
	return &AppError{Code: CodeInvalidQuery, Message: msg, Details: details}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HasCode reports whether err's chain contains an [*AppError] with one of codes.
func HasCode(err error, codes ...string) bool {
	ae := As(err)
	if ae == nil {
		return false
	}
	for _, c := range codes {
		if ae.Code == c {
			return true
		}
	}
	return false
}
