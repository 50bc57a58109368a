// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package svcerr_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/dictionary/internal/platform/svcerr"
	"github.com/taibuivan/dictionary/internal/platform/transport"
	"github.com/taibuivan/dictionary/pkg/apperr"
)

/*
TestTranslate_Tables checks every documented status code of every sub-API,
plus an unlisted code per API.
*/
func TestTranslate_Tables(t *testing.T) {
	tests := []struct {
		api    svcerr.API
		status int
		want   string
	}{
		{svcerr.APITags, 400, apperr.CodeBadRequest},
		{svcerr.APITags, 403, apperr.CodeAccessDenied},
		{svcerr.APITags, 404, apperr.CodeEntityNotFound},
		{svcerr.APITags, 406, apperr.CodeValidationFailed},
		{svcerr.APITags, 409, apperr.CodeEntityAlreadyExists},
		{svcerr.APITags, 418, apperr.CodeUnexpectedServiceError},

		{svcerr.APISuggestions, 403, apperr.CodeAccessDenied},
		{svcerr.APISuggestions, 406, apperr.CodeValidationFailed},
		{svcerr.APISuggestions, 400, apperr.CodeUnexpectedServiceError},
		{svcerr.APISuggestions, 404, apperr.CodeUnexpectedServiceError},
		{svcerr.APISuggestions, 418, apperr.CodeUnexpectedServiceError},

		{svcerr.APIPermissionRoles, 403, apperr.CodeAccessDenied},
		{svcerr.APIPermissionRoles, 404, apperr.CodeUserPermissionRoleNotFound},
		{svcerr.APIPermissionRoles, 409, apperr.CodePermissionRoleExists},
		{svcerr.APIPermissionRoles, 418, apperr.CodeUnexpectedServiceError},

		{svcerr.APIPermissionRights, 403, apperr.CodeAccessDenied},
		{svcerr.APIPermissionRights, 404, apperr.CodePermissionRightNotFound},
		{svcerr.APIPermissionRights, 409, apperr.CodePermissionRoleExists},
		{svcerr.APIPermissionRights, 418, apperr.CodeUnexpectedServiceError},

		{svcerr.API("unknown"), 404, apperr.CodeUnexpectedServiceError},
	}

	for _, tt := range tests {
		t.Run(string(tt.api)+"_"+strconv.Itoa(tt.status), func(t *testing.T) {
			err := svcerr.Translate(tt.api, tt.status, "boom")

			assert.Equal(t, tt.want, err.Code)
			assert.Equal(t, "boom", err.Message)
			assert.Equal(t, tt.status, err.HTTPStatus)
		})
	}
}

/*
TestTranslate_FallbackMessages verifies the default messages for empty payloads.
*/
func TestTranslate_FallbackMessages(t *testing.T) {
	assert.Equal(t, "Parent tag not found", svcerr.Translate(svcerr.APITags, 404, "").Message)
	assert.Equal(t, "Tag type not found", svcerr.Translate(svcerr.APITags, 406, "").Message)
	assert.Equal(t, "Tag and path already exists", svcerr.Translate(svcerr.APITags, 409, "").Message)
	assert.Equal(t, "Suggestion type not found", svcerr.Translate(svcerr.APISuggestions, 406, "").Message)
	assert.Equal(t, "Unexpected dictionary service error", svcerr.Translate(svcerr.APITags, 418, "").Message)
}

/*
TestWrap verifies that only transport status errors are translated.
*/
func TestWrap(t *testing.T) {
	// 1. nil stays nil
	assert.NoError(t, svcerr.Wrap(svcerr.APITags, nil))

	// 2. Status errors are translated
	err := svcerr.Wrap(svcerr.APIPermissionRoles, &transport.StatusError{StatusCode: 409, Message: "exists"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrPermissionRoleExists)

	// 3. Domain errors pass through unchanged
	original := apperr.UnexpectedServiceError("down", 503, nil)
	assert.Same(t, original, svcerr.Wrap(svcerr.APITags, original))

	// 4. Foreign errors pass through unchanged
	foreign := errors.New("foreign")
	assert.Equal(t, foreign, svcerr.Wrap(svcerr.APITags, foreign))
}
