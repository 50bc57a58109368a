// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package permission_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/dictionary/pkg/apperr"
	"github.com/taibuivan/dictionary/pkg/dictionary/permission"
)

// stubRepository returns canned results and records the last scope.
type stubRepository struct {
	role      *permission.UserPermissionRole
	rights    *permission.UserPermissionRights
	err       error
	lastScope permission.Scope
	calls     int
}

func (s *stubRepository) GetRole(_ context.Context, scope permission.Scope) (*permission.UserPermissionRole, error) {
	s.calls++
	s.lastScope = scope
	return s.role, s.err
}

func (s *stubRepository) GetRights(_ context.Context, scope permission.Scope) (*permission.UserPermissionRights, error) {
	s.calls++
	s.lastScope = scope
	return s.rights, s.err
}

func (s *stubRepository) CreateRole(_ context.Context, scope permission.Scope, role permission.PermissionRole) (*permission.UserPermissionRole, error) {
	s.calls++
	s.lastScope = scope
	if s.err != nil {
		return nil, s.err
	}
	return &permission.UserPermissionRole{ID: uuid.New(), UserID: scope.UserID, PermissionRole: role,
		AccessObjectType: scope.AccessObjectType, AccessObjectID: scope.AccessObjectID}, nil
}

func (s *stubRepository) EditRole(ctx context.Context, scope permission.Scope, role permission.PermissionRole) (*permission.UserPermissionRole, error) {
	return s.CreateRole(ctx, scope, role)
}

func (s *stubRepository) DeleteRole(_ context.Context, scope permission.Scope) error {
	s.calls++
	s.lastScope = scope
	return s.err
}

/*
TestService_GetPermissionRole verifies absent-on-not-found and passthrough
of every other error.
*/
func TestService_GetPermissionRole(t *testing.T) {
	ctx := context.Background()
	userID, objectID := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		err     error
		wantOK  bool
		wantErr error
	}{
		{"found", nil, true, nil},
		{"not_found_is_absent", apperr.UserPermissionRoleNotFound("User permission role not found"), false, nil},
		{"access_denied_propagates", apperr.AccessDenied("Access denied"), false, apperr.ErrAccessDenied},
		{"rights_not_found_propagates", apperr.PermissionRightNotFound("no"), false, apperr.ErrPermissionRightNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepository{err: tt.err}
			if tt.err == nil {
				repo.role = &permission.UserPermissionRole{UserID: userID, PermissionRole: permission.Admin}
			}
			service := permission.NewService(repo, nil)

			role, ok, err := service.GetPermissionRole(ctx, userID, permission.Company, objectID)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if ok {
				assert.Equal(t, permission.Admin, role.PermissionRole)
			}
			assert.Equal(t, permission.Scope{UserID: userID, AccessObjectType: permission.Company, AccessObjectID: objectID}, repo.lastScope)
		})
	}
}

/*
TestService_GetUserPermissionRights verifies both not-found kinds are absent
and an empty grant stays present.
*/
func TestService_GetUserPermissionRights(t *testing.T) {
	ctx := context.Background()

	for _, notFound := range []error{
		apperr.PermissionRightNotFound("Permission right not found"),
		apperr.UserPermissionRoleNotFound("User permission role not found"),
	} {
		service := permission.NewService(&stubRepository{err: notFound}, nil)
		rights, ok, err := service.GetUserPermissionRights(ctx, uuid.New(), permission.Project, uuid.New())
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, rights)
	}

	empty := &permission.UserPermissionRights{PermissionRole: permission.Employee, PermissionRights: []permission.PermissionRight{}}
	service := permission.NewService(&stubRepository{rights: empty}, nil)
	rights, ok, err := service.GetUserPermissionRights(ctx, uuid.New(), permission.Project, uuid.New())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, rights.PermissionRights)
	assert.False(t, rights.Has(permission.NewPermissionRight("View", permission.Project)))

	service = permission.NewService(&stubRepository{err: apperr.UnexpectedServiceError("down", 503, nil)}, nil)
	_, _, err = service.GetUserPermissionRights(ctx, uuid.New(), permission.Project, uuid.New())
	assert.ErrorIs(t, err, apperr.ErrUnexpectedServiceError)
}

/*
TestService_CheckPermission verifies the fail-closed check.
*/
func TestService_CheckPermission(t *testing.T) {
	ctx := context.Background()
	read := permission.NewPermissionRight("Read", permission.Project)
	granted := &permission.UserPermissionRights{
		PermissionRole:   permission.Employee,
		PermissionRights: []permission.PermissionRight{read},
	}

	tests := []struct {
		name  string
		repo  *stubRepository
		right permission.PermissionRight
		want  bool
	}{
		{"granted", &stubRepository{rights: granted}, read, true},
		{"not_granted", &stubRepository{rights: granted}, permission.NewPermissionRight("Delete", permission.Project), false},
		{"not_found", &stubRepository{err: apperr.PermissionRightNotFound("none")}, read, false},
		{"service_down", &stubRepository{err: apperr.UnexpectedServiceError("down", 502, nil)}, read, false},
		{"foreign_error", &stubRepository{err: errors.New("boom")}, read, false},
		{"unknown_object_type", &stubRepository{rights: granted}, permission.PermissionRight{AccessObjectType: "Galaxy", Action: "Read"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := permission.NewService(tt.repo, nil)
			assert.Equal(t, tt.want, service.CheckPermission(ctx, uuid.New(), uuid.New(), tt.right))
		})
	}

	repo := &stubRepository{rights: granted}
	permission.NewService(repo, nil).CheckPermission(ctx, uuid.New(), uuid.New(), read)
	assert.Equal(t, permission.Project, repo.lastScope.AccessObjectType)
}

/*
TestService_Writes verifies that write errors are not converted.
*/
func TestService_Writes(t *testing.T) {
	ctx := context.Background()
	userID, objectID := uuid.New(), uuid.New()

	service := permission.NewService(&stubRepository{}, nil)
	created, err := service.CreatePermissionRole(ctx, userID, permission.Company, objectID, permission.Owner)
	require.NoError(t, err)
	assert.Equal(t, permission.Owner, created.PermissionRole)

	edited, err := service.EditPermissionRole(ctx, userID, permission.Company, objectID, permission.Employee)
	require.NoError(t, err)
	assert.Equal(t, permission.Employee, edited.PermissionRole)

	require.NoError(t, service.DeletePermissionRole(ctx, userID, permission.Company, objectID))

	conflict := permission.NewService(&stubRepository{err: apperr.PermissionRoleAlreadyExists("Permission role already exists")}, nil)
	_, err = conflict.CreatePermissionRole(ctx, userID, permission.Company, objectID, permission.Owner)
	assert.ErrorIs(t, err, apperr.ErrPermissionRoleExists)

	missing := permission.NewService(&stubRepository{err: apperr.UserPermissionRoleNotFound("User permission role not found")}, nil)
	assert.ErrorIs(t, missing.DeletePermissionRole(ctx, userID, permission.Company, objectID), apperr.ErrUserPermissionRoleNotFound)
}
