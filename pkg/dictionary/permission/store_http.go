// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package permission

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/taibuivan/dictionary/internal/platform/constants"
	"github.com/taibuivan/dictionary/internal/platform/svcerr"
	"github.com/taibuivan/dictionary/internal/platform/transport"
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

// # Wire Types

type enumDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type userPermissionRoleDTO struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	Role             enumDTO   `json:"role"`
	AccessObjectType enumDTO   `json:"accessObjectType"`
	AccessObjectID   uuid.UUID `json:"accessObjectId"`
}

type userPermissionRightsDTO struct {
	PermissionRole   enumDTO           `json:"permissionRole"`
	PermissionRights []PermissionRight `json:"permissionRights"`
}

type roleRequestDTO struct {
	UserID           uuid.UUID `json:"userId"`
	AccessObjectType int       `json:"accessObjectType"`
	AccessObjectID   uuid.UUID `json:"accessObjectId"`
	PermissionRole   int       `json:"permissionRole"`
}

func (dto userPermissionRoleDTO) toModel() (*UserPermissionRole, error) {
	role, err := PermissionRoleFromCode(dto.Role.ID)
	if err != nil {
		return nil, err
	}
	objectType, err := AccessObjectTypeFromCode(dto.AccessObjectType.ID)
	if err != nil {
		return nil, err
	}

	return &UserPermissionRole{
		ID:               dto.ID,
		UserID:           dto.UserID,
		PermissionRole:   role,
		AccessObjectType: objectType,
		AccessObjectID:   dto.AccessObjectID,
	}, nil
}

func (s Scope) values() url.Values {
	return query.New().
		String(constants.ParamUserID, s.UserID.String()).
		String(constants.ParamAccessObjectType, s.AccessObjectType.String()).
		String(constants.ParamAccessObjectID, s.AccessObjectID.String()).
		Values()
}

func (s Scope) body(role PermissionRole) roleRequestDTO {
	return roleRequestDTO{
		UserID:           s.UserID,
		AccessObjectType: s.AccessObjectType.Code(),
		AccessObjectID:   s.AccessObjectID,
		PermissionRole:   role.Code(),
	}
}

// # Operations

// GetRole implements [Repository].
func (r *HTTPRepository) GetRole(ctx context.Context, scope Scope) (*UserPermissionRole, error) {
	var dto userPermissionRoleDTO
	if err := r.client.Get(ctx, constants.PathPermissionRole, nil, scope.values(), &dto); err != nil {
		return nil, svcerr.Wrap(svcerr.APIPermissionRoles, err)
	}
	return dto.toModel()
}

// GetRights implements [Repository].
func (r *HTTPRepository) GetRights(ctx context.Context, scope Scope) (*UserPermissionRights, error) {
	var dto userPermissionRightsDTO
	if err := r.client.Get(ctx, constants.PathPermissionRights, nil, scope.values(), &dto); err != nil {
		return nil, svcerr.Wrap(svcerr.APIPermissionRights, err)
	}

	role, err := PermissionRoleFromCode(dto.PermissionRole.ID)
	if err != nil {
		return nil, err
	}

	rights := dto.PermissionRights
	if rights == nil {
		rights = []PermissionRight{}
	}
	return &UserPermissionRights{PermissionRole: role, PermissionRights: rights}, nil
}

// CreateRole implements [Repository].
func (r *HTTPRepository) CreateRole(ctx context.Context, scope Scope, role PermissionRole) (*UserPermissionRole, error) {
	var dto userPermissionRoleDTO
	if err := r.client.Post(ctx, constants.PathPermissionRole, scope.body(role), &dto); err != nil {
		return nil, svcerr.Wrap(svcerr.APIPermissionRoles, err)
	}
	return dto.toModel()
}

// EditRole implements [Repository].
func (r *HTTPRepository) EditRole(ctx context.Context, scope Scope, role PermissionRole) (*UserPermissionRole, error) {
	var dto userPermissionRoleDTO
	if err := r.client.Put(ctx, constants.PathPermissionRole, scope.body(role), &dto); err != nil {
		return nil, svcerr.Wrap(svcerr.APIPermissionRoles, err)
	}
	return dto.toModel()
}

// DeleteRole implements [Repository].
func (r *HTTPRepository) DeleteRole(ctx context.Context, scope Scope) error {
	if err := r.client.Delete(ctx, constants.PathPermissionRole, scope.values()); err != nil {
		return svcerr.Wrap(svcerr.APIPermissionRoles, err)
	}
	return nil
}
