// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package permission

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taibuivan/dictionary/internal/platform/ctxutil"
	"github.com/taibuivan/dictionary/pkg/apperr"
)

// Service is the caller-facing facade of the permission domain.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new [Service]. A nil logger uses slog.Default().
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// # Reads

// GetPermissionRole returns the user's role on the object, or ok=false when
// the user has none.
func (service *Service) GetPermissionRole(ctx context.Context, userID uuid.UUID, accessObjectType AccessObjectType, accessObjectID uuid.UUID) (*UserPermissionRole, bool, error) {
	role, err := service.repo.GetRole(ctx, Scope{UserID: userID, AccessObjectType: accessObjectType, AccessObjectID: accessObjectID})
	if apperr.HasCode(err, apperr.CodeUserPermissionRoleNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return role, true, nil
}

// GetUserPermissionRights returns the rights the user holds on the object,
// or ok=false when the service reports no role or no matching rights. An
// empty grant list in a successful response is returned as present.
func (service *Service) GetUserPermissionRights(ctx context.Context, userID uuid.UUID, accessObjectType AccessObjectType, accessObjectID uuid.UUID) (*UserPermissionRights, bool, error) {
	rights, err := service.repo.GetRights(ctx, Scope{UserID: userID, AccessObjectType: accessObjectType, AccessObjectID: accessObjectID})
	if apperr.HasCode(err, apperr.CodePermissionRightNotFound, apperr.CodeUserPermissionRoleNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return rights, true, nil
}

// CheckPermission reports whether the user holds right on the object.
// Every failure, including an unknown access object type, yields false.
func (service *Service) CheckPermission(ctx context.Context, userID, accessObjectID uuid.UUID, right PermissionRight) bool {
	logger := ctxutil.GetLogger(ctx, service.logger)

	accessObjectType, err := ParseAccessObjectType(right.AccessObjectType)
	if err != nil {
		logger.DebugContext(ctx, "permission_check_denied",
			slog.String("right", right.String()),
			slog.Any("error", err),
		)
		return false
	}

	rights, ok, err := service.GetUserPermissionRights(ctx, userID, accessObjectType, accessObjectID)
	if err != nil || !ok {
		logger.DebugContext(ctx, "permission_check_denied",
			slog.String("user_id", userID.String()),
			slog.String("access_object_id", accessObjectID.String()),
			slog.String("right", right.String()),
			slog.Any("error", err),
		)
		return false
	}

	return rights.Has(right)
}

// # Writes

// CreatePermissionRole assigns role to the user on the object.
func (service *Service) CreatePermissionRole(ctx context.Context, userID uuid.UUID, accessObjectType AccessObjectType, accessObjectID uuid.UUID, role PermissionRole) (*UserPermissionRole, error) {
	created, err := service.repo.CreateRole(ctx, Scope{UserID: userID, AccessObjectType: accessObjectType, AccessObjectID: accessObjectID}, role)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx, service.logger).InfoContext(ctx, "permission_role_created",
		slog.String("id", created.ID.String()),
		slog.String("role", role.String()),
	)
	return created, nil
}

// EditPermissionRole replaces the user's role on the object.
func (service *Service) EditPermissionRole(ctx context.Context, userID uuid.UUID, accessObjectType AccessObjectType, accessObjectID uuid.UUID, role PermissionRole) (*UserPermissionRole, error) {
	edited, err := service.repo.EditRole(ctx, Scope{UserID: userID, AccessObjectType: accessObjectType, AccessObjectID: accessObjectID}, role)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx, service.logger).InfoContext(ctx, "permission_role_edited",
		slog.String("id", edited.ID.String()),
		slog.String("role", role.String()),
	)
	return edited, nil
}

// DeletePermissionRole removes the user's role on the object.
func (service *Service) DeletePermissionRole(ctx context.Context, userID uuid.UUID, accessObjectType AccessObjectType, accessObjectID uuid.UUID) error {
	return service.repo.DeleteRole(ctx, Scope{UserID: userID, AccessObjectType: accessObjectType, AccessObjectID: accessObjectID})
}
