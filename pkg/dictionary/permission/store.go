// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package permission

import "context"

// Repository is the storage port of the permission domain.
type Repository interface {
	GetRole(ctx context.Context, scope Scope) (*UserPermissionRole, error)
	GetRights(ctx context.Context, scope Scope) (*UserPermissionRights, error)
	CreateRole(ctx context.Context, scope Scope, role PermissionRole) (*UserPermissionRole, error)
	EditRole(ctx context.Context, scope Scope, role PermissionRole) (*UserPermissionRole, error)
	DeleteRole(ctx context.Context, scope Scope) error
}
