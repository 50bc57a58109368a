// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dictionarytest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taibuivan/dictionary/internal/platform/constants"
	requestutil "github.com/taibuivan/dictionary/internal/platform/request"
	"github.com/taibuivan/dictionary/internal/platform/respond"
	"github.com/taibuivan/dictionary/pkg/dictionary/permission"
)

// AddRole seeds a role assignment and returns it with a generated id.
func (s *Service) AddRole(scope permission.Scope, role permission.PermissionRole) permission.UserPermissionRole {
	s.mu.Lock()
	defer s.mu.Unlock()

	assigned := permission.UserPermissionRole{
		ID:               uuid.New(),
		UserID:           scope.UserID,
		PermissionRole:   role,
		AccessObjectType: scope.AccessObjectType,
		AccessObjectID:   scope.AccessObjectID,
	}
	s.roles[scope] = assigned
	return assigned
}

// SetRights defines the rights a role grants.
func (s *Service) SetRights(role permission.PermissionRole, rights ...permission.PermissionRight) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rights[role] = rights
}

func (s *Service) registerPermissionRoutes(router chi.Router) {
	router.Get("/role/", s.getRole)
	router.Post("/role/", s.createRole)
	router.Put("/role/", s.editRole)
	router.Delete("/role/", s.deleteRole)
	router.Get("/rights/", s.getRights)
}

// # Wire Types

type enumBody struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type roleBody struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	Role             enumBody  `json:"role"`
	AccessObjectType enumBody  `json:"accessObjectType"`
	AccessObjectID   uuid.UUID `json:"accessObjectId"`
}

type rightsBody struct {
	PermissionRole   enumBody `json:"permissionRole"`
	PermissionRights []string `json:"permissionRights"`
}

type roleRequestBody struct {
	UserID           uuid.UUID `json:"userId"`
	AccessObjectType int       `json:"accessObjectType"`
	AccessObjectID   uuid.UUID `json:"accessObjectId"`
	PermissionRole   int       `json:"permissionRole"`
}

func toRoleBody(r permission.UserPermissionRole) roleBody {
	return roleBody{
		ID:               r.ID,
		UserID:           r.UserID,
		Role:             enumBody{ID: r.PermissionRole.Code(), Name: r.PermissionRole.String()},
		AccessObjectType: enumBody{ID: r.AccessObjectType.Code(), Name: r.AccessObjectType.String()},
		AccessObjectID:   r.AccessObjectID,
	}
}

// # Handlers

func (s *Service) getRole(writer http.ResponseWriter, request *http.Request) {
	scope, ok := scopeFromQuery(writer, request)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	assigned, found := s.roles[scope]
	if !found {
		respond.Status(writer, http.StatusNotFound, "User permission role not found")
		return
	}
	respond.OK(writer, toRoleBody(assigned))
}

func (s *Service) getRights(writer http.ResponseWriter, request *http.Request) {
	scope, ok := scopeFromQuery(writer, request)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	assigned, found := s.roles[scope]
	if !found {
		respond.Status(writer, http.StatusNotFound, "User permission role not found")
		return
	}

	var granted []string
	for _, right := range s.rights[assigned.PermissionRole] {
		if right.AccessObjectType == scope.AccessObjectType.String() {
			granted = append(granted, right.String())
		}
	}
	if len(granted) == 0 {
		respond.Status(writer, http.StatusNotFound, "Permission right not found")
		return
	}

	respond.OK(writer, rightsBody{
		PermissionRole:   enumBody{ID: assigned.PermissionRole.Code(), Name: assigned.PermissionRole.String()},
		PermissionRights: granted,
	})
}

func (s *Service) createRole(writer http.ResponseWriter, request *http.Request) {
	scope, role, ok := roleFromBody(writer, request)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.roles[scope]; exists {
		respond.Status(writer, http.StatusConflict, "Permission role already exists")
		return
	}

	assigned := permission.UserPermissionRole{
		ID:               uuid.New(),
		UserID:           scope.UserID,
		PermissionRole:   role,
		AccessObjectType: scope.AccessObjectType,
		AccessObjectID:   scope.AccessObjectID,
	}
	s.roles[scope] = assigned
	respond.OK(writer, toRoleBody(assigned))
}

func (s *Service) editRole(writer http.ResponseWriter, request *http.Request) {
	scope, role, ok := roleFromBody(writer, request)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	assigned, found := s.roles[scope]
	if !found {
		respond.Status(writer, http.StatusNotFound, "User permission role not found")
		return
	}

	assigned.PermissionRole = role
	s.roles[scope] = assigned
	respond.OK(writer, toRoleBody(assigned))
}

func (s *Service) deleteRole(writer http.ResponseWriter, request *http.Request) {
	scope, ok := scopeFromQuery(writer, request)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.roles[scope]; !found {
		respond.Status(writer, http.StatusNotFound, "User permission role not found")
		return
	}

	delete(s.roles, scope)
	respond.NoContent(writer)
}

// # Parameter Parsing

func scopeFromQuery(writer http.ResponseWriter, request *http.Request) (permission.Scope, bool) {
	values := request.URL.Query()

	userID, err := uuid.Parse(values.Get(constants.ParamUserID))
	if err != nil {
		respond.Status(writer, http.StatusBadRequest, "Invalid userId")
		return permission.Scope{}, false
	}
	objectID, err := uuid.Parse(values.Get(constants.ParamAccessObjectID))
	if err != nil {
		respond.Status(writer, http.StatusBadRequest, "Invalid accessObjectId")
		return permission.Scope{}, false
	}
	objectType, err := permission.ParseAccessObjectType(values.Get(constants.ParamAccessObjectType))
	if err != nil {
		respond.Status(writer, http.StatusBadRequest, "Invalid accessObjectType")
		return permission.Scope{}, false
	}

	return permission.Scope{UserID: userID, AccessObjectType: objectType, AccessObjectID: objectID}, true
}

func roleFromBody(writer http.ResponseWriter, request *http.Request) (permission.Scope, permission.PermissionRole, bool) {
	var body roleRequestBody
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, err)
		return permission.Scope{}, 0, false
	}

	role := permission.PermissionRole(body.PermissionRole)
	objectType := permission.AccessObjectType(body.AccessObjectType)
	if !role.Valid() || !objectType.Valid() {
		respond.Status(writer, http.StatusBadRequest, "Invalid permission role or access object type")
		return permission.Scope{}, 0, false
	}

	scope := permission.Scope{UserID: body.UserID, AccessObjectType: objectType, AccessObjectID: body.AccessObjectID}
	return scope, role, true
}
