// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package permission implements the role and rights lookups of the dictionary
client.

A user holds one [PermissionRole] per access object (a company, a company
service, a project). The role grants a set of [PermissionRight] values of
the form "action@AccessObjectType".
*/
package permission

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/taibuivan/dictionary/pkg/apperr"
)

// # Roles

// PermissionRole is a user's role on an access object.
type PermissionRole int

const (
	Owner    PermissionRole = 1
	Admin    PermissionRole = 2
	Employee PermissionRole = 3
)

var roleNames = map[PermissionRole]string{
	Owner:    "Owner",
	Admin:    "Admin",
	Employee: "Employee",
}

// String returns the role name.
func (r PermissionRole) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "PermissionRole(" + strconv.Itoa(int(r)) + ")"
}

// Code returns the numeric wire code.
func (r PermissionRole) Code() int { return int(r) }

// Valid reports whether r is a known role.
func (r PermissionRole) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// PermissionRoleFromCode resolves a code received from the service.
func PermissionRoleFromCode(code int) (PermissionRole, error) {
	r := PermissionRole(code)
	if !r.Valid() {
		return 0, apperr.UnexpectedServiceError("Unknown permission role code: "+strconv.Itoa(code), 0, nil)
	}
	return r, nil
}

// ParsePermissionRole resolves a role name. Matching is exact.
func ParsePermissionRole(name string) (PermissionRole, error) {
	for r, n := range roleNames {
		if n == name {
			return r, nil
		}
	}
	return 0, apperr.MalformedIdentifier("Unknown permission role: " + name)
}

// # Access Objects

// AccessObjectType is the kind of object a role applies to.
type AccessObjectType int

const (
	Company        AccessObjectType = 1
	CompanyService AccessObjectType = 2
	Project        AccessObjectType = 3
)

var accessObjectNames = map[AccessObjectType]string{
	Company:        "Company",
	CompanyService: "CompanyService",
	Project:        "Project",
}

// String returns the type name.
func (t AccessObjectType) String() string {
	if name, ok := accessObjectNames[t]; ok {
		return name
	}
	return "AccessObjectType(" + strconv.Itoa(int(t)) + ")"
}

// Code returns the numeric wire code.
func (t AccessObjectType) Code() int { return int(t) }

// Valid reports whether t is a known access object type.
func (t AccessObjectType) Valid() bool {
	_, ok := accessObjectNames[t]
	return ok
}

// AccessObjectTypeFromCode resolves a code received from the service.
func AccessObjectTypeFromCode(code int) (AccessObjectType, error) {
	t := AccessObjectType(code)
	if !t.Valid() {
		return 0, apperr.UnexpectedServiceError("Unknown access object type code: "+strconv.Itoa(code), 0, nil)
	}
	return t, nil
}

// ParseAccessObjectType resolves a type name. Matching is exact.
func ParseAccessObjectType(name string) (AccessObjectType, error) {
	for t, n := range accessObjectNames {
		if n == name {
			return t, nil
		}
	}
	return 0, apperr.MalformedIdentifier("Unknown access object type: " + name)
}

// # Rights

const rightSeparator = "@"

// PermissionRight is one action allowed on a kind of access object.
type PermissionRight struct {
	AccessObjectType string
	Action           string
}

// NewPermissionRight builds a right for a known access object type.
func NewPermissionRight(action string, accessObjectType AccessObjectType) PermissionRight {
	return PermissionRight{AccessObjectType: accessObjectType.String(), Action: action}
}

// String formats the right as "action@AccessObjectType".
func (r PermissionRight) String() string {
	return r.Action + rightSeparator + r.AccessObjectType
}

// ParsePermissionRight parses the form produced by [PermissionRight.String].
func ParsePermissionRight(s string) (PermissionRight, error) {
	parts := strings.Split(s, rightSeparator)
	if len(parts) != 2 {
		return PermissionRight{}, apperr.MalformedPermissionRight(s)
	}
	return PermissionRight{AccessObjectType: parts[1], Action: parts[0]}, nil
}

// MarshalJSON encodes the right as its string form.
func (r PermissionRight) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes the string form.
func (r *PermissionRight) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParsePermissionRight(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// # Assignments

// UserPermissionRole is the role a user holds on one access object.
type UserPermissionRole struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	PermissionRole   PermissionRole
	AccessObjectType AccessObjectType
	AccessObjectID   uuid.UUID
}

// UserPermissionRights is a role together with the rights it grants.
type UserPermissionRights struct {
	PermissionRole   PermissionRole
	PermissionRights []PermissionRight
}

// Has reports whether right is granted.
func (r UserPermissionRights) Has(right PermissionRight) bool {
	for _, granted := range r.PermissionRights {
		if granted == right {
			return true
		}
	}
	return false
}

// Scope addresses a user's role on one access object.
type Scope struct {
	UserID           uuid.UUID
	AccessObjectType AccessObjectType
	AccessObjectID   uuid.UUID
}
