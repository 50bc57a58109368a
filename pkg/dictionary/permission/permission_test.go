// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package permission_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/dictionary/pkg/apperr"
	"github.com/taibuivan/dictionary/pkg/dictionary/permission"
)

/*
TestPermissionRight_Parse covers the "action@Type" form.
*/
func TestPermissionRight_Parse(t *testing.T) {
	right := permission.NewPermissionRight("EditCompanyProfile", permission.Company)
	assert.Equal(t, "EditCompanyProfile@Company", right.String())

	parsed, err := permission.ParsePermissionRight(right.String())
	require.NoError(t, err)
	assert.Equal(t, right, parsed)

	for _, bad := range []string{"no-at-sign", "a@b@c", ""} {
		_, err := permission.ParsePermissionRight(bad)
		require.ErrorIs(t, err, apperr.ErrMalformedPermissionRight, bad)
		assert.Equal(t, "Failed to parse permission right: "+bad, apperr.As(err).Message)
	}
}

/*
TestPermissionRight_JSON verifies the string wire form.
*/
func TestPermissionRight_JSON(t *testing.T) {
	var rights []permission.PermissionRight
	require.NoError(t, json.Unmarshal([]byte(`["Read@Project","Write@Project"]`), &rights))
	require.Len(t, rights, 2)
	assert.Equal(t, "Write", rights[1].Action)
	assert.Equal(t, "Project", rights[1].AccessObjectType)

	raw, err := json.Marshal(rights[0])
	require.NoError(t, err)
	assert.Equal(t, `"Read@Project"`, string(raw))

	assert.Error(t, json.Unmarshal([]byte(`["broken"]`), &rights))
}

/*
TestEnums_FromCode verifies that unknown service codes are unexpected errors.
*/
func TestEnums_FromCode(t *testing.T) {
	role, err := permission.PermissionRoleFromCode(2)
	require.NoError(t, err)
	assert.Equal(t, permission.Admin, role)
	assert.Equal(t, "Admin", role.String())

	_, err = permission.PermissionRoleFromCode(9)
	assert.ErrorIs(t, err, apperr.ErrUnexpectedServiceError)

	objectType, err := permission.AccessObjectTypeFromCode(3)
	require.NoError(t, err)
	assert.Equal(t, permission.Project, objectType)

	_, err = permission.AccessObjectTypeFromCode(0)
	assert.ErrorIs(t, err, apperr.ErrUnexpectedServiceError)

	parsed, err := permission.ParseAccessObjectType("CompanyService")
	require.NoError(t, err)
	assert.Equal(t, permission.CompanyService, parsed)

	_, err = permission.ParseAccessObjectType("company")
	assert.ErrorIs(t, err, apperr.ErrMalformedIdentifier)

	named, err := permission.ParsePermissionRole("Employee")
	require.NoError(t, err)
	assert.Equal(t, permission.Employee, named)

	_, err = permission.ParsePermissionRole("Guest")
	assert.ErrorIs(t, err, apperr.ErrMalformedIdentifier)
}

/*
TestUserPermissionRights_Has checks membership by value.
*/
func TestUserPermissionRights_Has(t *testing.T) {
	rights := permission.UserPermissionRights{
		PermissionRole:   permission.Owner,
		PermissionRights: []permission.PermissionRight{permission.NewPermissionRight("Read", permission.Company)},
	}

	assert.True(t, rights.Has(permission.PermissionRight{AccessObjectType: "Company", Action: "Read"}))
	assert.False(t, rights.Has(permission.NewPermissionRight("Read", permission.Project)))
}
