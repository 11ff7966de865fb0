package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-app/config"
	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/types"
)

func TestResolveAdminCredential(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Resolve(config.AdminEmail, config.AdminPassword)
	require.NoError(t, err)
	assert.Equal(t, models.RoleSiteAdmin, user.Role)
	assert.Equal(t, config.AdminName, user.Name)
	assert.Zero(t, user.StaffID)
	assert.True(t, user.IsAdmin())
}

func TestResolveStaffCredential(t *testing.T) {
	db := openTestDB(t)
	staff := &models.StaffMember{
		Name:         "Mike Torres",
		Email:        "mike@depot.local",
		Password:     "hunter2",
		Role:         models.RoleWarehouseManager,
		WarehouseIDs: types.IDList{1, 2},
	}
	require.NoError(t, repositories.NewStaffRepository(db).Create(staff))

	svc := NewAuthService(db)
	user, err := svc.Resolve("mike@depot.local", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, staff.ID, user.StaffID)
	assert.Equal(t, models.RoleWarehouseManager, user.Role)
	assert.Equal(t, types.IDList{1, 2}, user.WarehouseIDs)
}

func TestResolveWrongPassword(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, repositories.NewStaffRepository(db).Create(&models.StaffMember{
		Name:     "Dana Reed",
		Email:    "dana@depot.local",
		Password: "secret",
		Role:     models.RoleInstaller,
	}))

	svc := NewAuthService(db)
	_, err := svc.Resolve("dana@depot.local", "wrong")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestResolveUnknownEmail(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Resolve("nobody@depot.local", "whatever")
	assert.ErrorIs(t, err, ErrAccessDenied)
}
