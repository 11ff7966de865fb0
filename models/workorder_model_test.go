package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inventory-app/types"
)

func TestWorkOrderLogDisplay(t *testing.T) {
	l := WorkOrderLog{
		Line:      "Transfer of 4 units of Drive Belt to North Depot",
		CreatedAt: time.Date(2026, 3, 14, 9, 30, 45, 0, time.UTC),
	}
	assert.Equal(t, "[2026-03-14 09:30] Transfer of 4 units of Drive Belt to North Depot", l.Display())
}

func TestPartLowStock(t *testing.T) {
	assert.True(t, (&Part{Quantity: 2, MinQuantity: 5}).LowStock())
	assert.True(t, (&Part{Quantity: 5, MinQuantity: 5}).LowStock())
	assert.False(t, (&Part{Quantity: 6, MinQuantity: 5}).LowStock())
	// No threshold set means never low.
	assert.False(t, (&Part{Quantity: 0, MinQuantity: 0}).LowStock())
}

func TestRoleCapabilities(t *testing.T) {
	assert.True(t, IsManagerRole(RoleSiteAdmin))
	assert.True(t, IsManagerRole(RoleInventoryManager))
	assert.False(t, IsManagerRole(RoleInstaller))

	assert.True(t, CanWriteInventory(RoleWarehouseManager))
	assert.False(t, CanWriteInventory(RoleInventoryManager))
	assert.False(t, CanWriteInventory(RoleInstaller))
}

func TestUserWarehouseAccess(t *testing.T) {
	admin := User{Role: RoleSiteAdmin}
	assert.True(t, admin.CanAccessWarehouse(12345))

	manager := User{Role: RoleWarehouseManager, WarehouseIDs: types.IDList{7, 9}}
	assert.True(t, manager.CanAccessWarehouse(9))
	assert.False(t, manager.CanAccessWarehouse(12345))
}
