package models

import "inventory-app/types"

// User is the transient session projection produced at login. It is carried
// in the access token and rebuilt per request, never persisted.
type User struct {
	StaffID      types.SnowflakeID `json:"staff_id"`
	Email        string            `json:"email"`
	Name         string            `json:"name"`
	Role         string            `json:"role"`
	WarehouseIDs types.IDList      `json:"warehouse_ids"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleSiteAdmin
}

// CanAccessWarehouse gates the mobile views to assigned warehouses.
// The administrator has no warehouse restriction.
func (u User) CanAccessWarehouse(id types.SnowflakeID) bool {
	return u.IsAdmin() || u.WarehouseIDs.Contains(id)
}
