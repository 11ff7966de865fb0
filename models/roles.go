package models

// Role names as they appear on staff records and session tokens.
const (
	RoleSiteAdmin        = "Site Administrator"
	RoleWarehouseManager = "Warehouse Manager"
	RoleInventoryManager = "Inventory Manager"
	RoleInstaller        = "Installer"
)

// SystemOperator is the intake_by sentinel written by bulk imports.
// Records carrying it are treated as pre-verified and skip checklist display.
const SystemOperator = "System Administrator"

// IsManagerRole reports whether the role may create and assign work orders.
func IsManagerRole(role string) bool {
	return role == RoleSiteAdmin || role == RoleWarehouseManager || role == RoleInventoryManager
}

// CanWriteInventory reports whether the role may submit intake and
// authorize outward transfers.
func CanWriteInventory(role string) bool {
	return role == RoleSiteAdmin || role == RoleWarehouseManager
}
