package models

import (
	"time"

	"inventory-app/types"
)

const (
	WarehouseActive   = "Active"
	WarehouseInactive = "Inactive"
	WarehouseFull     = "Full"
)

type Warehouse struct {
	ID        types.SnowflakeID `json:"id" gorm:"primaryKey"`
	Name      string            `json:"name" gorm:"not null" validate:"required"`
	Location  string            `json:"location"`
	Status    string            `json:"status" gorm:"default:Active"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
