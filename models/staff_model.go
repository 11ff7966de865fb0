package models

import (
	"time"

	"inventory-app/types"
)

// StaffMember is a portal account. Email is the login key. The password is
// stored as entered; credential hardening is out of scope for this system.
type StaffMember struct {
	ID           types.SnowflakeID `json:"id" gorm:"primaryKey"`
	Name         string            `json:"name" gorm:"not null" validate:"required"`
	Email        string            `json:"email" gorm:"not null" validate:"required,email"`
	Contact      string            `json:"contact"`
	Password     string            `json:"password,omitempty"`
	Role         string            `json:"role" gorm:"default:Installer"`
	WarehouseIDs types.IDList      `json:"warehouse_ids" gorm:"type:text"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
