package models

import (
	"time"

	"gorm.io/gorm"

	"inventory-app/types"
)

// PartChecklist is the compliance snapshot captured at intake time.
type PartChecklist struct {
	BarcodesScanned bool   `json:"barcodes_scanned"`
	CountVerified   bool   `json:"count_verified"`
	DamageLogged    bool   `json:"damage_logged"`
	LocationCorrect string `json:"location_correct"`
	CountUpdated    bool   `json:"count_updated"`
}

type Part struct {
	ID          types.SnowflakeID `json:"id" gorm:"primaryKey"`
	WarehouseID types.SnowflakeID `json:"warehouse_id" gorm:"index"`
	Name        string            `json:"name"`
	PartCode    string            `json:"part_code"`
	Quantity    int               `json:"quantity" gorm:"default:0"`
	MinQuantity int               `json:"min_quantity" gorm:"default:0"`
	Notes       string            `json:"notes"`
	Checklist   PartChecklist     `json:"checklist" gorm:"embedded;embeddedPrefix:chk_"`
	IntakeBy    string            `json:"intake_by"`
	IntakeDate  time.Time         `json:"intake_date"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`

	// Recomputed on every read, never stored.
	PreVerified bool `json:"pre_verified" gorm:"-"`
}

func (p *Part) AfterFind(tx *gorm.DB) error {
	p.PreVerified = p.IntakeBy == SystemOperator
	return nil
}

// LowStock reports whether the on-hand quantity fell to the threshold.
func (p *Part) LowStock() bool {
	return p.MinQuantity > 0 && p.Quantity <= p.MinQuantity
}
