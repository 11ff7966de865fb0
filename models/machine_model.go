package models

import (
	"time"

	"gorm.io/gorm"

	"inventory-app/types"
)

const (
	MachineClassSkill   = "Skill"
	MachineClassATM     = "ATM"
	MachineClassJukebox = "Jukebox"

	ConditionNew     = "New"
	ConditionUsed    = "Used"
	ConditionDamaged = "Damaged"

	IntakeTypeIntake = "Intake"
	IntakeTypeReturn = "Return"
)

// MachineChecklist covers both intake variants. Which fields are meaningful
// depends on IntakeType: fresh intakes use the inspection/boot fields,
// returns use serial match and stock adjustment.
type MachineChecklist struct {
	Inspected       bool `json:"inspected"`
	SerialReadable  bool `json:"serial_readable"`
	BootsToMenu     bool `json:"boots_to_menu"`
	PhotosTaken     bool `json:"photos_taken"`
	StoredCorrectly bool `json:"stored_correctly"`
	SerialMatch     bool `json:"serial_match"`
	StockAdjusted   bool `json:"stock_adjusted"`
}

type Machine struct {
	ID           types.SnowflakeID `json:"id" gorm:"primaryKey"`
	WarehouseID  types.SnowflakeID `json:"warehouse_id" gorm:"index"`
	Name         string            `json:"name"`
	Serial       string            `json:"serial"`
	Class        string            `json:"class" gorm:"default:Skill"`
	Condition    string            `json:"condition" gorm:"default:New"`
	IntakeType   string            `json:"intake_type" gorm:"default:Intake"`
	Notes        string            `json:"notes"`
	Checklist    MachineChecklist  `json:"checklist" gorm:"embedded;embeddedPrefix:chk_"`
	ReturnStatus string            `json:"return_status"`
	IntakeBy     string            `json:"intake_by"`
	IntakeDate   time.Time         `json:"intake_date"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	PreVerified bool `json:"pre_verified" gorm:"-"`
}

func (m *Machine) AfterFind(tx *gorm.DB) error {
	m.PreVerified = m.IntakeBy == SystemOperator
	return nil
}
