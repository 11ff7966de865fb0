package models

import (
	"time"

	"inventory-app/types"
)

const (
	MovementTransfer = "Transfer"
	MovementDispatch = "Dispatch"

	ItemTypePart    = "part"
	ItemTypeMachine = "machine"
)

// StockMovement is one row of the movement ledger. Every authorized
// transfer writes one row per moved item.
type StockMovement struct {
	ID          types.SnowflakeID `json:"id" gorm:"primaryKey"`
	Kind        string            `json:"kind" gorm:"default:Transfer"`
	ItemType    string            `json:"item_type"`
	ItemID      types.SnowflakeID `json:"item_id" gorm:"index"`
	ItemName    string            `json:"item_name"`
	Quantity    int               `json:"quantity"`
	SourceID    types.SnowflakeID `json:"source_id" gorm:"index"`
	DestID      types.SnowflakeID `json:"dest_id" gorm:"index"`
	WorkOrderID types.SnowflakeID `json:"work_order_id" gorm:"default:0"`
	MovedBy     string            `json:"moved_by"`
	Notes       string            `json:"notes"`
	CreatedAt   time.Time         `json:"created_at"`
}
