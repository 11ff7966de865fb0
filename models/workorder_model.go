package models

import (
	"fmt"
	"time"

	"inventory-app/types"
)

const (
	WorkOrderNew       = "New"
	WorkOrderPending   = "Pending"
	WorkOrderAccepted  = "Accepted"
	WorkOrderCompleted = "Completed"

	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

type WorkOrder struct {
	ID           types.SnowflakeID `json:"id" gorm:"primaryKey"`
	Title        string            `json:"title" gorm:"not null" validate:"required"`
	Description  string            `json:"description"`
	Status       string            `json:"status" gorm:"default:New"`
	Priority     string            `json:"priority" gorm:"default:Medium"`
	WarehouseID  types.SnowflakeID `json:"warehouse_id" gorm:"index"`
	AssignedToID types.SnowflakeID `json:"assigned_to_id" gorm:"default:0"`
	CreatedBy    string            `json:"created_by"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	Logs []WorkOrderLog `json:"logs" gorm:"foreignKey:WorkOrderID"`
}

// WorkOrderLog is one line of a work order's append-only activity history.
// Lines are only ever produced by workflow side effects, never edited.
type WorkOrderLog struct {
	ID          types.SnowflakeID `json:"id" gorm:"primaryKey"`
	WorkOrderID types.SnowflakeID `json:"work_order_id" gorm:"index"`
	Line        string            `json:"line"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Display renders the log line the way the history view shows it.
func (l WorkOrderLog) Display() string {
	return fmt.Sprintf("[%s] %s", l.CreatedAt.Format("2006-01-02 15:04"), l.Line)
}
