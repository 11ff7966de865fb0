package database

import (
	"inventory-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Warehouse{},
		&models.StaffMember{},
		&models.Part{},
		&models.Machine{},
		&models.WorkOrder{},
		&models.WorkOrderLog{},
		&models.StockMovement{},
	)
}
