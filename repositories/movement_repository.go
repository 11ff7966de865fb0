package repositories

import (
	"time"

	"gorm.io/gorm"

	"inventory-app/controllers/idgen"
	"inventory-app/models"
	"inventory-app/types"
)

type MovementRepository struct {
	DB *gorm.DB
}

func NewMovementRepository(DB *gorm.DB) *MovementRepository {
	return &MovementRepository{DB: DB}
}

func (r *MovementRepository) Create(m *models.StockMovement) error {
	if m.ID == 0 {
		m.ID = types.SnowflakeID(idgen.GenerateID())
	}
	m.CreatedAt = time.Now()
	return r.DB.Create(m).Error
}

func (r *MovementRepository) GetAll() ([]models.StockMovement, error) {
	var movements []models.StockMovement
	err := r.DB.Order("created_at DESC, id DESC").Find(&movements).Error
	return movements, err
}

func (r *MovementRepository) GetByWarehouse(warehouseID types.SnowflakeID) ([]models.StockMovement, error) {
	var movements []models.StockMovement
	err := r.DB.Where("source_id = ? OR dest_id = ?", warehouseID, warehouseID).
		Order("created_at DESC, id DESC").Find(&movements).Error
	return movements, err
}
