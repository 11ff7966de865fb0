package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"inventory-app/controllers/idgen"
	"inventory-app/models"
	"inventory-app/types"
)

type WorkOrderRepository struct {
	DB *gorm.DB
}

func NewWorkOrderRepository(DB *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{DB: DB}
}

func (r *WorkOrderRepository) Create(w *models.WorkOrder) error {
	if w.ID == 0 {
		w.ID = types.SnowflakeID(idgen.GenerateID())
	}
	w.CreatedAt = time.Now()
	return r.DB.Create(w).Error
}

// GetByID loads the work order with its history, oldest line first.
func (r *WorkOrderRepository) GetByID(id types.SnowflakeID) (*models.WorkOrder, error) {
	var w models.WorkOrder
	err := r.DB.Preload("Logs", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at ASC, id ASC")
	}).First(&w, "id = ?", id).Error
	return &w, err
}

func (r *WorkOrderRepository) GetAll() ([]models.WorkOrder, error) {
	var orders []models.WorkOrder
	err := r.DB.Order("created_at DESC, id DESC").Find(&orders).Error
	return orders, err
}

func (r *WorkOrderRepository) GetByWarehouse(warehouseID types.SnowflakeID) ([]models.WorkOrder, error) {
	var orders []models.WorkOrder
	err := r.DB.Where("warehouse_id = ?", warehouseID).
		Order("created_at DESC, id DESC").Find(&orders).Error
	return orders, err
}

func (r *WorkOrderRepository) Update(w *models.WorkOrder) error {
	var existing models.WorkOrder
	if err := r.DB.First(&existing, "id = ?", w.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	w.CreatedAt = existing.CreatedAt
	return r.DB.Omit("Logs").Save(w).Error
}

func (r *WorkOrderRepository) Delete(id types.SnowflakeID) error {
	if err := r.DB.Delete(&models.WorkOrderLog{}, "work_order_id = ?", id).Error; err != nil {
		return err
	}
	return r.DB.Delete(&models.WorkOrder{}, "id = ?", id).Error
}
