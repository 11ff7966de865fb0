package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"inventory-app/controllers/idgen"
	"inventory-app/models"
	"inventory-app/types"
)

type WarehouseRepository struct {
	DB *gorm.DB
}

func NewWarehouseRepository(DB *gorm.DB) *WarehouseRepository {
	return &WarehouseRepository{DB: DB}
}

func (r *WarehouseRepository) Create(w *models.Warehouse) error {
	if w.ID == 0 {
		w.ID = types.SnowflakeID(idgen.GenerateID())
	}
	w.CreatedAt = time.Now()
	return r.DB.Create(w).Error
}

func (r *WarehouseRepository) GetByID(id types.SnowflakeID) (*models.Warehouse, error) {
	var w models.Warehouse
	err := r.DB.First(&w, "id = ?", id).Error
	return &w, err
}

// GetAll returns warehouses most-recent-first.
func (r *WarehouseRepository) GetAll() ([]models.Warehouse, error) {
	var warehouses []models.Warehouse
	err := r.DB.Order("created_at DESC, id DESC").Find(&warehouses).Error
	return warehouses, err
}

// Update replaces the stored record. An unknown id is a silent no-op.
func (r *WarehouseRepository) Update(w *models.Warehouse) error {
	var existing models.Warehouse
	if err := r.DB.First(&existing, "id = ?", w.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	w.CreatedAt = existing.CreatedAt
	return r.DB.Save(w).Error
}

// Delete removes by id. Deleting a warehouse does not cascade; parts,
// machines and staff assignments keep their references.
func (r *WarehouseRepository) Delete(id types.SnowflakeID) error {
	return r.DB.Delete(&models.Warehouse{}, "id = ?", id).Error
}
