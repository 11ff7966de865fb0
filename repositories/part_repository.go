package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"inventory-app/controllers/idgen"
	"inventory-app/models"
	"inventory-app/types"
)

type PartRepository struct {
	DB *gorm.DB
}

func NewPartRepository(DB *gorm.DB) *PartRepository {
	return &PartRepository{DB: DB}
}

func (r *PartRepository) Create(p *models.Part) error {
	if p.ID == 0 {
		p.ID = types.SnowflakeID(idgen.GenerateID())
	}
	p.CreatedAt = time.Now()
	if p.IntakeDate.IsZero() {
		p.IntakeDate = p.CreatedAt
	}
	return r.DB.Create(p).Error
}

func (r *PartRepository) GetByID(id types.SnowflakeID) (*models.Part, error) {
	var p models.Part
	err := r.DB.First(&p, "id = ?", id).Error
	return &p, err
}

func (r *PartRepository) GetAll() ([]models.Part, error) {
	var parts []models.Part
	err := r.DB.Order("created_at DESC, id DESC").Find(&parts).Error
	return parts, err
}

func (r *PartRepository) GetByWarehouse(warehouseID types.SnowflakeID) ([]models.Part, error) {
	var parts []models.Part
	err := r.DB.Where("warehouse_id = ?", warehouseID).
		Order("created_at DESC, id DESC").Find(&parts).Error
	return parts, err
}

// Search matches name or part code, most-recent-first.
func (r *PartRepository) Search(q string) ([]models.Part, error) {
	var parts []models.Part
	like := "%" + q + "%"
	err := r.DB.Where("name LIKE ? OR part_code LIKE ?", like, like).
		Order("created_at DESC, id DESC").Find(&parts).Error
	return parts, err
}

// FindMatch locates the destination counterpart of a transferred part.
func (r *PartRepository) FindMatch(warehouseID types.SnowflakeID, partCode, name string) (*models.Part, error) {
	var p models.Part
	err := r.DB.Where("warehouse_id = ? AND part_code = ? AND name = ?", warehouseID, partCode, name).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PartRepository) Update(p *models.Part) error {
	var existing models.Part
	if err := r.DB.First(&existing, "id = ?", p.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	p.CreatedAt = existing.CreatedAt
	return r.DB.Save(p).Error
}

func (r *PartRepository) Delete(id types.SnowflakeID) error {
	return r.DB.Delete(&models.Part{}, "id = ?", id).Error
}
