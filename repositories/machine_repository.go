package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"inventory-app/controllers/idgen"
	"inventory-app/models"
	"inventory-app/types"
)

type MachineRepository struct {
	DB *gorm.DB
}

func NewMachineRepository(DB *gorm.DB) *MachineRepository {
	return &MachineRepository{DB: DB}
}

func (r *MachineRepository) Create(m *models.Machine) error {
	if m.ID == 0 {
		m.ID = types.SnowflakeID(idgen.GenerateID())
	}
	m.CreatedAt = time.Now()
	if m.IntakeDate.IsZero() {
		m.IntakeDate = m.CreatedAt
	}
	return r.DB.Create(m).Error
}

func (r *MachineRepository) GetByID(id types.SnowflakeID) (*models.Machine, error) {
	var m models.Machine
	err := r.DB.First(&m, "id = ?", id).Error
	return &m, err
}

func (r *MachineRepository) GetAll() ([]models.Machine, error) {
	var machines []models.Machine
	err := r.DB.Order("created_at DESC, id DESC").Find(&machines).Error
	return machines, err
}

func (r *MachineRepository) GetByWarehouse(warehouseID types.SnowflakeID) ([]models.Machine, error) {
	var machines []models.Machine
	err := r.DB.Where("warehouse_id = ?", warehouseID).
		Order("created_at DESC, id DESC").Find(&machines).Error
	return machines, err
}

// Search matches model name or serial, most-recent-first.
func (r *MachineRepository) Search(q string) ([]models.Machine, error) {
	var machines []models.Machine
	like := "%" + q + "%"
	err := r.DB.Where("name LIKE ? OR serial LIKE ?", like, like).
		Order("created_at DESC, id DESC").Find(&machines).Error
	return machines, err
}

func (r *MachineRepository) Update(m *models.Machine) error {
	var existing models.Machine
	if err := r.DB.First(&existing, "id = ?", m.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	m.CreatedAt = existing.CreatedAt
	return r.DB.Save(m).Error
}

func (r *MachineRepository) Delete(id types.SnowflakeID) error {
	return r.DB.Delete(&models.Machine{}, "id = ?", id).Error
}
