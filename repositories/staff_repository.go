package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"inventory-app/controllers/idgen"
	"inventory-app/models"
	"inventory-app/types"
)

type StaffRepository struct {
	DB *gorm.DB
}

func NewStaffRepository(DB *gorm.DB) *StaffRepository {
	return &StaffRepository{DB: DB}
}

func (r *StaffRepository) Create(s *models.StaffMember) error {
	if s.ID == 0 {
		s.ID = types.SnowflakeID(idgen.GenerateID())
	}
	s.CreatedAt = time.Now()
	return r.DB.Create(s).Error
}

func (r *StaffRepository) GetByID(id types.SnowflakeID) (*models.StaffMember, error) {
	var s models.StaffMember
	err := r.DB.First(&s, "id = ?", id).Error
	return &s, err
}

func (r *StaffRepository) GetAll() ([]models.StaffMember, error) {
	var staff []models.StaffMember
	err := r.DB.Order("created_at DESC, id DESC").Find(&staff).Error
	return staff, err
}

// FindByCredentials does the exact email/password match the login uses.
func (r *StaffRepository) FindByCredentials(email, password string) (*models.StaffMember, error) {
	var s models.StaffMember
	err := r.DB.Where("email = ? AND password = ?", email, password).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Update replaces the stored record. A blank password keeps the old one.
// An unknown id is a silent no-op.
func (r *StaffRepository) Update(s *models.StaffMember) error {
	var existing models.StaffMember
	if err := r.DB.First(&existing, "id = ?", s.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if s.Password == "" {
		s.Password = existing.Password
	}
	s.CreatedAt = existing.CreatedAt
	return r.DB.Save(s).Error
}

func (r *StaffRepository) Delete(id types.SnowflakeID) error {
	return r.DB.Delete(&models.StaffMember{}, "id = ?", id).Error
}
