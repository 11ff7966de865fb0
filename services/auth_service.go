package services

import (
	"errors"

	"gorm.io/gorm"

	"inventory-app/config"
	"inventory-app/models"
	"inventory-app/repositories"
)

// AuthService resolves a login attempt to a session user. The administrator
// credential comes from config; everything else is an exact match against
// staff records. Resolution is synchronous; there is no failure delay.
type AuthService struct {
	staff *repositories.StaffRepository
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{staff: repositories.NewStaffRepository(db)}
}

func (s *AuthService) Resolve(email, password string) (models.User, error) {
	if email == config.AdminEmail && password == config.AdminPassword {
		return models.User{
			Email: email,
			Name:  config.AdminName,
			Role:  models.RoleSiteAdmin,
		}, nil
	}

	staff, err := s.staff.FindByCredentials(email, password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrAccessDenied
		}
		return models.User{}, err
	}

	return models.User{
		StaffID:      staff.ID,
		Email:        staff.Email,
		Name:         staff.Name,
		Role:         staff.Role,
		WarehouseIDs: staff.WarehouseIDs,
	}, nil
}
