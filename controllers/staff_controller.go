package controllers

import (
	"errors"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/types"
)

type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(DB *gorm.DB) *StaffController {
	return &StaffController{DB: DB}
}

var staffInput struct {
	Name         string       `json:"name" validate:"required"`
	Email        string       `json:"email" validate:"required,email"`
	Contact      string       `json:"contact"`
	Password     string       `json:"password"`
	Role         string       `json:"role" validate:"required"`
	WarehouseIDs types.IDList `json:"warehouse_ids"`
}

func (c *StaffController) GetAllStaff(ctx *fiber.Ctx) error {
	repo := repositories.NewStaffRepository(c.DB)
	staff, err := repo.GetAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Never return stored passwords on listing.
	for i := range staff {
		staff[i].Password = ""
	}

	return ctx.JSON(fiber.Map{"success": true, "data": staff})
}

func (c *StaffController) GetStaffByID(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewStaffRepository(c.DB)
	staff, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Staff member not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	staff.Password = ""
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": staff})
}

func (c *StaffController) CreateStaff(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&staffInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(staffInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	staff := models.StaffMember{
		Name:         staffInput.Name,
		Email:        staffInput.Email,
		Contact:      staffInput.Contact,
		Password:     staffInput.Password,
		Role:         staffInput.Role,
		WarehouseIDs: staffInput.WarehouseIDs,
	}

	repo := repositories.NewStaffRepository(c.DB)
	if err := repo.Create(&staff); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	staff.Password = ""
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Staff member created successfully",
		"data":    staff,
	})
}

func (c *StaffController) UpdateStaff(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := ctx.BodyParser(&staffInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewStaffRepository(c.DB)

	staff := models.StaffMember{
		ID:           id,
		Name:         staffInput.Name,
		Email:        staffInput.Email,
		Contact:      staffInput.Contact,
		Password:     staffInput.Password, // blank keeps the stored one
		Role:         staffInput.Role,
		WarehouseIDs: staffInput.WarehouseIDs,
	}

	// Changing role clears warehouse assignments, the same convenience the
	// admin screen applies; re-assignment happens explicitly afterwards.
	if existing, err := repo.GetByID(id); err == nil && existing.Role != staffInput.Role {
		staff.WarehouseIDs = nil
	}

	if err := repo.Update(&staff); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Staff member updated successfully",
	})
}

func (c *StaffController) DeleteStaff(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewStaffRepository(c.DB)
	if err := repo.Delete(id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Staff member deleted successfully",
	})
}
