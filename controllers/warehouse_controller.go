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

type WarehouseController struct {
	DB *gorm.DB
}

func NewWarehouseController(DB *gorm.DB) *WarehouseController {
	return &WarehouseController{DB: DB}
}

func (c *WarehouseController) GetAllWarehouses(ctx *fiber.Ctx) error {
	repo := repositories.NewWarehouseRepository(c.DB)
	warehouses, err := repo.GetAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    warehouses,
	})
}

func (c *WarehouseController) GetWarehouseByID(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewWarehouseRepository(c.DB)
	warehouse, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Warehouse not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": warehouse})
}

func (c *WarehouseController) CreateWarehouse(ctx *fiber.Ctx) error {
	var input struct {
		Name     string `json:"name" validate:"required"`
		Location string `json:"location"`
		Status   string `json:"status"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Status == "" {
		input.Status = models.WarehouseActive
	}

	warehouse := models.Warehouse{
		Name:     input.Name,
		Location: input.Location,
		Status:   input.Status,
	}

	repo := repositories.NewWarehouseRepository(c.DB)
	if err := repo.Create(&warehouse); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Warehouse created successfully",
		"data":    warehouse,
	})
}

func (c *WarehouseController) UpdateWarehouse(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var warehouse models.Warehouse
	if err := ctx.BodyParser(&warehouse); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	warehouse.ID = id

	repo := repositories.NewWarehouseRepository(c.DB)
	if err := repo.Update(&warehouse); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Warehouse updated successfully",
	})
}

func (c *WarehouseController) DeleteWarehouse(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewWarehouseRepository(c.DB)
	if err := repo.Delete(id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Warehouse deleted successfully",
	})
}

// parseID converts a decimal id string; empty input yields the zero id.
func parseID(raw string) (types.SnowflakeID, error) {
	var id types.SnowflakeID
	if err := id.UnmarshalJSON([]byte(`"` + raw + `"`)); err != nil {
		return 0, err
	}
	return id, nil
}

// parseIDParam reads the :id route parameter as a snowflake id.
func parseIDParam(ctx *fiber.Ctx) (types.SnowflakeID, error) {
	return parseID(ctx.Params("id"))
}

// parseQueryID reads a query parameter as a snowflake id.
func parseQueryID(ctx *fiber.Ctx, key string) (types.SnowflakeID, error) {
	return parseID(ctx.Query(key))
}
