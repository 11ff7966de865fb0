package controllers

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/repositories"
	"inventory-app/services"
)

type BulkController struct {
	DB      *gorm.DB
	service *services.ImportService
}

func NewBulkController(DB *gorm.DB) *BulkController {
	return &BulkController{DB: DB, service: services.NewImportService(DB)}
}

// DownloadTemplate serves the one-line CSV template for a warehouse and
// category. The filename embeds the warehouse name.
func (c *BulkController) DownloadTemplate(ctx *fiber.Ctx) error {
	warehouseID, err := parseQueryID(ctx, "warehouse_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid warehouse_id"})
	}

	category := ctx.Query("category", services.CategoryParts)

	repo := repositories.NewWarehouseRepository(c.DB)
	warehouse, err := repo.GetByID(warehouseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Warehouse not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	filename := services.TemplateFileName(warehouse.Name, category)
	ctx.Set("Content-Type", "text/csv")
	ctx.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.SendString(services.TemplateCSV(category))
}

// Import creates records from an uploaded CSV. The payload can arrive as a
// multipart file or as a raw csv field in the JSON body.
func (c *BulkController) Import(ctx *fiber.Ctx) error {
	var input struct {
		WarehouseID string `json:"warehouse_id"`
		Category    string `json:"category"`
		CSV         string `json:"csv"`
	}

	if file, err := ctx.FormFile("file"); err == nil {
		src, err := file.Open()
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		defer src.Close()
		data, err := io.ReadAll(src)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		input.CSV = string(data)
		input.WarehouseID = ctx.FormValue("warehouse_id")
		input.Category = ctx.FormValue("category")
	} else if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	warehouseID, err := parseID(input.WarehouseID)
	if err != nil || warehouseID == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid warehouse_id"})
	}
	if input.Category == "" {
		input.Category = services.CategoryParts
	}

	created, err := c.service.ImportCSV(warehouseID, input.Category, input.CSV)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Warehouse not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("%d records imported", created),
		"data":    fiber.Map{"created": created},
	})
}
