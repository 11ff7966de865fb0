package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/utils"
)

type PartController struct {
	DB *gorm.DB
}

func NewPartController(DB *gorm.DB) *PartController {
	return &PartController{DB: DB}
}

// partInput mirrors the admin form: quantities are free text and coerce
// to 0 when non-numeric.
type partInput struct {
	Name        string `json:"name"`
	PartCode    string `json:"part_code"`
	Quantity    string `json:"quantity"`
	MinQuantity string `json:"min_quantity"`
	Notes       string `json:"notes"`

	BarcodesScanned bool   `json:"barcodes_scanned"`
	CountVerified   bool   `json:"count_verified"`
	DamageLogged    bool   `json:"damage_logged"`
	LocationCorrect string `json:"location_correct"`
	CountUpdated    bool   `json:"count_updated"`
}

func (c *PartController) GetParts(ctx *fiber.Ctx) error {
	repo := repositories.NewPartRepository(c.DB)

	if q := ctx.Query("q"); q != "" {
		parts, err := repo.Search(q)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.JSON(fiber.Map{"success": true, "data": parts})
	}

	if raw := ctx.Query("warehouse_id"); raw != "" {
		id, err := parseQueryID(ctx, "warehouse_id")
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid warehouse_id"})
		}
		parts, err := repo.GetByWarehouse(id)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.JSON(fiber.Map{"success": true, "data": parts})
	}

	parts, err := repo.GetAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": parts})
}

func (c *PartController) GetPartByID(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewPartRepository(c.DB)
	part, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Part not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": part})
}

func (c *PartController) UpdatePart(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewPartRepository(c.DB)
	part, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Editing an unknown id is a silent no-op, like the store layer.
			return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input partInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	part.Name = input.Name
	part.PartCode = input.PartCode
	part.Quantity = utils.ParseQuantity(input.Quantity)
	part.MinQuantity = utils.ParseQuantity(input.MinQuantity)
	part.Notes = input.Notes
	part.Checklist = models.PartChecklist{
		BarcodesScanned: input.BarcodesScanned,
		CountVerified:   input.CountVerified,
		DamageLogged:    input.DamageLogged,
		LocationCorrect: input.LocationCorrect,
		CountUpdated:    input.CountUpdated,
	}

	if err := repo.Update(part); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Part updated successfully",
		"data":    part,
	})
}

func (c *PartController) DeletePart(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewPartRepository(c.DB)
	if err := repo.Delete(id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Part deleted successfully",
	})
}
