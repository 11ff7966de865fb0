package mobiles

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/middleware"
	"inventory-app/services"
)

// MobileIntakeController drives the guided intake flow for the staff
// portal. Each request advances a server-side wizard session.
type MobileIntakeController struct {
	DB      *gorm.DB
	service *services.IntakeService
}

func NewMobileIntakeController(DB *gorm.DB, service *services.IntakeService) *MobileIntakeController {
	return &MobileIntakeController{DB: DB, service: service}
}

func intakeError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrReadOnlyRole):
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrWarehouseDenied):
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrSessionNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrBadTransition):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

func (c *MobileIntakeController) Start(ctx *fiber.Ctx) error {
	sess, err := c.service.Start(middleware.CurrentUser(ctx))
	if err != nil {
		return intakeError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": sess})
}

func (c *MobileIntakeController) GetSession(ctx *fiber.Ctx) error {
	sess, err := c.service.Get(ctx.Params("session_id"))
	if err != nil {
		return intakeError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "data": sess})
}

func (c *MobileIntakeController) ChooseWarehouse(ctx *fiber.Ctx) error {
	var input struct {
		WarehouseID string `json:"warehouse_id"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	warehouseID, err := parseID(input.WarehouseID)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid warehouse_id"})
	}

	sess, err := c.service.ChooseWarehouse(ctx.Params("session_id"), middleware.CurrentUser(ctx), warehouseID)
	if err != nil {
		return intakeError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "data": sess})
}

func (c *MobileIntakeController) ChooseAssetType(ctx *fiber.Ctx) error {
	var input struct {
		AssetType string `json:"asset_type"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	sess, err := c.service.ChooseAssetType(ctx.Params("session_id"), input.AssetType)
	if err != nil {
		return intakeError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "data": sess})
}

func (c *MobileIntakeController) ChooseSubtype(ctx *fiber.Ctx) error {
	var input struct {
		Subtype string `json:"subtype"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	sess, err := c.service.ChooseSubtype(ctx.Params("session_id"), input.Subtype)
	if err != nil {
		return intakeError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "data": sess})
}

func (c *MobileIntakeController) Back(ctx *fiber.Ctx) error {
	sess, err := c.service.Back(ctx.Params("session_id"))
	if err != nil {
		return intakeError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "data": sess})
}

func (c *MobileIntakeController) Reset(ctx *fiber.Ctx) error {
	sess, err := c.service.Reset(ctx.Params("session_id"))
	if err != nil {
		return intakeError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "data": sess})
}

func (c *MobileIntakeController) SubmitPart(ctx *fiber.Ctx) error {
	var form services.PartIntakeForm
	if err := ctx.BodyParser(&form); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	part, err := c.service.SubmitPart(ctx.Params("session_id"), middleware.CurrentUser(ctx), form)
	if err != nil {
		return intakeError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Part intake recorded",
		"data":    part,
	})
}

func (c *MobileIntakeController) SubmitMachine(ctx *fiber.Ctx) error {
	var form services.MachineIntakeForm
	if err := ctx.BodyParser(&form); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	machine, err := c.service.SubmitMachine(ctx.Params("session_id"), middleware.CurrentUser(ctx), form)
	if err != nil {
		return intakeError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Machine intake recorded",
		"data":    machine,
	})
}
