package mobiles

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/middleware"
	"inventory-app/services"
	"inventory-app/types"
)

// MobileOutwardController drives the guided transfer/dispatch flow.
type MobileOutwardController struct {
	DB      *gorm.DB
	service *services.TransferService
}

func NewMobileOutwardController(DB *gorm.DB, service *services.TransferService) *MobileOutwardController {
	return &MobileOutwardController{DB: DB, service: service}
}

func outwardError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrReadOnlyRole),
		errors.Is(err, services.ErrWarehouseDenied):
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrSessionNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrBadTransition),
		errors.Is(err, services.ErrSameWarehouse),
		errors.Is(err, services.ErrNoItems):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

func (c *MobileOutwardController) Start(ctx *fiber.Ctx) error {
	sess, err := c.service.Start(middleware.CurrentUser(ctx))
	if err != nil {
		return outwardError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": sess})
}

func (c *MobileOutwardController) GetSession(ctx *fiber.Ctx) error {
	sess, err := c.service.Get(ctx.Params("session_id"))
	if err != nil {
		return outwardError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "data": sess})
}

func (c *MobileOutwardController) Begin(ctx *fiber.Ctx) error {
	var input struct {
		Mode string `json:"mode"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	sess, err := c.service.Begin(ctx.Params("session_id"), input.Mode)
	if err != nil {
		return outwardError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "data": sess})
}

func (c *MobileOutwardController) LinkWorkOrder(ctx *fiber.Ctx) error {
	var input struct {
		WorkOrderID string `json:"work_order_id"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	workOrderID, err := parseID(input.WorkOrderID)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid work_order_id"})
	}

	sess, err := c.service.LinkWorkOrder(ctx.Params("session_id"), workOrderID)
	if err != nil {
		return outwardError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "data": sess})
}

func (c *MobileOutwardController) SetSource(ctx *fiber.Ctx) error {
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

	sess, err := c.service.SetSource(ctx.Params("session_id"), middleware.CurrentUser(ctx), warehouseID)
	if err != nil {
		return outwardError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "data": sess})
}

func (c *MobileOutwardController) SetCategory(ctx *fiber.Ctx) error {
	var input struct {
		Category string `json:"category"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	sess, err := c.service.SetCategory(ctx.Params("session_id"), input.Category)
	if err != nil {
		return outwardError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "data": sess})
}

func (c *MobileOutwardController) SelectItems(ctx *fiber.Ctx) error {
	var input struct {
		ItemIDs []string `json:"item_ids"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	itemIDs := make([]types.SnowflakeID, 0, len(input.ItemIDs))
	for _, raw := range input.ItemIDs {
		id, err := parseID(raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item id"})
		}
		itemIDs = append(itemIDs, id)
	}

	sess, err := c.service.SelectItems(ctx.Params("session_id"), itemIDs)
	if err != nil {
		return outwardError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "data": sess})
}

func (c *MobileOutwardController) SetQuantities(ctx *fiber.Ctx) error {
	var input struct {
		Quantities map[string]int `json:"quantities"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	quantities := make(map[types.SnowflakeID]int, len(input.Quantities))
	for raw, qty := range input.Quantities {
		id, err := parseID(raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item id"})
		}
		quantities[id] = qty
	}

	sess, err := c.service.SetQuantities(ctx.Params("session_id"), quantities)
	if err != nil {
		return outwardError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "data": sess})
}

func (c *MobileOutwardController) SetDestination(ctx *fiber.Ctx) error {
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

	sess, err := c.service.SetDestination(ctx.Params("session_id"), warehouseID)
	if err != nil {
		return outwardError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "data": sess})
}

func (c *MobileOutwardController) SetNotes(ctx *fiber.Ctx) error {
	var input struct {
		Notes string `json:"notes"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	sess, err := c.service.SetNotes(ctx.Params("session_id"), input.Notes)
	if err != nil {
		return outwardError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "data": sess})
}

func (c *MobileOutwardController) Back(ctx *fiber.Ctx) error {
	sess, err := c.service.Back(ctx.Params("session_id"))
	if err != nil {
		return outwardError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "data": sess})
}

// Authorize executes the submission and completes the flow.
func (c *MobileOutwardController) Authorize(ctx *fiber.Ctx) error {
	result, err := c.service.Authorize(ctx.Params("session_id"), middleware.CurrentUser(ctx))
	if err != nil {
		return outwardError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Transfer authorized",
		"data":    result,
	})
}
