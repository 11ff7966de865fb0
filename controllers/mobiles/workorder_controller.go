package mobiles

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/middleware"
	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/services"
)

// MobileWorkOrderController exposes the staff portal's work order list and
// the accept/status actions.
type MobileWorkOrderController struct {
	DB      *gorm.DB
	service *services.WorkOrderService
}

func NewMobileWorkOrderController(DB *gorm.DB, service *services.WorkOrderService) *MobileWorkOrderController {
	return &MobileWorkOrderController{DB: DB, service: service}
}

// GetMyWorkOrders lists orders in the session's assigned warehouses,
// most-recent-first.
func (c *MobileWorkOrderController) GetMyWorkOrders(ctx *fiber.Ctx) error {
	user := middleware.CurrentUser(ctx)

	repo := repositories.NewWorkOrderRepository(c.DB)
	all, err := repo.GetAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if user.IsAdmin() {
		return ctx.JSON(fiber.Map{"success": true, "data": all})
	}

	mine := make([]models.WorkOrder, 0, len(all))
	for _, order := range all {
		if user.WarehouseIDs.Contains(order.WarehouseID) || order.AssignedToID == user.StaffID {
			mine = append(mine, order)
		}
	}
	return ctx.JSON(fiber.Map{"success": true, "data": mine})
}

// UpdateStatus sets the order status. An installer accepting an unassigned
// order takes it over; that side effect lives in the service.
func (c *MobileWorkOrderController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := parseID(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	order, err := c.service.UpdateStatus(middleware.CurrentUser(ctx), id, input.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": order})
}

// Accept is the installer shortcut for taking an open order.
func (c *MobileWorkOrderController) Accept(ctx *fiber.Ctx) error {
	id, err := parseID(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	order, err := c.service.UpdateStatus(middleware.CurrentUser(ctx), id, models.WorkOrderAccepted)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": order})
}

// GetHistory renders the append-only activity log.
func (c *MobileWorkOrderController) GetHistory(ctx *fiber.Ctx) error {
	id, err := parseID(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	lines, err := c.service.History(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": lines})
}
