package mobiles

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/middleware"
	"inventory-app/models"
	"inventory-app/repositories"
)

// MobileInventoryController serves the read-only stock views of the staff
// portal, limited to the session's assigned warehouses.
type MobileInventoryController struct {
	DB *gorm.DB
}

func NewMobileInventoryController(DB *gorm.DB) *MobileInventoryController {
	return &MobileInventoryController{DB: DB}
}

// GetMyWarehouses lists the warehouses the session may browse.
func (c *MobileInventoryController) GetMyWarehouses(ctx *fiber.Ctx) error {
	user := middleware.CurrentUser(ctx)

	repo := repositories.NewWarehouseRepository(c.DB)
	all, err := repo.GetAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if user.IsAdmin() {
		return ctx.JSON(fiber.Map{"success": true, "data": all})
	}

	mine := make([]models.Warehouse, 0, len(all))
	for _, w := range all {
		if user.WarehouseIDs.Contains(w.ID) {
			mine = append(mine, w)
		}
	}
	return ctx.JSON(fiber.Map{"success": true, "data": mine})
}

func (c *MobileInventoryController) GetParts(ctx *fiber.Ctx) error {
	warehouseID, err := parseID(ctx.Params("warehouse_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid warehouse_id"})
	}

	user := middleware.CurrentUser(ctx)
	if !user.CanAccessWarehouse(warehouseID) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "warehouse not assigned to this account"})
	}

	repo := repositories.NewPartRepository(c.DB)
	parts, err := repo.GetByWarehouse(warehouseID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": parts})
}

func (c *MobileInventoryController) GetMachines(ctx *fiber.Ctx) error {
	warehouseID, err := parseID(ctx.Params("warehouse_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid warehouse_id"})
	}

	user := middleware.CurrentUser(ctx)
	if !user.CanAccessWarehouse(warehouseID) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "warehouse not assigned to this account"})
	}

	repo := repositories.NewMachineRepository(c.DB)
	machines, err := repo.GetByWarehouse(warehouseID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": machines})
}
