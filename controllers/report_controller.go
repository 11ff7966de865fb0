package controllers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"inventory-app/models"
	"inventory-app/repositories"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(DB *gorm.DB) *ReportController {
	return &ReportController{DB: DB}
}

// Dashboard returns the admin landing counts.
func (c *ReportController) Dashboard(ctx *fiber.Ctx) error {
	var warehouses, staff, parts, machines, openOrders int64

	c.DB.Model(&models.Warehouse{}).Count(&warehouses)
	c.DB.Model(&models.StaffMember{}).Count(&staff)
	c.DB.Model(&models.Part{}).Count(&parts)
	c.DB.Model(&models.Machine{}).Count(&machines)
	c.DB.Model(&models.WorkOrder{}).Where("status <> ?", models.WorkOrderCompleted).Count(&openOrders)

	return ctx.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"warehouses":       warehouses,
			"staff":            staff,
			"parts":            parts,
			"machines":         machines,
			"open_work_orders": openOrders,
		},
	})
}

// GetMovements lists the movement ledger, optionally per warehouse.
func (c *ReportController) GetMovements(ctx *fiber.Ctx) error {
	repo := repositories.NewMovementRepository(c.DB)

	if raw := ctx.Query("warehouse_id"); raw != "" {
		id, err := parseQueryID(ctx, "warehouse_id")
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid warehouse_id"})
		}
		movements, err := repo.GetByWarehouse(id)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.JSON(fiber.Map{"success": true, "data": movements})
	}

	movements, err := repo.GetAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": movements})
}

// ExportExcel generates the full inventory report as a spreadsheet.
func (c *ReportController) ExportExcel(ctx *fiber.Ctx) error {
	warehouseRepo := repositories.NewWarehouseRepository(c.DB)
	partRepo := repositories.NewPartRepository(c.DB)
	machineRepo := repositories.NewMachineRepository(c.DB)

	warehouses, err := warehouseRepo.GetAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	warehouseNames := map[string]string{}
	for _, w := range warehouses {
		warehouseNames[w.ID.String()] = w.Name
	}

	parts, err := partRepo.GetAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	machines, err := machineRepo.GetAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Warehouse")
	f.SetCellValue(sheet, "B1", "Type")
	f.SetCellValue(sheet, "C1", "Name")
	f.SetCellValue(sheet, "D1", "Code / Serial")
	f.SetCellValue(sheet, "E1", "Quantity")
	f.SetCellValue(sheet, "F1", "Intake By")

	row := 2
	for _, p := range parts {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), warehouseNames[p.WarehouseID.String()])
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Part")
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.Name)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.PartCode)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), p.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), p.IntakeBy)
		row++
	}
	for _, m := range machines {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), warehouseNames[m.WarehouseID.String()])
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Machine")
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), m.Name)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), m.Serial)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), 1)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), m.IntakeBy)
		row++
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="inventory_report.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate report")
	}

	return nil
}
