package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/models"
	"inventory-app/repositories"
)

type MachineController struct {
	DB *gorm.DB
}

func NewMachineController(DB *gorm.DB) *MachineController {
	return &MachineController{DB: DB}
}

type machineInput struct {
	Name         string `json:"name"`
	Serial       string `json:"serial"`
	Class        string `json:"class"`
	Condition    string `json:"condition"`
	IntakeType   string `json:"intake_type"`
	Notes        string `json:"notes"`
	ReturnStatus string `json:"return_status"`

	Inspected       bool `json:"inspected"`
	SerialReadable  bool `json:"serial_readable"`
	BootsToMenu     bool `json:"boots_to_menu"`
	PhotosTaken     bool `json:"photos_taken"`
	StoredCorrectly bool `json:"stored_correctly"`
	SerialMatch     bool `json:"serial_match"`
	StockAdjusted   bool `json:"stock_adjusted"`
}

func (c *MachineController) GetMachines(ctx *fiber.Ctx) error {
	repo := repositories.NewMachineRepository(c.DB)

	if q := ctx.Query("q"); q != "" {
		machines, err := repo.Search(q)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.JSON(fiber.Map{"success": true, "data": machines})
	}

	if raw := ctx.Query("warehouse_id"); raw != "" {
		id, err := parseQueryID(ctx, "warehouse_id")
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid warehouse_id"})
		}
		machines, err := repo.GetByWarehouse(id)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.JSON(fiber.Map{"success": true, "data": machines})
	}

	machines, err := repo.GetAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": machines})
}

func (c *MachineController) GetMachineByID(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewMachineRepository(c.DB)
	machine, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Machine not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": machine})
}

func (c *MachineController) UpdateMachine(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewMachineRepository(c.DB)
	machine, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input machineInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	machine.Name = input.Name
	machine.Serial = input.Serial
	machine.Class = input.Class
	machine.Condition = input.Condition
	if input.IntakeType != "" {
		machine.IntakeType = input.IntakeType
	}
	machine.Notes = input.Notes
	machine.ReturnStatus = input.ReturnStatus
	machine.Checklist = models.MachineChecklist{
		Inspected:       input.Inspected,
		SerialReadable:  input.SerialReadable,
		BootsToMenu:     input.BootsToMenu,
		PhotosTaken:     input.PhotosTaken,
		StoredCorrectly: input.StoredCorrectly,
		SerialMatch:     input.SerialMatch,
		StockAdjusted:   input.StockAdjusted,
	}

	if err := repo.Update(machine); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Machine updated successfully",
		"data":    machine,
	})
}

func (c *MachineController) DeleteMachine(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewMachineRepository(c.DB)
	if err := repo.Delete(id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Machine deleted successfully",
	})
}
