package services

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/types"
	"inventory-app/utils"
)

// Template headers. The importer never validates an uploaded header against
// these; the first line is skipped unconditionally.
const (
	PartTemplateHeader    = "Part Name,Part SKU,Quantity"
	MachineTemplateHeader = "Machine Model,Serial Number,Class(Skill/ATM/Jukebox),Condition(New/Used/Damaged)"
)

// ImportService creates inventory records in bulk from CSV text. Imported
// records carry the bulk operator sentinel and a fully ticked checklist,
// which makes them read back as pre-verified.
type ImportService struct {
	warehouses *repositories.WarehouseRepository
	parts      *repositories.PartRepository
	machines   *repositories.MachineRepository
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{
		warehouses: repositories.NewWarehouseRepository(db),
		parts:      repositories.NewPartRepository(db),
		machines:   repositories.NewMachineRepository(db),
	}
}

// TemplateFileName names the downloadable template for a warehouse/category.
func TemplateFileName(warehouseName, category string) string {
	return fmt.Sprintf("Inventory_Template_%s_%s.csv", warehouseName, category)
}

// TemplateCSV returns the one-line template body for the category.
func TemplateCSV(category string) string {
	if category == CategoryMachines {
		return MachineTemplateHeader + "\n"
	}
	return PartTemplateHeader + "\n"
}

// ImportCSV parses the payload line by line. The first line is a header and
// is skipped. Lines with fewer fields than the category requires are
// silently dropped; the return value only counts created records. A
// non-numeric quantity becomes 0.
func (s *ImportService) ImportCSV(warehouseID types.SnowflakeID, category, data string) (int, error) {
	if _, err := s.warehouses.GetByID(warehouseID); err != nil {
		return 0, err
	}

	lines := strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n")
	created := 0
	now := time.Now()

	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		fields := utils.SplitCSVLine(line)

		switch category {
		case CategoryMachines:
			if len(fields) < 4 {
				continue
			}
			machine := &models.Machine{
				WarehouseID: warehouseID,
				Name:        fields[0],
				Serial:      fields[1],
				Class:       fields[2],
				Condition:   fields[3],
				IntakeType:  models.IntakeTypeIntake,
				Checklist: models.MachineChecklist{
					Inspected:       true,
					SerialReadable:  true,
					BootsToMenu:     true,
					PhotosTaken:     true,
					StoredCorrectly: true,
					SerialMatch:     true,
					StockAdjusted:   true,
				},
				IntakeBy:   models.SystemOperator,
				IntakeDate: now,
			}
			if err := s.machines.Create(machine); err != nil {
				return created, err
			}
			created++
		default:
			if len(fields) < 3 {
				continue
			}
			part := &models.Part{
				WarehouseID: warehouseID,
				Name:        fields[0],
				PartCode:    fields[1],
				Quantity:    utils.ParseQuantity(fields[2]),
				Checklist: models.PartChecklist{
					BarcodesScanned: true,
					CountVerified:   true,
					DamageLogged:    true,
					CountUpdated:    true,
				},
				IntakeBy:   models.SystemOperator,
				IntakeDate: now,
			}
			if err := s.parts.Create(part); err != nil {
				return created, err
			}
			created++
		}
	}

	return created, nil
}
