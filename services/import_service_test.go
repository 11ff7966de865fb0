package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"inventory-app/models"
	"inventory-app/repositories"
)

func TestImportPartsSkipsHeaderAndShortLines(t *testing.T) {
	db := openTestDB(t)
	warehouse := seedWarehouse(t, db, "Central Warehouse")
	svc := NewImportService(db)

	data := "Part Name,Part SKU,Quantity\r\n" +
		"Drive Belt,BLT-100,25\r\n" +
		"too,short\r\n" +
		"\r\n" +
		"Hopper,HP-2,12abc\r\n"

	created, err := svc.ImportCSV(warehouse.ID, CategoryParts, data)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	parts, err := repositories.NewPartRepository(db).GetByWarehouse(warehouse.ID)
	require.NoError(t, err)
	require.Len(t, parts, 2)

	byName := map[string]models.Part{}
	for _, p := range parts {
		byName[p.Name] = p
	}
	assert.Equal(t, 25, byName["Drive Belt"].Quantity)
	// Non-numeric quantity coerces to zero instead of failing the row.
	assert.Equal(t, 0, byName["Hopper"].Quantity)

	for _, p := range parts {
		assert.Equal(t, models.SystemOperator, p.IntakeBy)
		assert.True(t, p.PreVerified)
		assert.True(t, p.Checklist.CountVerified)
	}
}

func TestImportMachinesNeedsFourFields(t *testing.T) {
	db := openTestDB(t)
	warehouse := seedWarehouse(t, db, "Central Warehouse")
	svc := NewImportService(db)

	data := MachineTemplateHeader + "\n" +
		"Neon Jukebox,JB-991,Jukebox,Used\n" +
		"Skill Cabinet,SK-12,Skill\n"

	created, err := svc.ImportCSV(warehouse.ID, CategoryMachines, data)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	machines, err := repositories.NewMachineRepository(db).GetByWarehouse(warehouse.ID)
	require.NoError(t, err)
	require.Len(t, machines, 1)
	assert.Equal(t, "Neon Jukebox", machines[0].Name)
	assert.Equal(t, models.MachineClassJukebox, machines[0].Class)
	assert.Equal(t, models.IntakeTypeIntake, machines[0].IntakeType)
	assert.True(t, machines[0].PreVerified)
}

func TestImportUnknownWarehouse(t *testing.T) {
	svc := NewImportService(openTestDB(t))

	_, err := svc.ImportCSV(123456, CategoryParts, "h\na,b,1\n")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTemplateNaming(t *testing.T) {
	assert.Equal(t, "Inventory_Template_North Depot_parts.csv",
		TemplateFileName("North Depot", CategoryParts))
	assert.Equal(t, PartTemplateHeader+"\n", TemplateCSV(CategoryParts))
	assert.Equal(t, MachineTemplateHeader+"\n", TemplateCSV(CategoryMachines))
}
