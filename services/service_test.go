package services

import (
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"inventory-app/config"
	"inventory-app/database"
	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/types"
)

func TestMain(m *testing.M) {
	config.LoadConfig()
	os.Exit(m.Run())
}

var testDBSeq int64

// openTestDB gives each test its own named in-memory database so state
// never leaks between tests.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedWarehouse(t *testing.T, db *gorm.DB, name string) *models.Warehouse {
	t.Helper()
	w := &models.Warehouse{Name: name, Status: models.WarehouseActive}
	require.NoError(t, repositories.NewWarehouseRepository(db).Create(w))
	return w
}

func seedPart(t *testing.T, db *gorm.DB, warehouseID types.SnowflakeID, name, code string, qty int) *models.Part {
	t.Helper()
	p := &models.Part{WarehouseID: warehouseID, Name: name, PartCode: code, Quantity: qty}
	require.NoError(t, repositories.NewPartRepository(db).Create(p))
	return p
}

func seedMachine(t *testing.T, db *gorm.DB, warehouseID types.SnowflakeID, name, serial string) *models.Machine {
	t.Helper()
	m := &models.Machine{
		WarehouseID: warehouseID,
		Name:        name,
		Serial:      serial,
		Class:       models.MachineClassSkill,
		Condition:   models.ConditionUsed,
		IntakeType:  models.IntakeTypeIntake,
	}
	require.NoError(t, repositories.NewMachineRepository(db).Create(m))
	return m
}

func adminUser() models.User {
	return models.User{Name: "Head Office", Role: models.RoleSiteAdmin}
}

func managerUser(warehouses ...types.SnowflakeID) models.User {
	return models.User{
		StaffID:      types.SnowflakeID(77),
		Name:         "Mike Torres",
		Role:         models.RoleWarehouseManager,
		WarehouseIDs: types.IDList(warehouses),
	}
}

func installerUser() models.User {
	return models.User{
		StaffID: types.SnowflakeID(88),
		Name:    "Dana Reed",
		Role:    models.RoleInstaller,
	}
}
