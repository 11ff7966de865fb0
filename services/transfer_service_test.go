package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-app/controllers/idgen"
	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/types"
)

// driveToItems walks a fresh session up to the item selection step.
func driveToItems(t *testing.T, svc *TransferService, user models.User, mode string, workOrderID, sourceID types.SnowflakeID, category string) *TransferSession {
	t.Helper()

	sess, err := svc.Start(user)
	require.NoError(t, err)

	sess, err = svc.Begin(sess.ID, mode)
	require.NoError(t, err)

	if mode == ModeTransfer {
		sess, err = svc.LinkWorkOrder(sess.ID, workOrderID)
		require.NoError(t, err)
	}

	sess, err = svc.SetSource(sess.ID, user, sourceID)
	require.NoError(t, err)

	sess, err = svc.SetCategory(sess.ID, category)
	require.NoError(t, err)
	require.Equal(t, TransferItems, sess.Step)
	return sess
}

func TestTransferMovesPartStock(t *testing.T) {
	db := openTestDB(t)
	source := seedWarehouse(t, db, "Central Warehouse")
	dest := seedWarehouse(t, db, "North Depot")
	part := seedPart(t, db, source.ID, "Drive Belt", "BLT-100", 10)

	svc := NewTransferService(db)
	user := adminUser()
	sess := driveToItems(t, svc, user, ModeTransfer, 0, source.ID, CategoryParts)

	sess, err := svc.SelectItems(sess.ID, []types.SnowflakeID{part.ID})
	require.NoError(t, err)
	require.Equal(t, TransferQuantities, sess.Step)

	sess, err = svc.SetQuantities(sess.ID, map[types.SnowflakeID]int{part.ID: 4})
	require.NoError(t, err)
	require.Equal(t, TransferDestination, sess.Step)

	sess, err = svc.SetDestination(sess.ID, dest.ID)
	require.NoError(t, err)

	_, err = svc.SetNotes(sess.ID, "restock run")
	require.NoError(t, err)

	result, err := svc.Authorize(sess.ID, user)
	require.NoError(t, err)
	require.Len(t, result.Lines, 1)
	assert.Equal(t, fmt.Sprintf("Transfer of 4 units of Drive Belt to %s", dest.Name), result.Lines[0])

	parts := repositories.NewPartRepository(db)
	src, err := parts.GetByID(part.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, src.Quantity)

	moved, err := parts.FindMatch(dest.ID, "BLT-100", "Drive Belt")
	require.NoError(t, err)
	assert.Equal(t, 4, moved.Quantity)

	require.Len(t, result.Movements, 1)
	movement := result.Movements[0]
	assert.Equal(t, models.MovementTransfer, movement.Kind)
	assert.Equal(t, models.ItemTypePart, movement.ItemType)
	assert.Equal(t, source.ID, movement.SourceID)
	assert.Equal(t, dest.ID, movement.DestID)
	assert.Equal(t, "restock run", movement.Notes)
}

func TestTransferClampsToOnHand(t *testing.T) {
	db := openTestDB(t)
	source := seedWarehouse(t, db, "Central Warehouse")
	dest := seedWarehouse(t, db, "North Depot")
	part := seedPart(t, db, source.ID, "Hopper", "HP-2", 3)

	svc := NewTransferService(db)
	user := adminUser()
	sess := driveToItems(t, svc, user, ModeTransfer, 0, source.ID, CategoryParts)

	_, err := svc.SelectItems(sess.ID, []types.SnowflakeID{part.ID})
	require.NoError(t, err)
	_, err = svc.SetQuantities(sess.ID, map[types.SnowflakeID]int{part.ID: 99})
	require.NoError(t, err)
	_, err = svc.SetDestination(sess.ID, dest.ID)
	require.NoError(t, err)
	_, err = svc.SetNotes(sess.ID, "")
	require.NoError(t, err)

	result, err := svc.Authorize(sess.ID, user)
	require.NoError(t, err)
	require.Len(t, result.Movements, 1)
	assert.Equal(t, 3, result.Movements[0].Quantity)

	src, err := repositories.NewPartRepository(db).GetByID(part.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, src.Quantity)
}

func TestTransferMergesIntoExistingDestinationPart(t *testing.T) {
	db := openTestDB(t)
	source := seedWarehouse(t, db, "Central Warehouse")
	dest := seedWarehouse(t, db, "North Depot")
	part := seedPart(t, db, source.ID, "Drive Belt", "BLT-100", 10)
	existing := seedPart(t, db, dest.ID, "Drive Belt", "BLT-100", 5)

	svc := NewTransferService(db)
	user := adminUser()
	sess := driveToItems(t, svc, user, ModeTransfer, 0, source.ID, CategoryParts)

	_, err := svc.SelectItems(sess.ID, []types.SnowflakeID{part.ID})
	require.NoError(t, err)
	_, err = svc.SetQuantities(sess.ID, map[types.SnowflakeID]int{part.ID: 4})
	require.NoError(t, err)
	_, err = svc.SetDestination(sess.ID, dest.ID)
	require.NoError(t, err)
	_, err = svc.SetNotes(sess.ID, "")
	require.NoError(t, err)
	_, err = svc.Authorize(sess.ID, user)
	require.NoError(t, err)

	parts := repositories.NewPartRepository(db)
	merged, err := parts.GetByID(existing.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, merged.Quantity)

	var count int64
	require.NoError(t, db.Model(&models.Part{}).
		Where("warehouse_id = ? AND part_code = ?", dest.ID, "BLT-100").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestTransferRejectsSameWarehouseDestination(t *testing.T) {
	db := openTestDB(t)
	source := seedWarehouse(t, db, "Central Warehouse")
	part := seedPart(t, db, source.ID, "Drive Belt", "BLT-100", 10)

	svc := NewTransferService(db)
	user := adminUser()
	sess := driveToItems(t, svc, user, ModeTransfer, 0, source.ID, CategoryParts)

	_, err := svc.SelectItems(sess.ID, []types.SnowflakeID{part.ID})
	require.NoError(t, err)
	_, err = svc.SetQuantities(sess.ID, map[types.SnowflakeID]int{part.ID: 1})
	require.NoError(t, err)

	_, err = svc.SetDestination(sess.ID, source.ID)
	assert.ErrorIs(t, err, ErrSameWarehouse)
}

func TestTransferRejectsEmptySelection(t *testing.T) {
	db := openTestDB(t)
	source := seedWarehouse(t, db, "Central Warehouse")

	svc := NewTransferService(db)
	sess := driveToItems(t, svc, adminUser(), ModeTransfer, 0, source.ID, CategoryParts)

	_, err := svc.SelectItems(sess.ID, nil)
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestTransferRejectsCompletedWorkOrder(t *testing.T) {
	db := openTestDB(t)
	orders := repositories.NewWorkOrderRepository(db)
	order := &models.WorkOrder{Title: "Closed job", Status: models.WorkOrderCompleted}
	require.NoError(t, orders.Create(order))

	svc := NewTransferService(db)
	sess, err := svc.Start(adminUser())
	require.NoError(t, err)
	_, err = svc.Begin(sess.ID, ModeTransfer)
	require.NoError(t, err)

	_, err = svc.LinkWorkOrder(sess.ID, order.ID)
	assert.Error(t, err)
}

func TestTransferAppendsWorkOrderHistoryAsBatch(t *testing.T) {
	db := openTestDB(t)
	source := seedWarehouse(t, db, "Central Warehouse")
	dest := seedWarehouse(t, db, "North Depot")
	belt := seedPart(t, db, source.ID, "Drive Belt", "BLT-100", 10)
	hopper := seedPart(t, db, source.ID, "Hopper", "HP-2", 10)

	orders := repositories.NewWorkOrderRepository(db)
	order := &models.WorkOrder{Title: "Site refit", Status: models.WorkOrderAccepted}
	require.NoError(t, orders.Create(order))

	// Pre-existing history must survive the batch append untouched.
	prior := models.WorkOrderLog{
		ID:          types.SnowflakeID(idgen.GenerateID()),
		WorkOrderID: order.ID,
		Line:        "Order accepted",
		CreatedAt:   time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&prior).Error)

	svc := NewTransferService(db)
	user := adminUser()
	sess := driveToItems(t, svc, user, ModeTransfer, order.ID, source.ID, CategoryParts)

	_, err := svc.SelectItems(sess.ID, []types.SnowflakeID{belt.ID, hopper.ID})
	require.NoError(t, err)
	_, err = svc.SetQuantities(sess.ID, map[types.SnowflakeID]int{belt.ID: 2, hopper.ID: 3})
	require.NoError(t, err)
	_, err = svc.SetDestination(sess.ID, dest.ID)
	require.NoError(t, err)
	_, err = svc.SetNotes(sess.ID, "")
	require.NoError(t, err)

	result, err := svc.Authorize(sess.ID, user)
	require.NoError(t, err)
	require.Len(t, result.Lines, 2)

	reloaded, err := orders.GetByID(order.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Logs, 3)
	assert.Equal(t, "Order accepted", reloaded.Logs[0].Line)
	assert.Equal(t, result.Lines[0], reloaded.Logs[1].Line)
	assert.Equal(t, result.Lines[1], reloaded.Logs[2].Line)
	// Batch lines share one timestamp.
	assert.True(t, reloaded.Logs[1].CreatedAt.Equal(reloaded.Logs[2].CreatedAt))
}

func TestDispatchMachineLeavesNetwork(t *testing.T) {
	db := openTestDB(t)
	source := seedWarehouse(t, db, "Central Warehouse")
	machine := seedMachine(t, db, source.ID, "Neon Jukebox", "JB-991")

	svc := NewTransferService(db)
	user := adminUser()

	sess, err := svc.Start(user)
	require.NoError(t, err)

	// Dispatch skips the work order link entirely.
	sess, err = svc.Begin(sess.ID, ModeDispatch)
	require.NoError(t, err)
	require.Equal(t, TransferSource, sess.Step)

	sess, err = svc.SetSource(sess.ID, user, source.ID)
	require.NoError(t, err)
	sess, err = svc.SetCategory(sess.ID, CategoryMachines)
	require.NoError(t, err)

	// Machines move whole; no quantities step, and no destination on dispatch.
	sess, err = svc.SelectItems(sess.ID, []types.SnowflakeID{machine.ID})
	require.NoError(t, err)
	require.Equal(t, TransferNotes, sess.Step)

	_, err = svc.SetNotes(sess.ID, "sold to operator")
	require.NoError(t, err)

	result, err := svc.Authorize(sess.ID, user)
	require.NoError(t, err)
	require.Len(t, result.Lines, 1)
	assert.Equal(t, "Dispatch of Neon Jukebox", result.Lines[0])
	assert.Equal(t, models.MovementDispatch, result.Movements[0].Kind)

	reloaded, err := repositories.NewMachineRepository(db).GetByID(machine.ID)
	require.NoError(t, err)
	assert.Zero(t, reloaded.WarehouseID)
}

func TestTransferSkipsPartGoneFromSource(t *testing.T) {
	db := openTestDB(t)
	source := seedWarehouse(t, db, "Central Warehouse")
	dest := seedWarehouse(t, db, "North Depot")
	part := seedPart(t, db, source.ID, "Drive Belt", "BLT-100", 10)

	svc := NewTransferService(db)
	user := adminUser()
	sess := driveToItems(t, svc, user, ModeTransfer, 0, source.ID, CategoryParts)

	_, err := svc.SelectItems(sess.ID, []types.SnowflakeID{part.ID})
	require.NoError(t, err)
	_, err = svc.SetQuantities(sess.ID, map[types.SnowflakeID]int{part.ID: 2})
	require.NoError(t, err)
	_, err = svc.SetDestination(sess.ID, dest.ID)
	require.NoError(t, err)
	_, err = svc.SetNotes(sess.ID, "")
	require.NoError(t, err)

	// The part disappears between selection and authorization.
	require.NoError(t, db.Delete(&models.Part{}, "id = ?", part.ID).Error)

	result, err := svc.Authorize(sess.ID, user)
	require.NoError(t, err)
	assert.Empty(t, result.Lines)
	assert.Empty(t, result.Movements)
}

func TestAuthorizeRequiresWriteRole(t *testing.T) {
	db := openTestDB(t)
	source := seedWarehouse(t, db, "Central Warehouse")
	dest := seedWarehouse(t, db, "North Depot")
	part := seedPart(t, db, source.ID, "Drive Belt", "BLT-100", 10)

	svc := NewTransferService(db)
	manager := adminUser()
	sess := driveToItems(t, svc, manager, ModeTransfer, 0, source.ID, CategoryParts)

	_, err := svc.SelectItems(sess.ID, []types.SnowflakeID{part.ID})
	require.NoError(t, err)
	_, err = svc.SetQuantities(sess.ID, map[types.SnowflakeID]int{part.ID: 1})
	require.NoError(t, err)
	_, err = svc.SetDestination(sess.ID, dest.ID)
	require.NoError(t, err)
	_, err = svc.SetNotes(sess.ID, "")
	require.NoError(t, err)

	_, err = svc.Authorize(sess.ID, installerUser())
	assert.ErrorIs(t, err, ErrReadOnlyRole)
}

func TestTransferBackFollowsTakenPath(t *testing.T) {
	db := openTestDB(t)
	source := seedWarehouse(t, db, "Central Warehouse")
	part := seedPart(t, db, source.ID, "Drive Belt", "BLT-100", 10)

	svc := NewTransferService(db)
	user := adminUser()
	sess := driveToItems(t, svc, user, ModeTransfer, 0, source.ID, CategoryParts)

	sess, err := svc.SelectItems(sess.ID, []types.SnowflakeID{part.ID})
	require.NoError(t, err)
	require.Equal(t, TransferQuantities, sess.Step)

	sess, err = svc.Back(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, TransferItems, sess.Step)

	sess, err = svc.Back(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, TransferCategory, sess.Step)

	sess, err = svc.Back(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, TransferSource, sess.Step)

	sess, err = svc.Back(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, TransferWorkOrderLink, sess.Step)
}
