package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-app/models"
)

func TestIntakeReadOnlyRoleCannotStart(t *testing.T) {
	svc := NewIntakeService(openTestDB(t))

	_, err := svc.Start(installerUser())
	assert.ErrorIs(t, err, ErrReadOnlyRole)
}

func TestIntakePartFlow(t *testing.T) {
	db := openTestDB(t)
	warehouse := seedWarehouse(t, db, "Central Warehouse")
	svc := NewIntakeService(db)
	user := managerUser(warehouse.ID)

	sess, err := svc.Start(user)
	require.NoError(t, err)
	assert.Equal(t, IntakeChooseWarehouse, sess.Step)

	sess, err = svc.ChooseWarehouse(sess.ID, user, warehouse.ID)
	require.NoError(t, err)
	assert.Equal(t, IntakeChooseAssetType, sess.Step)

	sess, err = svc.ChooseAssetType(sess.ID, models.ItemTypePart)
	require.NoError(t, err)
	assert.Equal(t, IntakeFillForm, sess.Step)

	part, err := svc.SubmitPart(sess.ID, user, PartIntakeForm{
		Name:          "Drive Belt",
		PartCode:      "BLT-100",
		Quantity:      "25",
		MinQuantity:   "abc",
		CountVerified: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 25, part.Quantity)
	assert.Equal(t, 0, part.MinQuantity)
	assert.Equal(t, warehouse.ID, part.WarehouseID)
	assert.Equal(t, user.Name, part.IntakeBy)
	assert.False(t, part.IntakeDate.IsZero())

	sess, err = svc.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, IntakeSuccess, sess.Step)

	sess, err = svc.Reset(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, IntakeChooseWarehouse, sess.Step)
	assert.Zero(t, sess.WarehouseID)
	assert.Empty(t, sess.AssetType)
}

func TestIntakeMachineFlowRequiresSubtype(t *testing.T) {
	db := openTestDB(t)
	warehouse := seedWarehouse(t, db, "Central Warehouse")
	svc := NewIntakeService(db)
	user := adminUser()

	sess, err := svc.Start(user)
	require.NoError(t, err)
	_, err = svc.ChooseWarehouse(sess.ID, user, warehouse.ID)
	require.NoError(t, err)

	sess, err = svc.ChooseAssetType(sess.ID, models.ItemTypeMachine)
	require.NoError(t, err)
	assert.Equal(t, IntakeChooseSubtype, sess.Step)

	// A machine submission is not reachable before the subtype is picked.
	_, err = svc.SubmitMachine(sess.ID, user, MachineIntakeForm{Name: "Neon Jukebox"})
	assert.ErrorIs(t, err, ErrBadTransition)

	sess, err = svc.ChooseSubtype(sess.ID, models.IntakeTypeReturn)
	require.NoError(t, err)
	assert.Equal(t, IntakeFillForm, sess.Step)

	machine, err := svc.SubmitMachine(sess.ID, user, MachineIntakeForm{
		Name:         "Neon Jukebox",
		Serial:       "JB-991",
		Class:        models.MachineClassJukebox,
		Condition:    models.ConditionUsed,
		ReturnStatus: "Customer return",
	})
	require.NoError(t, err)
	assert.Equal(t, models.IntakeTypeReturn, machine.IntakeType)
	assert.Equal(t, warehouse.ID, machine.WarehouseID)
}

func TestIntakeBackRetracesMachinePath(t *testing.T) {
	db := openTestDB(t)
	warehouse := seedWarehouse(t, db, "Central Warehouse")
	svc := NewIntakeService(db)
	user := adminUser()

	sess, _ := svc.Start(user)
	svc.ChooseWarehouse(sess.ID, user, warehouse.ID)
	svc.ChooseAssetType(sess.ID, models.ItemTypeMachine)
	svc.ChooseSubtype(sess.ID, models.IntakeTypeIntake)

	sess, err := svc.Back(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, IntakeChooseSubtype, sess.Step)

	sess, err = svc.Back(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, IntakeChooseAssetType, sess.Step)

	sess, err = svc.Back(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, IntakeChooseWarehouse, sess.Step)

	// The first step has nowhere to go back to.
	_, err = svc.Back(sess.ID)
	assert.ErrorIs(t, err, ErrBadTransition)
}

func TestIntakeRejectsOutOfOrderMoves(t *testing.T) {
	db := openTestDB(t)
	svc := NewIntakeService(db)
	user := adminUser()

	sess, err := svc.Start(user)
	require.NoError(t, err)

	_, err = svc.ChooseAssetType(sess.ID, models.ItemTypePart)
	assert.ErrorIs(t, err, ErrBadTransition)

	_, err = svc.SubmitPart(sess.ID, user, PartIntakeForm{Name: "Drive Belt"})
	assert.ErrorIs(t, err, ErrBadTransition)

	_, err = svc.Reset(sess.ID)
	assert.ErrorIs(t, err, ErrBadTransition)
}

func TestIntakeWarehouseAccessDenied(t *testing.T) {
	db := openTestDB(t)
	assigned := seedWarehouse(t, db, "Central Warehouse")
	other := seedWarehouse(t, db, "North Depot")
	svc := NewIntakeService(db)
	user := managerUser(assigned.ID)

	sess, err := svc.Start(user)
	require.NoError(t, err)

	_, err = svc.ChooseWarehouse(sess.ID, user, other.ID)
	assert.ErrorIs(t, err, ErrWarehouseDenied)
}

func TestIntakeUnknownSessionID(t *testing.T) {
	svc := NewIntakeService(openTestDB(t))

	_, err := svc.Get("no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
