package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-app/controllers/idgen"
	"inventory-app/models"
	"inventory-app/types"
)

func TestCreateWorkOrderRequiresManager(t *testing.T) {
	svc := NewWorkOrderService(openTestDB(t), NewMailer())

	_, err := svc.Create(installerUser(), WorkOrderInput{Title: "Fix hopper"})
	assert.ErrorIs(t, err, ErrNotAllowed)
}

func TestCreateWorkOrderDefaults(t *testing.T) {
	svc := NewWorkOrderService(openTestDB(t), NewMailer())
	actor := managerUser()

	order, err := svc.Create(actor, WorkOrderInput{Title: "Fix hopper"})
	require.NoError(t, err)
	assert.Equal(t, models.WorkOrderNew, order.Status)
	assert.Equal(t, models.PriorityMedium, order.Priority)
	assert.Equal(t, actor.Name, order.CreatedBy)
	assert.Zero(t, order.AssignedToID)
	assert.NotZero(t, order.ID)
}

func TestInstallerAcceptSelfAssigns(t *testing.T) {
	db := openTestDB(t)
	svc := NewWorkOrderService(db, NewMailer())

	order, err := svc.Create(managerUser(), WorkOrderInput{Title: "Install jukebox"})
	require.NoError(t, err)
	require.Zero(t, order.AssignedToID)

	installer := installerUser()
	updated, err := svc.UpdateStatus(installer, order.ID, models.WorkOrderAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.WorkOrderAccepted, updated.Status)
	assert.Equal(t, installer.StaffID, updated.AssignedToID)
}

func TestInstallerAcceptKeepsExistingAssignee(t *testing.T) {
	db := openTestDB(t)
	svc := NewWorkOrderService(db, NewMailer())

	order, err := svc.Create(managerUser(), WorkOrderInput{
		Title:        "Install jukebox",
		AssignedToID: types.SnowflakeID(42),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(installerUser(), order.ID, models.WorkOrderAccepted)
	require.NoError(t, err)
	assert.EqualValues(t, 42, updated.AssignedToID)
}

func TestCompletedOrderStillAcceptsStatusChanges(t *testing.T) {
	db := openTestDB(t)
	svc := NewWorkOrderService(db, NewMailer())

	order, err := svc.Create(managerUser(), WorkOrderInput{Title: "Refit"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(managerUser(), order.ID, models.WorkOrderCompleted)
	require.NoError(t, err)

	reopened, err := svc.UpdateStatus(managerUser(), order.ID, models.WorkOrderPending)
	require.NoError(t, err)
	assert.Equal(t, models.WorkOrderPending, reopened.Status)
}

func TestAssignRequiresManager(t *testing.T) {
	db := openTestDB(t)
	svc := NewWorkOrderService(db, NewMailer())

	order, err := svc.Create(managerUser(), WorkOrderInput{Title: "Refit"})
	require.NoError(t, err)

	_, err = svc.Assign(installerUser(), order.ID, types.SnowflakeID(42))
	assert.ErrorIs(t, err, ErrNotAllowed)
}

func TestHistoryRendersOldestFirst(t *testing.T) {
	db := openTestDB(t)
	svc := NewWorkOrderService(db, NewMailer())

	order, err := svc.Create(managerUser(), WorkOrderInput{Title: "Refit"})
	require.NoError(t, err)

	base := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	for i, line := range []string{"first", "second"} {
		require.NoError(t, db.Create(&models.WorkOrderLog{
			ID:          types.SnowflakeID(idgen.GenerateID()),
			WorkOrderID: order.ID,
			Line:        line,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	lines, err := svc.History(order.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "[2026-03-14 09:30] first", lines[0])
	assert.Equal(t, "[2026-03-14 09:31] second", lines[1])
}
