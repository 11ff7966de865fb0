package services

import (
	"gorm.io/gorm"

	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/types"
)

type WorkOrderService struct {
	orders *repositories.WorkOrderRepository
	staff  *repositories.StaffRepository
	mailer *Mailer
}

func NewWorkOrderService(db *gorm.DB, mailer *Mailer) *WorkOrderService {
	return &WorkOrderService{
		orders: repositories.NewWorkOrderRepository(db),
		staff:  repositories.NewStaffRepository(db),
		mailer: mailer,
	}
}

type WorkOrderInput struct {
	Title        string            `json:"title" validate:"required"`
	Description  string            `json:"description"`
	Priority     string            `json:"priority"`
	WarehouseID  types.SnowflakeID `json:"warehouse_id"`
	AssignedToID types.SnowflakeID `json:"assigned_to_id"`
}

// Create opens a new work order. Manager roles only.
func (s *WorkOrderService) Create(actor models.User, input WorkOrderInput) (*models.WorkOrder, error) {
	if !models.IsManagerRole(actor.Role) {
		return nil, ErrNotAllowed
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	order := &models.WorkOrder{
		Title:        input.Title,
		Description:  input.Description,
		Status:       models.WorkOrderNew,
		Priority:     priority,
		WarehouseID:  input.WarehouseID,
		AssignedToID: input.AssignedToID,
		CreatedBy:    actor.Name,
	}
	if err := s.orders.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus sets any status from any status; there is no transition
// graph. An installer accepting a previously unassigned order takes it over
// as a side effect. Completed is soft-terminal: nothing blocks later changes.
func (s *WorkOrderService) UpdateStatus(actor models.User, id types.SnowflakeID, status string) (*models.WorkOrder, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		return nil, err
	}

	if actor.Role == models.RoleInstaller &&
		status == models.WorkOrderAccepted &&
		order.AssignedToID == 0 {
		order.AssignedToID = actor.StaffID
	}

	order.Status = status
	if err := s.orders.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Assign reassigns the order. Manager roles only; notification is
// best-effort and never blocks the caller.
func (s *WorkOrderService) Assign(actor models.User, id, staffID types.SnowflakeID) (*models.WorkOrder, error) {
	if !models.IsManagerRole(actor.Role) {
		return nil, ErrNotAllowed
	}

	order, err := s.orders.GetByID(id)
	if err != nil {
		return nil, err
	}

	order.AssignedToID = staffID
	if err := s.orders.Update(order); err != nil {
		return nil, err
	}

	if staffID != 0 {
		if assignee, err := s.staff.GetByID(staffID); err == nil {
			go s.mailer.NotifyAssignment(assignee, order)
		}
	}

	return order, nil
}

// History renders the append-only activity log as timestamped lines,
// oldest first.
func (s *WorkOrderService) History(id types.SnowflakeID) ([]string, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(order.Logs))
	for _, l := range order.Logs {
		lines = append(lines, l.Display())
	}
	return lines, nil
}
