package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"

	"inventory-app/controllers/idgen"
	"inventory-app/models"
	"inventory-app/types"
)

// TransferStep is one state of the guided outward flow.
type TransferStep string

const (
	TransferSelection     TransferStep = "selection"
	TransferWorkOrderLink TransferStep = "workorder_link"
	TransferSource        TransferStep = "source"
	TransferCategory      TransferStep = "category"
	TransferItems         TransferStep = "items"
	TransferQuantities    TransferStep = "quantities"
	TransferDestination   TransferStep = "destination"
	TransferNotes         TransferStep = "notes"
	TransferSummary       TransferStep = "summary"
	TransferSuccess       TransferStep = "success"
)

const (
	ModeTransfer = "transfer"
	ModeDispatch = "dispatch"

	CategoryParts    = "parts"
	CategoryMachines = "machines"
)

// TransferSession is the server-side wizard state. Items maps a selected
// item id to its requested quantity; machines always move as whole units.
type TransferSession struct {
	ID          string                    `json:"id"`
	Step        TransferStep              `json:"step"`
	Mode        string                    `json:"mode"`
	WorkOrderID types.SnowflakeID         `json:"work_order_id"`
	SourceID    types.SnowflakeID         `json:"source_id"`
	DestID      types.SnowflakeID         `json:"dest_id"`
	Category    string                    `json:"category"`
	Items       map[types.SnowflakeID]int `json:"items"`
	Notes       string                    `json:"notes"`
}

// TransferResult reports what an authorized submission actually moved.
type TransferResult struct {
	Lines     []string               `json:"lines"`
	Movements []models.StockMovement `json:"movements"`
}

type TransferService struct {
	db       *gorm.DB
	sessions *cache.Cache
}

func NewTransferService(db *gorm.DB) *TransferService {
	return &TransferService{
		db:       db,
		sessions: cache.New(30*time.Minute, 10*time.Minute),
	}
}

func (s *TransferService) Start(user models.User) (*TransferSession, error) {
	if !models.CanWriteInventory(user.Role) {
		return nil, ErrReadOnlyRole
	}
	sess := &TransferSession{
		ID:    uuid.NewString(),
		Step:  TransferSelection,
		Items: map[types.SnowflakeID]int{},
	}
	s.sessions.Set(sess.ID, sess, cache.DefaultExpiration)
	return sess, nil
}

func (s *TransferService) Get(id string) (*TransferSession, error) {
	v, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return v.(*TransferSession), nil
}

func (s *TransferService) save(sess *TransferSession) {
	s.sessions.Set(sess.ID, sess, cache.DefaultExpiration)
}

// Begin picks the outward mode. Transfers link a work order first;
// dispatches go straight to the source warehouse.
func (s *TransferService) Begin(id, mode string) (*TransferSession, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if sess.Step != TransferSelection {
		return nil, ErrBadTransition
	}
	switch mode {
	case ModeTransfer:
		sess.Mode = mode
		sess.Step = TransferWorkOrderLink
	case ModeDispatch:
		sess.Mode = mode
		sess.Step = TransferSource
	default:
		return nil, ErrBadTransition
	}
	s.save(sess)
	return sess, nil
}

// LinkWorkOrder optionally ties the transfer to a work order. Zero skips the
// link. Completed orders are closed to new transfers.
func (s *TransferService) LinkWorkOrder(id string, workOrderID types.SnowflakeID) (*TransferSession, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if sess.Step != TransferWorkOrderLink {
		return nil, ErrBadTransition
	}
	if workOrderID != 0 {
		var wo models.WorkOrder
		if err := s.db.First(&wo, "id = ?", workOrderID).Error; err != nil {
			return nil, err
		}
		if wo.Status == models.WorkOrderCompleted {
			return nil, errors.New("work order is completed")
		}
	}
	sess.WorkOrderID = workOrderID
	sess.Step = TransferSource
	s.save(sess)
	return sess, nil
}

func (s *TransferService) SetSource(id string, user models.User, warehouseID types.SnowflakeID) (*TransferSession, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if sess.Step != TransferSource {
		return nil, ErrBadTransition
	}
	if !user.CanAccessWarehouse(warehouseID) {
		return nil, ErrWarehouseDenied
	}
	var w models.Warehouse
	if err := s.db.First(&w, "id = ?", warehouseID).Error; err != nil {
		return nil, err
	}
	sess.SourceID = warehouseID
	sess.Step = TransferCategory
	s.save(sess)
	return sess, nil
}

func (s *TransferService) SetCategory(id, category string) (*TransferSession, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if sess.Step != TransferCategory {
		return nil, ErrBadTransition
	}
	if category != CategoryParts && category != CategoryMachines {
		return nil, ErrBadTransition
	}
	sess.Category = category
	sess.Items = map[types.SnowflakeID]int{}
	sess.Step = TransferItems
	s.save(sess)
	return sess, nil
}

// SelectItems records the chosen item ids. The step cannot advance with an
// empty selection. Parts continue to the quantities step; machines move as
// whole units and skip straight on.
func (s *TransferService) SelectItems(id string, itemIDs []types.SnowflakeID) (*TransferSession, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if sess.Step != TransferItems {
		return nil, ErrBadTransition
	}
	if len(itemIDs) == 0 {
		return nil, ErrNoItems
	}
	sess.Items = map[types.SnowflakeID]int{}
	for _, itemID := range itemIDs {
		sess.Items[itemID] = 1
	}
	if sess.Category == CategoryParts {
		sess.Step = TransferQuantities
	} else {
		sess.Step = s.afterQuantities(sess)
	}
	s.save(sess)
	return sess, nil
}

func (s *TransferService) SetQuantities(id string, quantities map[types.SnowflakeID]int) (*TransferSession, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if sess.Step != TransferQuantities {
		return nil, ErrBadTransition
	}
	for itemID, qty := range quantities {
		if _, selected := sess.Items[itemID]; selected && qty > 0 {
			sess.Items[itemID] = qty
		}
	}
	sess.Step = s.afterQuantities(sess)
	s.save(sess)
	return sess, nil
}

// afterQuantities branches on mode: dispatches leave the network and have
// no destination warehouse.
func (s *TransferService) afterQuantities(sess *TransferSession) TransferStep {
	if sess.Mode == ModeDispatch {
		return TransferNotes
	}
	return TransferDestination
}

func (s *TransferService) SetDestination(id string, warehouseID types.SnowflakeID) (*TransferSession, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if sess.Step != TransferDestination {
		return nil, ErrBadTransition
	}
	if warehouseID == sess.SourceID {
		return nil, ErrSameWarehouse
	}
	var w models.Warehouse
	if err := s.db.First(&w, "id = ?", warehouseID).Error; err != nil {
		return nil, err
	}
	sess.DestID = warehouseID
	sess.Step = TransferNotes
	s.save(sess)
	return sess, nil
}

func (s *TransferService) SetNotes(id, notes string) (*TransferSession, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if sess.Step != TransferNotes {
		return nil, ErrBadTransition
	}
	sess.Notes = notes
	sess.Step = TransferSummary
	s.save(sess)
	return sess, nil
}

// Back reverses one step along the path the session actually took.
func (s *TransferService) Back(id string) (*TransferSession, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	var prev TransferStep
	switch sess.Step {
	case TransferWorkOrderLink:
		prev = TransferSelection
	case TransferSource:
		if sess.Mode == ModeTransfer {
			prev = TransferWorkOrderLink
		} else {
			prev = TransferSelection
		}
	case TransferCategory:
		prev = TransferSource
	case TransferItems:
		prev = TransferCategory
	case TransferQuantities:
		prev = TransferItems
	case TransferDestination:
		if sess.Category == CategoryParts {
			prev = TransferQuantities
		} else {
			prev = TransferItems
		}
	case TransferNotes:
		if sess.Mode == ModeDispatch {
			if sess.Category == CategoryParts {
				prev = TransferQuantities
			} else {
				prev = TransferItems
			}
		} else {
			prev = TransferDestination
		}
	case TransferSummary:
		prev = TransferNotes
	default:
		return nil, ErrBadTransition
	}

	sess.Step = prev
	s.save(sess)
	return sess, nil
}

// Authorize executes the submission. All stock adjustments, ledger rows and
// the linked work order's history lines are written in one transaction; the
// history lines are composed first and appended as a single batch.
func (s *TransferService) Authorize(id string, user models.User) (*TransferResult, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if sess.Step != TransferSummary {
		return nil, ErrBadTransition
	}
	if !models.CanWriteInventory(user.Role) {
		return nil, ErrReadOnlyRole
	}

	var destName string
	if sess.Mode == ModeTransfer {
		var dest models.Warehouse
		if err := s.db.First(&dest, "id = ?", sess.DestID).Error; err != nil {
			return nil, err
		}
		destName = dest.Name
	}

	itemIDs := make([]types.SnowflakeID, 0, len(sess.Items))
	for itemID := range sess.Items {
		itemIDs = append(itemIDs, itemID)
	}
	slices.Sort(itemIDs)

	result := &TransferResult{}
	now := time.Now()

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, itemID := range itemIDs {
			if sess.Category == CategoryParts {
				line, movement, err := s.movePart(tx, sess, itemID, destName, user)
				if err != nil {
					return err
				}
				if movement != nil {
					result.Lines = append(result.Lines, line)
					result.Movements = append(result.Movements, *movement)
				}
			} else {
				line, movement, err := s.moveMachine(tx, sess, itemID, destName, user)
				if err != nil {
					return err
				}
				if movement != nil {
					result.Lines = append(result.Lines, line)
					result.Movements = append(result.Movements, *movement)
				}
			}
		}

		// Append the whole batch to the linked work order at once.
		if sess.WorkOrderID != 0 && len(result.Lines) > 0 {
			logs := make([]models.WorkOrderLog, 0, len(result.Lines))
			for _, line := range result.Lines {
				logs = append(logs, models.WorkOrderLog{
					ID:          types.SnowflakeID(idgen.GenerateID()),
					WorkOrderID: sess.WorkOrderID,
					Line:        line,
					CreatedAt:   now,
				})
			}
			if err := tx.Create(&logs).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sess.Step = TransferSuccess
	s.save(sess)
	return result, nil
}

// movePart adjusts the source part and creates or increments its
// counterpart at the destination. A part that vanished from the source
// since selection is skipped.
func (s *TransferService) movePart(tx *gorm.DB, sess *TransferSession, itemID types.SnowflakeID, destName string, user models.User) (string, *models.StockMovement, error) {
	var part models.Part
	if err := tx.First(&part, "id = ? AND warehouse_id = ?", itemID, sess.SourceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, nil
		}
		return "", nil, err
	}
	if part.Quantity <= 0 {
		return "", nil, nil
	}

	qty := sess.Items[itemID]
	if qty < 1 {
		qty = 1
	}
	if qty > part.Quantity {
		qty = part.Quantity
	}

	part.Quantity -= qty
	if err := tx.Save(&part).Error; err != nil {
		return "", nil, err
	}

	kind := models.MovementDispatch
	line := fmt.Sprintf("Dispatch of %d units of %s", qty, part.Name)

	if sess.Mode == ModeTransfer {
		kind = models.MovementTransfer
		line = fmt.Sprintf("Transfer of %d units of %s to %s", qty, part.Name, destName)

		var destPart models.Part
		err := tx.Where("warehouse_id = ? AND part_code = ? AND name = ?",
			sess.DestID, part.PartCode, part.Name).First(&destPart).Error
		switch {
		case err == nil:
			destPart.Quantity += qty
			if err := tx.Save(&destPart).Error; err != nil {
				return "", nil, err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			created := models.Part{
				ID:          types.SnowflakeID(idgen.GenerateID()),
				WarehouseID: sess.DestID,
				Name:        part.Name,
				PartCode:    part.PartCode,
				Quantity:    qty,
				MinQuantity: part.MinQuantity,
				Notes:       part.Notes,
				Checklist:   part.Checklist,
				IntakeBy:    part.IntakeBy,
				IntakeDate:  part.IntakeDate,
			}
			if err := tx.Create(&created).Error; err != nil {
				return "", nil, err
			}
		default:
			return "", nil, err
		}
	}

	movement := &models.StockMovement{
		ID:          types.SnowflakeID(idgen.GenerateID()),
		Kind:        kind,
		ItemType:    models.ItemTypePart,
		ItemID:      part.ID,
		ItemName:    part.Name,
		Quantity:    qty,
		SourceID:    sess.SourceID,
		DestID:      sess.DestID,
		WorkOrderID: sess.WorkOrderID,
		MovedBy:     user.Name,
		Notes:       sess.Notes,
	}
	if err := tx.Create(movement).Error; err != nil {
		return "", nil, err
	}

	return line, movement, nil
}

// moveMachine reassigns the machine to the destination warehouse; a
// dispatch takes it out of the warehouse network entirely.
func (s *TransferService) moveMachine(tx *gorm.DB, sess *TransferSession, itemID types.SnowflakeID, destName string, user models.User) (string, *models.StockMovement, error) {
	var machine models.Machine
	if err := tx.First(&machine, "id = ? AND warehouse_id = ?", itemID, sess.SourceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, nil
		}
		return "", nil, err
	}

	kind := models.MovementDispatch
	line := fmt.Sprintf("Dispatch of %s", machine.Name)
	machine.WarehouseID = 0

	if sess.Mode == ModeTransfer {
		kind = models.MovementTransfer
		line = fmt.Sprintf("Transfer of %s to %s", machine.Name, destName)
		machine.WarehouseID = sess.DestID
	}

	if err := tx.Save(&machine).Error; err != nil {
		return "", nil, err
	}

	movement := &models.StockMovement{
		ID:          types.SnowflakeID(idgen.GenerateID()),
		Kind:        kind,
		ItemType:    models.ItemTypeMachine,
		ItemID:      machine.ID,
		ItemName:    machine.Name,
		Quantity:    1,
		SourceID:    sess.SourceID,
		DestID:      sess.DestID,
		WorkOrderID: sess.WorkOrderID,
		MovedBy:     user.Name,
		Notes:       sess.Notes,
	}
	if err := tx.Create(movement).Error; err != nil {
		return "", nil, err
	}

	return line, movement, nil
}
