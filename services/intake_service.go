package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/types"
	"inventory-app/utils"
)

// IntakeStep is one state of the guided intake flow.
type IntakeStep string

const (
	IntakeChooseWarehouse IntakeStep = "chooseWarehouse"
	IntakeChooseAssetType IntakeStep = "chooseAssetType"
	IntakeChooseSubtype   IntakeStep = "chooseMachineSubtype"
	IntakeFillForm        IntakeStep = "fillForm"
	IntakeSuccess         IntakeStep = "success"
)

// intakeBack maps each step to the one an explicit "back" action returns to.
// Forward moves are only those the Choose* methods perform; anything else
// is rejected, so the flow cannot fall out of sync.
var intakeBack = map[IntakeStep]IntakeStep{
	IntakeChooseAssetType: IntakeChooseWarehouse,
	IntakeChooseSubtype:   IntakeChooseAssetType,
	IntakeFillForm:        IntakeChooseAssetType,
}

// IntakeSession is the server-side wizard state, held in a TTL cache.
type IntakeSession struct {
	ID          string            `json:"id"`
	Step        IntakeStep        `json:"step"`
	WarehouseID types.SnowflakeID `json:"warehouse_id"`
	AssetType   string            `json:"asset_type"` // "part" or "machine"
	Subtype     string            `json:"subtype"`    // machine intake type
}

// PartIntakeForm carries the raw form fields. Quantities arrive as text and
// coerce to 0 when non-numeric; nothing is mandatory.
type PartIntakeForm struct {
	Name        string `json:"name"`
	PartCode    string `json:"part_code"`
	Quantity    string `json:"quantity"`
	MinQuantity string `json:"min_quantity"`
	Notes       string `json:"notes"`

	BarcodesScanned bool   `json:"barcodes_scanned"`
	CountVerified   bool   `json:"count_verified"`
	DamageLogged    bool   `json:"damage_logged"`
	LocationCorrect string `json:"location_correct"`
	CountUpdated    bool   `json:"count_updated"`
}

type MachineIntakeForm struct {
	Name      string `json:"name"`
	Serial    string `json:"serial"`
	Class     string `json:"class"`
	Condition string `json:"condition"`
	Notes     string `json:"notes"`

	Inspected       bool `json:"inspected"`
	SerialReadable  bool `json:"serial_readable"`
	BootsToMenu     bool `json:"boots_to_menu"`
	PhotosTaken     bool `json:"photos_taken"`
	StoredCorrectly bool `json:"stored_correctly"`
	SerialMatch     bool `json:"serial_match"`
	StockAdjusted   bool `json:"stock_adjusted"`

	ReturnStatus string `json:"return_status"`
}

type IntakeService struct {
	sessions   *cache.Cache
	warehouses *repositories.WarehouseRepository
	parts      *repositories.PartRepository
	machines   *repositories.MachineRepository
}

func NewIntakeService(db *gorm.DB) *IntakeService {
	return &IntakeService{
		sessions:   cache.New(30*time.Minute, 10*time.Minute),
		warehouses: repositories.NewWarehouseRepository(db),
		parts:      repositories.NewPartRepository(db),
		machines:   repositories.NewMachineRepository(db),
	}
}

// Start opens a new intake session. Read-only roles never enter the flow.
func (s *IntakeService) Start(user models.User) (*IntakeSession, error) {
	if !models.CanWriteInventory(user.Role) {
		return nil, ErrReadOnlyRole
	}
	sess := &IntakeSession{
		ID:   uuid.NewString(),
		Step: IntakeChooseWarehouse,
	}
	s.sessions.Set(sess.ID, sess, cache.DefaultExpiration)
	return sess, nil
}

func (s *IntakeService) Get(id string) (*IntakeSession, error) {
	v, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return v.(*IntakeSession), nil
}

func (s *IntakeService) ChooseWarehouse(id string, user models.User, warehouseID types.SnowflakeID) (*IntakeSession, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if sess.Step != IntakeChooseWarehouse {
		return nil, ErrBadTransition
	}
	if !user.CanAccessWarehouse(warehouseID) {
		return nil, ErrWarehouseDenied
	}
	if _, err := s.warehouses.GetByID(warehouseID); err != nil {
		return nil, err
	}
	sess.WarehouseID = warehouseID
	sess.Step = IntakeChooseAssetType
	s.sessions.Set(sess.ID, sess, cache.DefaultExpiration)
	return sess, nil
}

func (s *IntakeService) ChooseAssetType(id string, assetType string) (*IntakeSession, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if sess.Step != IntakeChooseAssetType {
		return nil, ErrBadTransition
	}
	switch assetType {
	case models.ItemTypePart:
		sess.AssetType = assetType
		sess.Step = IntakeFillForm
	case models.ItemTypeMachine:
		sess.AssetType = assetType
		sess.Step = IntakeChooseSubtype
	default:
		return nil, ErrBadTransition
	}
	s.sessions.Set(sess.ID, sess, cache.DefaultExpiration)
	return sess, nil
}

func (s *IntakeService) ChooseSubtype(id string, subtype string) (*IntakeSession, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if sess.Step != IntakeChooseSubtype {
		return nil, ErrBadTransition
	}
	if subtype != models.IntakeTypeIntake && subtype != models.IntakeTypeReturn {
		return nil, ErrBadTransition
	}
	sess.Subtype = subtype
	sess.Step = IntakeFillForm
	s.sessions.Set(sess.ID, sess, cache.DefaultExpiration)
	return sess, nil
}

// Back reverses a single step. The success screen only offers Reset.
func (s *IntakeService) Back(id string) (*IntakeSession, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	prev, ok := intakeBack[sess.Step]
	if !ok {
		return nil, ErrBadTransition
	}
	if sess.Step == IntakeFillForm && sess.AssetType == models.ItemTypeMachine {
		prev = IntakeChooseSubtype
	}
	sess.Step = prev
	s.sessions.Set(sess.ID, sess, cache.DefaultExpiration)
	return sess, nil
}

func (s *IntakeService) Reset(id string) (*IntakeSession, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if sess.Step != IntakeSuccess {
		return nil, ErrBadTransition
	}
	sess.Step = IntakeChooseWarehouse
	sess.WarehouseID = 0
	sess.AssetType = ""
	sess.Subtype = ""
	s.sessions.Set(sess.ID, sess, cache.DefaultExpiration)
	return sess, nil
}

// SubmitPart files the part under the chosen warehouse and completes the flow.
func (s *IntakeService) SubmitPart(id string, user models.User, form PartIntakeForm) (*models.Part, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !models.CanWriteInventory(user.Role) {
		return nil, ErrReadOnlyRole
	}
	if sess.Step != IntakeFillForm || sess.AssetType != models.ItemTypePart {
		return nil, ErrBadTransition
	}

	part := &models.Part{
		WarehouseID: sess.WarehouseID,
		Name:        form.Name,
		PartCode:    form.PartCode,
		Quantity:    utils.ParseQuantity(form.Quantity),
		MinQuantity: utils.ParseQuantity(form.MinQuantity),
		Notes:       form.Notes,
		Checklist: models.PartChecklist{
			BarcodesScanned: form.BarcodesScanned,
			CountVerified:   form.CountVerified,
			DamageLogged:    form.DamageLogged,
			LocationCorrect: form.LocationCorrect,
			CountUpdated:    form.CountUpdated,
		},
		IntakeBy:   user.Name,
		IntakeDate: time.Now(),
	}
	if err := s.parts.Create(part); err != nil {
		return nil, err
	}

	sess.Step = IntakeSuccess
	s.sessions.Set(sess.ID, sess, cache.DefaultExpiration)
	return part, nil
}

func (s *IntakeService) SubmitMachine(id string, user models.User, form MachineIntakeForm) (*models.Machine, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !models.CanWriteInventory(user.Role) {
		return nil, ErrReadOnlyRole
	}
	if sess.Step != IntakeFillForm || sess.AssetType != models.ItemTypeMachine {
		return nil, ErrBadTransition
	}

	machine := &models.Machine{
		WarehouseID: sess.WarehouseID,
		Name:        form.Name,
		Serial:      form.Serial,
		Class:       form.Class,
		Condition:   form.Condition,
		IntakeType:  sess.Subtype,
		Notes:       form.Notes,
		Checklist: models.MachineChecklist{
			Inspected:       form.Inspected,
			SerialReadable:  form.SerialReadable,
			BootsToMenu:     form.BootsToMenu,
			PhotosTaken:     form.PhotosTaken,
			StoredCorrectly: form.StoredCorrectly,
			SerialMatch:     form.SerialMatch,
			StockAdjusted:   form.StockAdjusted,
		},
		ReturnStatus: form.ReturnStatus,
		IntakeBy:     user.Name,
		IntakeDate:   time.Now(),
	}
	if err := s.machines.Create(machine); err != nil {
		return nil, err
	}

	sess.Step = IntakeSuccess
	s.sessions.Set(sess.ID, sess, cache.DefaultExpiration)
	return machine, nil
}
