package ledger

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kisanseva/kisanseva/internal/domain/models"
	"github.com/kisanseva/kisanseva/internal/repository/docstore"
)

// View names the screen the ledger is currently driving.
type View string

const (
	ViewList    View = "list"
	ViewDetails View = "details"
)

// CropInput carries the descriptive fields of an add-crop submission. Every
// field is stored verbatim; only the name is validated.
type CropInput struct {
	Name          string `json:"name"`
	Notes         string `json:"notes"`
	Season        string `json:"season"`
	Area          string `json:"area"`
	Variety       string `json:"variety"`
	SowingDate    string `json:"sowingDate"`
	HarvestDate   string `json:"harvestDate"`
	Fertilizer    string `json:"fertilizer"`
	Pesticide     string `json:"pesticide"`
	ExpectedYield string `json:"expectedYield"`
	MarketPrice   string `json:"marketPrice"`
}

// Transaction is the combined expense/income form submission. Expense and
// Income arrive as raw form strings. EditIndex is -1 for a new entry,
// otherwise the position of the expense being replaced. Income is always
// additive, in edit mode too.
type Transaction struct {
	CropID    string `json:"-"`
	Expense   string `json:"expense"`
	Income    string `json:"income"`
	Bill      string `json:"bill"`
	EditIndex int    `json:"editIndex"`
}

// Service owns the in-memory crop snapshot, hydrated from the store's live
// subscription. The store stays the system of record: no mutation is applied
// locally, every write round-trips and shows up with the next snapshot.
type Service struct {
	store  docstore.CropStore
	logger *zap.Logger
	newID  func() string

	mu       sync.RWMutex
	crops    []models.Crop
	byID     map[string]int
	activeID string
	view     View
}

// NewService wires a new ledger service instance.
func NewService(store docstore.CropStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		logger: logger,
		newID:  uuid.NewString,
		byID:   make(map[string]int),
		view:   ViewList,
	}
}

// Run consumes the store's snapshot feed until ctx is done. Each delivery
// replaces the whole in-memory state atomically.
func (s *Service) Run(ctx context.Context) error {
	snapshots, err := s.store.Snapshots(ctx)
	if err != nil {
		return fmt.Errorf("subscribe to crop snapshots: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case snapshot, ok := <-snapshots:
			if !ok {
				return errors.New("crop snapshot feed closed")
			}
			s.applySnapshot(snapshot)
		}
	}
}

// applySnapshot swaps in the delivered snapshot wholesale. If the crop
// currently open in the detail view is gone from the new snapshot, the view
// falls back to the list so no dangling reference survives.
func (s *Service) applySnapshot(crops []models.Crop) {
	byID := make(map[string]int, len(crops))
	for i, crop := range crops {
		byID[crop.ID] = i
	}

	s.mu.Lock()
	s.crops = crops
	s.byID = byID
	if s.activeID != "" {
		if _, ok := byID[s.activeID]; !ok {
			s.logger.Info("active crop no longer present, returning to list view", zap.String("crop_id", s.activeID))
			s.activeID = ""
			s.view = ViewList
		}
	}
	s.mu.Unlock()
}

// Crops returns a copy of the current snapshot.
func (s *Service) Crops() []models.Crop {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Crop, len(s.crops))
	for i, crop := range s.crops {
		out[i] = cloneCrop(crop)
	}
	return out
}

// Crop looks up a single crop in the current snapshot.
func (s *Service) Crop(id string) (models.Crop, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return models.Crop{}, false
	}
	return cloneCrop(s.crops[i]), true
}

// AddCrop validates and creates a new crop record with an empty ledger.
func (s *Service) AddCrop(ctx context.Context, input CropInput) (string, error) {
	crop := models.Crop{
		Name:          input.Name,
		Notes:         input.Notes,
		Season:        input.Season,
		Area:          input.Area,
		Variety:       input.Variety,
		SowingDate:    input.SowingDate,
		HarvestDate:   input.HarvestDate,
		Fertilizer:    input.Fertilizer,
		Pesticide:     input.Pesticide,
		ExpectedYield: input.ExpectedYield,
		MarketPrice:   input.MarketPrice,
		Expenses:      []models.Expense{},
		Income:        0,
	}
	if err := crop.Validate(); err != nil {
		return "", err
	}

	id, err := s.store.CreateCrop(ctx, crop)
	if err != nil {
		return "", err
	}

	s.logger.Info("crop created", zap.String("crop_id", id), zap.String("name", crop.Name))
	return id, nil
}

// SaveTransaction applies one expense/income submission to a crop.
//
// New-entry mode appends an expense when an amount is supplied; edit mode
// replaces the amount and bill of the entry at EditIndex in place. Any income
// present is added to the accumulator either way. The result is one atomic
// store update rewriting the full expense array and the new income together.
// A crop id absent from the current snapshot makes this a silent no-op.
func (s *Service) SaveTransaction(ctx context.Context, txn Transaction) error {
	crop, ok := s.Crop(txn.CropID)
	if !ok {
		s.logger.Debug("transaction for unknown crop ignored", zap.String("crop_id", txn.CropID))
		return nil
	}

	expenses := crop.Expenses
	switch {
	case txn.EditIndex >= 0:
		if txn.EditIndex >= len(expenses) {
			return models.ErrIndexOutOfRange
		}
		amount, err := parseAmount(txn.Expense)
		if err != nil {
			return err
		}
		expenses[txn.EditIndex].Amount = amount
		expenses[txn.EditIndex].Bill = txn.Bill
	case strings.TrimSpace(txn.Expense) != "":
		amount, err := parseAmount(txn.Expense)
		if err != nil {
			return err
		}
		expenses = append(expenses, models.Expense{
			ID:     s.newID(),
			Amount: amount,
			Bill:   txn.Bill,
		})
	}

	income := crop.Income + parseIncome(txn.Income)

	if err := s.store.UpdateCropLedger(ctx, crop.ID, expenses, income); err != nil {
		return fmt.Errorf("save transaction for crop %s: %w", crop.ID, err)
	}
	return nil
}

// DeleteExpense removes the expense at the given position and persists the
// full remaining sequence. Income is untouched. An unknown crop id is a
// silent no-op; an out-of-range index is a caller error.
func (s *Service) DeleteExpense(ctx context.Context, cropID string, index int) error {
	crop, ok := s.Crop(cropID)
	if !ok {
		s.logger.Debug("expense delete for unknown crop ignored", zap.String("crop_id", cropID))
		return nil
	}

	if index < 0 || index >= len(crop.Expenses) {
		return models.ErrIndexOutOfRange
	}

	expenses := append(crop.Expenses[:index], crop.Expenses[index+1:]...)

	if err := s.store.UpdateCropExpenses(ctx, cropID, expenses); err != nil {
		return fmt.Errorf("delete expense %d of crop %s: %w", index, cropID, err)
	}
	return nil
}

// DeleteCrop removes the crop document. Its embedded expenses go with it.
// If the deleted crop was open in the detail view the view resets to the
// list right away; the snapshot fallback covers deletion from elsewhere.
func (s *Service) DeleteCrop(ctx context.Context, id string) error {
	if err := s.store.DeleteCrop(ctx, id); err != nil {
		return fmt.Errorf("delete crop %s: %w", id, err)
	}

	s.mu.Lock()
	if s.activeID == id {
		s.activeID = ""
		s.view = ViewList
	}
	s.mu.Unlock()

	s.logger.Info("crop deleted", zap.String("crop_id", id))
	return nil
}

// OpenCrop switches to the detail view for a crop in the current snapshot.
func (s *Service) OpenCrop(id string) (models.Crop, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[id]
	if !ok {
		return models.Crop{}, false
	}
	s.activeID = id
	s.view = ViewDetails
	return cloneCrop(s.crops[i]), true
}

// ShowList returns to the list view.
func (s *Service) ShowList() {
	s.mu.Lock()
	s.activeID = ""
	s.view = ViewList
	s.mu.Unlock()
}

// CurrentView reports the active view and, in detail mode, the open crop.
func (s *Service) CurrentView() (View, models.Crop, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.view != ViewDetails || s.activeID == "" {
		return ViewList, models.Crop{}, false
	}
	i, ok := s.byID[s.activeID]
	if !ok {
		return ViewList, models.Crop{}, false
	}
	return ViewDetails, cloneCrop(s.crops[i]), true
}

func parseAmount(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, models.ErrInvalidAmount
	}
	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || amount <= 0 {
		return 0, models.ErrInvalidAmount
	}
	return amount, nil
}

// parseIncome mirrors the transaction contract: an absent or unparseable
// income contributes zero instead of failing the call.
func parseIncome(raw string) float64 {
	income, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return income
}

func cloneCrop(crop models.Crop) models.Crop {
	expenses := make([]models.Expense, len(crop.Expenses))
	copy(expenses, crop.Expenses)
	crop.Expenses = expenses
	return crop
}
