// Package memory is an in-memory document store used for development and
// tests. It honors the same snapshot contract as the MongoDB store: every
// mutation of the crop collection pushes a fresh full snapshot to each
// subscriber, and a stale pending snapshot is replaced by the newest.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/kisanseva/kisanseva/internal/domain/models"
	"github.com/kisanseva/kisanseva/internal/repository/docstore"
)

// Store is guarded by an RWMutex for concurrent reads and writes. Crops keep
// insertion order, matching the natural order of the real collection.
type Store struct {
	mu        sync.RWMutex
	crops     []models.Crop
	nextID    int
	subs      map[int]chan []models.Crop
	nextSub   int
	schemes   []models.Scheme
	alerts    []models.WeatherAlert
	profiles  map[string]models.Profile
	summaries []models.DailySummary
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{
		subs:     make(map[int]chan []models.Crop),
		profiles: make(map[string]models.Profile),
	}
}

// Seed helpers for local dev/tests.
func (s *Store) SeedSchemes(schemes []models.Scheme) {
	s.mu.Lock()
	s.schemes = schemes
	s.mu.Unlock()
}

func (s *Store) SeedAlerts(alerts []models.WeatherAlert) {
	s.mu.Lock()
	s.alerts = alerts
	s.mu.Unlock()
}

// Snapshots registers a subscriber and delivers the current snapshot
// immediately. The channel closes when ctx is done.
func (s *Store) Snapshots(ctx context.Context) (<-chan []models.Crop, error) {
	ch := make(chan []models.Crop, 1)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	ch <- cloneCrops(s.crops)
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		close(ch)
		s.mu.Unlock()
	}()

	return ch, nil
}

// broadcast pushes the current snapshot to every subscriber, replacing any
// pending stale one. Callers must hold the write lock.
func (s *Store) broadcast() {
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- cloneCrops(s.crops)
	}
}

// CreateCrop appends a crop with a generated id and notifies subscribers.
func (s *Store) CreateCrop(_ context.Context, crop models.Crop) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	crop.ID = fmt.Sprintf("crop-%d", s.nextID)
	if crop.Expenses == nil {
		crop.Expenses = []models.Expense{}
	}
	s.crops = append(s.crops, crop)
	s.broadcast()
	return crop.ID, nil
}

// UpdateCropLedger rewrites the expense sequence and income of one crop.
// Updating a missing id is ignored, like the real store.
func (s *Store) UpdateCropLedger(_ context.Context, id string, expenses []models.Expense, income float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.crops {
		if s.crops[i].ID == id {
			s.crops[i].Expenses = cloneExpenses(expenses)
			s.crops[i].Income = income
			s.broadcast()
			return nil
		}
	}
	return nil
}

// UpdateCropExpenses rewrites only the expense sequence of one crop.
func (s *Store) UpdateCropExpenses(_ context.Context, id string, expenses []models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.crops {
		if s.crops[i].ID == id {
			s.crops[i].Expenses = cloneExpenses(expenses)
			s.broadcast()
			return nil
		}
	}
	return nil
}

// DeleteCrop removes a crop; deleting a missing id is not an error.
func (s *Store) DeleteCrop(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.crops {
		if s.crops[i].ID == id {
			s.crops = append(s.crops[:i], s.crops[i+1:]...)
			s.broadcast()
			return nil
		}
	}
	return nil
}

// ListSchemes implements docstore.SchemeStore.
func (s *Store) ListSchemes(_ context.Context) ([]models.Scheme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Scheme(nil), s.schemes...), nil
}

// ListAlerts implements docstore.AlertStore.
func (s *Store) ListAlerts(_ context.Context) ([]models.WeatherAlert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.WeatherAlert(nil), s.alerts...), nil
}

// GetProfile implements docstore.ProfileStore.
func (s *Store) GetProfile(_ context.Context, uid string) (models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[uid]
	if !ok {
		return models.Profile{}, docstore.ErrProfileNotFound
	}
	return profile, nil
}

// UpsertProfile implements docstore.ProfileStore.
func (s *Store) UpsertProfile(_ context.Context, profile models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.UID] = profile
	return nil
}

// SaveDailySummary implements docstore.SummaryStore.
func (s *Store) SaveDailySummary(_ context.Context, summary models.DailySummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries = append(s.summaries, summary)
	return nil
}

// Summaries returns the stored summaries, for tests.
func (s *Store) Summaries() []models.DailySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.DailySummary(nil), s.summaries...)
}

func cloneCrops(crops []models.Crop) []models.Crop {
	out := make([]models.Crop, len(crops))
	for i, c := range crops {
		c.Expenses = cloneExpenses(c.Expenses)
		out[i] = c
	}
	return out
}

func cloneExpenses(expenses []models.Expense) []models.Expense {
	if expenses == nil {
		return []models.Expense{}
	}
	return append([]models.Expense(nil), expenses...)
}
