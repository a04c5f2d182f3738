// Package docstore declares the document-store operations the services
// consume. MongoDB backs production; the memory implementation backs tests
// and local development.
package docstore

import (
	"context"

	"github.com/kisanseva/kisanseva/internal/domain/models"
)

// CropStore persists crop documents and exposes a live snapshot feed.
//
// Snapshots delivers the full current crop collection after every change,
// never an incremental patch. Consumers replace their state wholesale on each
// delivery. The channel is closed when ctx is done or the feed fails.
type CropStore interface {
	Snapshots(ctx context.Context) (<-chan []models.Crop, error)
	CreateCrop(ctx context.Context, crop models.Crop) (string, error)
	// UpdateCropLedger rewrites the full expense sequence and the income
	// scalar together in one update. The store offers no array-splice
	// semantics, so callers always read-modify-write the whole array.
	UpdateCropLedger(ctx context.Context, id string, expenses []models.Expense, income float64) error
	// UpdateCropExpenses rewrites only the expense sequence, leaving income
	// untouched.
	UpdateCropExpenses(ctx context.Context, id string, expenses []models.Expense) error
	// DeleteCrop removes the document. Deleting an id that no longer exists
	// is not an error.
	DeleteCrop(ctx context.Context, id string) error
}

// SchemeStore reads the government scheme collection once per request.
type SchemeStore interface {
	ListSchemes(ctx context.Context) ([]models.Scheme, error)
}

// AlertStore reads cloud-managed weather alerts.
type AlertStore interface {
	ListAlerts(ctx context.Context) ([]models.WeatherAlert, error)
}

// ProfileStore reads and updates farmer profiles keyed by the auth uid.
type ProfileStore interface {
	GetProfile(ctx context.Context, uid string) (models.Profile, error)
	UpsertProfile(ctx context.Context, profile models.Profile) error
}

// SummaryStore persists scheduled ledger summaries.
type SummaryStore interface {
	SaveDailySummary(ctx context.Context, summary models.DailySummary) error
}
