package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kisanseva/kisanseva/internal/domain/models"
)

func TestBuildSummary(t *testing.T) {
	now := time.Date(2026, 8, 31, 20, 0, 3, 0, time.UTC)

	crops := []models.Crop{
		{
			ID:       "crop-1",
			Income:   1000,
			Expenses: []models.Expense{{Amount: 200}, {Amount: 50}},
		},
		{
			ID:     "crop-2",
			Income: 300,
		},
	}

	summary := BuildSummary(crops, now)

	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), summary.Date)
	assert.Equal(t, 2, summary.CropCount)
	assert.InDelta(t, 1300.0, summary.TotalIncome, 1e-9)
	assert.InDelta(t, 250.0, summary.TotalExpenses, 1e-9)
	assert.InDelta(t, 1050.0, summary.Profit, 1e-9)
	assert.Equal(t, now, summary.CreatedAt)
}

func TestBuildSummaryEmptyLedger(t *testing.T) {
	summary := BuildSummary(nil, time.Now().UTC())
	assert.Zero(t, summary.CropCount)
	assert.Zero(t, summary.TotalIncome)
	assert.Zero(t, summary.Profit)
}
