package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/kisanseva/kisanseva/internal/config"
	"github.com/kisanseva/kisanseva/internal/domain/models"
	"github.com/kisanseva/kisanseva/internal/repository/docstore"
	"github.com/kisanseva/kisanseva/internal/repository/sheets"
	"github.com/kisanseva/kisanseva/internal/service/ledger"
)

const dateLayout = "2006-01-02"

// Scheduler runs the daily ledger summary job.
type Scheduler struct {
	cron      *cron.Cron
	ledgerSvc *ledger.Service
	summaries docstore.SummaryStore
	exporter  sheets.Exporter
	cfg       config.ReportingConfig
	logger    *zap.Logger
}

// NewScheduler creates a new scheduler instance. The exporter may be nil when
// the spreadsheet sink is not configured.
func NewScheduler(cfg config.ReportingConfig, ledgerSvc *ledger.Service, summaries docstore.SummaryStore, exporter sheets.Exporter, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:      cron.New(),
		ledgerSvc: ledgerSvc,
		summaries: summaries,
		exporter:  exporter,
		cfg:       cfg,
		logger:    logger,
	}
}

// Start registers the summary job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runDailySummary); err != nil {
		s.logger.Error("failed to schedule daily summary", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runDailySummary() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	now := time.Now().UTC()
	summary := BuildSummary(s.ledgerSvc.Crops(), now)

	if err := s.summaries.SaveDailySummary(ctx, summary); err != nil {
		s.logger.Error("failed to save daily summary", zap.Error(err))
		return
	}

	if s.exporter != nil {
		row := []interface{}{
			summary.Date.Format(dateLayout),
			summary.CropCount,
			summary.TotalIncome,
			summary.TotalExpenses,
			summary.Profit,
			models.ProfitLabel(summary.Profit),
		}
		if err := s.exporter.AppendRow(ctx, s.cfg.SummaryRange, row); err != nil {
			s.logger.Error("failed to append summary row", zap.Error(err))
			return
		}
	}

	s.logger.Info("daily summary recorded",
		zap.Int("crops", summary.CropCount),
		zap.Float64("profit", summary.Profit))
}

// BuildSummary aggregates the ledger across all crops using the same derived
// metrics as every other presentation site.
func BuildSummary(crops []models.Crop, now time.Time) models.DailySummary {
	summary := models.DailySummary{
		Date:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		CropCount: len(crops),
		CreatedAt: now,
	}

	for _, crop := range crops {
		summary.TotalIncome += crop.Income
		summary.TotalExpenses += crop.TotalExpenses()
	}
	summary.Profit = summary.TotalIncome - summary.TotalExpenses

	return summary
}
