package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/kisanseva/kisanseva/internal/domain/models"
)

const naPlaceholder = "N/A"

// Renderer turns a structured crop report into a shareable file and returns
// its path. Rendering is all-or-nothing: on failure no file path is returned.
type Renderer interface {
	Render(ctx context.Context, report models.CropReport) (string, error)
}

// Service assembles crop reports and hands them to the configured renderer.
type Service struct {
	renderer Renderer
	logger   *zap.Logger
}

// NewService wires a new report service instance.
func NewService(renderer Renderer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{renderer: renderer, logger: logger}
}

// Build produces the deterministic report structure for one crop. The field
// content and ordering are the interoperability contract: descriptive fields
// first (each "value or N/A"), then income, then the 1-based expense table,
// then the derived summary computed by the shared crop methods.
func Build(crop models.Crop) models.CropReport {
	fields := []models.ReportField{
		{Label: "Notes", Value: valueOrNA(crop.Notes)},
		{Label: "Season", Value: valueOrNA(crop.Season)},
		{Label: "Area", Value: valueOrNA(crop.Area)},
		{Label: "Variety", Value: valueOrNA(crop.Variety)},
		{Label: "Sowing Date", Value: valueOrNA(crop.SowingDate)},
		{Label: "Harvest Date", Value: valueOrNA(crop.HarvestDate)},
		{Label: "Fertilizer", Value: valueOrNA(crop.Fertilizer)},
		{Label: "Pesticide", Value: valueOrNA(crop.Pesticide)},
		{Label: "Expected Yield", Value: valueOrNA(crop.ExpectedYield)},
		{Label: "Market Price", Value: valueOrNA(crop.MarketPrice)},
		{Label: "Income", Value: formatMoney(crop.Income)},
	}

	rows := make([]models.ReportExpenseRow, 0, len(crop.Expenses))
	for i, expense := range crop.Expenses {
		bill := expense.Bill
		if bill == "" {
			bill = naPlaceholder
		}
		rows = append(rows, models.ReportExpenseRow{
			Number: i + 1,
			Amount: formatMoney(expense.Amount),
			Bill:   bill,
		})
	}

	profit := crop.Profit()

	return models.CropReport{
		Title:         "Crop Report - " + crop.Name,
		CropName:      crop.Name,
		Fields:        fields,
		Expenses:      rows,
		TotalExpenses: formatMoney(crop.TotalExpenses()),
		Profit:        formatMoney(profit),
		ProfitLabel:   models.ProfitLabel(profit),
	}
}

// Export builds the report for a crop and renders it to a file.
func (s *Service) Export(ctx context.Context, crop models.Crop) (string, error) {
	report := Build(crop)

	path, err := s.renderer.Render(ctx, report)
	if err != nil {
		return "", fmt.Errorf("render report for crop %s: %w", crop.ID, err)
	}

	s.logger.Info("crop report exported", zap.String("crop_id", crop.ID), zap.String("path", path))
	return path, nil
}

func valueOrNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return naPlaceholder
	}
	return value
}

func formatMoney(amount float64) string {
	return models.CurrencySymbol + strconv.FormatFloat(amount, 'f', 2, 64)
}
