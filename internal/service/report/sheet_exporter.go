package report

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kisanseva/kisanseva/internal/domain/models"
	"github.com/kisanseva/kisanseva/internal/repository/sheets"
)

// SheetExporter appends a crop report to the configured spreadsheet as one
// contiguous block of rows.
type SheetExporter struct {
	sink       sheets.Exporter
	sheetRange string
	logger     *zap.Logger
}

// NewSheetExporter wires a spreadsheet export path for crop reports.
func NewSheetExporter(sink sheets.Exporter, sheetRange string, logger *zap.Logger) *SheetExporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SheetExporter{sink: sink, sheetRange: sheetRange, logger: logger}
}

// Export builds the report for a crop and appends its rows to the sheet.
func (e *SheetExporter) Export(ctx context.Context, crop models.Crop) error {
	rows := sheetRows(Build(crop))

	if err := e.sink.AppendRows(ctx, e.sheetRange, rows); err != nil {
		return fmt.Errorf("append report for crop %s: %w", crop.ID, err)
	}

	e.logger.Info("crop report appended to sheet", zap.String("crop_id", crop.ID), zap.Int("rows", len(rows)))
	return nil
}

// sheetRows flattens a report into spreadsheet rows: the title, the detail
// table, the expense table with its header, then the derived summary.
func sheetRows(report models.CropReport) [][]interface{} {
	rows := [][]interface{}{{report.Title}}

	for _, field := range report.Fields {
		rows = append(rows, []interface{}{field.Label, field.Value})
	}

	rows = append(rows, []interface{}{"#", "Amount", "Bill"})
	if len(report.Expenses) == 0 {
		rows = append(rows, []interface{}{"No Expenses"})
	}
	for _, expense := range report.Expenses {
		rows = append(rows, []interface{}{expense.Number, expense.Amount, expense.Bill})
	}

	rows = append(rows,
		[]interface{}{"Total Expenses", report.TotalExpenses},
		[]interface{}{report.ProfitLabel, report.Profit})

	return rows
}
