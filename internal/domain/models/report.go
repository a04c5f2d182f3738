package models

import "time"

// CurrencySymbol is the single currency marker used across every rendered
// amount. No locale-aware formatting happens anywhere in this service.
const CurrencySymbol = "₹"

// ReportField is one labelled row of the crop report's detail table.
type ReportField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ReportExpenseRow is one row of the report's expense table. Number is
// 1-based, Amount is already formatted to two decimals with the currency
// marker, Bill carries the opaque image reference or "N/A".
type ReportExpenseRow struct {
	Number int    `json:"number"`
	Amount string `json:"amount"`
	Bill   string `json:"bill"`
}

// CropReport is the complete structural representation handed to a renderer.
// Field content and ordering are the contract; the markup produced from it is
// the renderer's business.
type CropReport struct {
	Title         string             `json:"title"`
	CropName      string             `json:"cropName"`
	Fields        []ReportField      `json:"fields"`
	Expenses      []ReportExpenseRow `json:"expenses"`
	TotalExpenses string             `json:"totalExpenses"`
	Profit        string             `json:"profit"`
	ProfitLabel   string             `json:"profitLabel"`
}

// DailySummary aggregates the ledger across all crops for the scheduled
// report, stored in the daily_summaries collection.
type DailySummary struct {
	Date          time.Time `bson:"date" json:"date"`
	CropCount     int       `bson:"crop_count" json:"crop_count"`
	TotalIncome   float64   `bson:"total_income" json:"total_income"`
	TotalExpenses float64   `bson:"total_expenses" json:"total_expenses"`
	Profit        float64   `bson:"profit" json:"profit"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
