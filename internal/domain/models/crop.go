package models

import "strings"

// Expense is one recorded outlay against a crop. The id token is generated at
// creation time and stays stable for the lifetime of the crop record, but it
// is informational only: edit and delete address entries by position.
type Expense struct {
	ID     string  `bson:"id" json:"id"`
	Amount float64 `bson:"amount" json:"amount"`
	Bill   string  `bson:"bill" json:"bill"`
}

// Crop is a single planted-crop record with its embedded financial ledger.
// All descriptive fields are free-form strings stored verbatim; no numeric or
// date parsing happens at write time. Field names match the documents already
// present in the crops collection.
type Crop struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Notes         string    `bson:"notes" json:"notes"`
	Season        string    `bson:"season" json:"season"`
	Area          string    `bson:"area" json:"area"`
	Variety       string    `bson:"variety" json:"variety"`
	SowingDate    string    `bson:"sowingDate" json:"sowingDate"`
	HarvestDate   string    `bson:"harvestDate" json:"harvestDate"`
	Fertilizer    string    `bson:"fertilizer" json:"fertilizer"`
	Pesticide     string    `bson:"pesticide" json:"pesticide"`
	ExpectedYield string    `bson:"expectedYield" json:"expectedYield"`
	MarketPrice   string    `bson:"marketPrice" json:"marketPrice"`
	Expenses      []Expense `bson:"expenses" json:"expenses"`
	Income        float64   `bson:"income" json:"income"`
}

// TotalExpenses sums the amounts of the current expense sequence. The total is
// always derived; it is never stored alongside the crop document.
func (c Crop) TotalExpenses() float64 {
	var total float64
	for _, e := range c.Expenses {
		total += e.Amount
	}
	return total
}

// Profit is income minus total expenses, computed fresh on every call.
func (c Crop) Profit() float64 {
	return c.Income - c.TotalExpenses()
}

// ProfitLabel maps a profit figure to its display label. Zero counts as
// profit, not loss.
func ProfitLabel(profit float64) string {
	if profit >= 0 {
		return "Profit"
	}
	return "Loss"
}

// Validate checks the locally enforced constraints before any store call.
func (c Crop) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCropName
	}
	return nil
}
