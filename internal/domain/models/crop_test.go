package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalExpenses(t *testing.T) {
	t.Run("sums all amounts", func(t *testing.T) {
		crop := Crop{Expenses: []Expense{
			{ID: "a", Amount: 120.50},
			{ID: "b", Amount: 79.50},
			{ID: "c", Amount: 300},
		}}
		assert.InDelta(t, 500.0, crop.TotalExpenses(), 1e-9)
	})

	t.Run("empty ledger sums to zero", func(t *testing.T) {
		assert.Zero(t, Crop{}.TotalExpenses())
		assert.Zero(t, Crop{Expenses: []Expense{}}.TotalExpenses())
	})
}

func TestProfit(t *testing.T) {
	crop := Crop{
		Income:   1000,
		Expenses: []Expense{{Amount: 400}, {Amount: 250}},
	}
	assert.InDelta(t, 350.0, crop.Profit(), 1e-9)

	crop.Income = 500
	assert.InDelta(t, -150.0, crop.Profit(), 1e-9)
}

func TestProfitLabel(t *testing.T) {
	assert.Equal(t, "Profit", ProfitLabel(42))
	assert.Equal(t, "Profit", ProfitLabel(0))
	assert.Equal(t, "Loss", ProfitLabel(-0.01))
}

func TestCropValidate(t *testing.T) {
	require.NoError(t, Crop{Name: "Wheat"}.Validate())

	err := Crop{Name: "   "}.Validate()
	require.ErrorIs(t, err, ErrEmptyCropName)
}
