package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotals(t *testing.T) {
	t.Run("single widget", func(t *testing.T) {
		s := AddItem(State{}, widget)
		totals := CalculateTotals(s, DefaultTaxRate)

		assert.Equal(t, 1, totals.ItemCount)
		assert.Equal(t, 1, totals.TotalQuantity)
		assert.Equal(t, 100.0, totals.SubTotal)
		assert.InDelta(t, 18.0, totals.TaxAmount, 1e-9)
		assert.InDelta(t, 118.0, totals.TotalAmount, 1e-9)

		display := totals.Display()
		assert.Equal(t, "100.00", display.SubTotal)
		assert.Equal(t, "18.00", display.TaxAmount)
		assert.Equal(t, "118.00", display.TotalAmount)
	})

	t.Run("sum of price times quantity", func(t *testing.T) {
		s := State{Items: []CartItem{
			{ID: "A", Title: "A", Price: 9.99, Quantity: 3},
			{ID: "B", Title: "B", Price: 0.1, Quantity: 7},
			{ID: "C", Title: "C", Price: 1299.5, Quantity: 1},
		}}

		var want float64
		for _, item := range s.Items {
			want += item.Price * float64(item.Quantity)
		}
		totals := CalculateTotals(s, DefaultTaxRate)

		assert.Equal(t, want, totals.SubTotal)
		assert.Equal(t, want*0.18, totals.TaxAmount)
		assert.Equal(t, want+want*0.18, totals.TotalAmount)
		assert.Equal(t, 11, totals.TotalQuantity)
		assert.Equal(t, 3, totals.ItemCount)
	})

	t.Run("empty cart", func(t *testing.T) {
		totals := CalculateTotals(State{}, DefaultTaxRate)
		assert.Zero(t, totals.SubTotal)
		assert.Zero(t, totals.TotalAmount)
		assert.Equal(t, "0.00", totals.Display().TotalAmount)
	})
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "0.00"},
		{18, "18.00"},
		{1.5, "1.50"},
		{3.14159, "3.14"},
		{2.675, "2.68"},
		{1234567.891, "1234567.89"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(tt.amount))
	}
}
