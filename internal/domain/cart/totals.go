// internal/domain/cart/totals.go
package cart

import "github.com/shopspring/decimal"

// CalculateTotals derives subtotal, tax and total from the cart lines.
// Arithmetic stays in float64; rounding only happens in Display.
func CalculateTotals(s State, taxRate float64) CartTotals {
	totals := CartTotals{
		ItemCount: len(s.Items),
		TaxRate:   taxRate,
	}

	for _, item := range s.Items {
		totals.TotalQuantity += item.Quantity
		totals.SubTotal += item.Price * float64(item.Quantity)
	}

	totals.TaxAmount = totals.SubTotal * taxRate
	totals.TotalAmount = totals.SubTotal + totals.TaxAmount

	return totals
}

// Display rounds the totals to two decimals
func (t CartTotals) Display() DisplayTotals {
	return DisplayTotals{
		SubTotal:    FormatAmount(t.SubTotal),
		TaxAmount:   FormatAmount(t.TaxAmount),
		TotalAmount: FormatAmount(t.TotalAmount),
	}
}

// FormatAmount renders an amount with exactly two decimals
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}
