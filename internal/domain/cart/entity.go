// internal/domain/cart/entity.go
package cart

import "time"

// DefaultTaxRate is the flat tax applied on top of the subtotal
const DefaultTaxRate = 0.18

// CartItem is one product line in a cart. Quantity is always >= 1.
type CartItem struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// ItemPayload carries the product fields needed to add a line
type ItemPayload struct {
	ID    string  `json:"id" binding:"required"`
	Title string  `json:"title" binding:"required"`
	Price float64 `json:"price" binding:"gte=0"`
}

// State is the whole cart. Items keep first-add order.
type State struct {
	Items []CartItem `json:"items"`
}

// CartTotals represents calculated cart totals
type CartTotals struct {
	ItemCount     int     `json:"item_count"`     // Number of unique items
	TotalQuantity int     `json:"total_quantity"` // Sum of all quantities
	SubTotal      float64 `json:"sub_total"`
	TaxRate       float64 `json:"tax_rate"`
	TaxAmount     float64 `json:"tax_amount"`
	TotalAmount   float64 `json:"total_amount"`
}

// DisplayTotals are CartTotals rounded to two decimals for presentation
type DisplayTotals struct {
	SubTotal    string `json:"sub_total"`
	TaxAmount   string `json:"tax_amount"`
	TotalAmount string `json:"total_amount"`
}

// CartItemRecord is a persisted cart line for the database-backed repository
type CartItemRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"not null;size:64;index:idx_cart_items_session_position,priority:1" json:"session_id"`
	Position  int       `gorm:"not null;index:idx_cart_items_session_position,priority:2" json:"position"`
	ItemID    string    `gorm:"not null;size:64" json:"item_id"`
	Title     string    `gorm:"not null;size:255" json:"title"`
	Price     float64   `gorm:"not null" json:"price"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (CartItemRecord) TableName() string {
	return "cart_items"
}
