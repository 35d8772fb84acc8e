// internal/domain/catalog/entity.go
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ProductID is the product identifier. The upstream catalog sends numeric
// ids; they are kept as their decimal text.
type ProductID string

// UnmarshalJSON accepts a JSON string or number
func (id *ProductID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ProductID(s)
		return nil
	}

	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid product id %s: %w", data, err)
	}
	*id = ProductID(n.String())
	return nil
}

// Product is a read-only catalog entry
type Product struct {
	ID        ProductID `json:"id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`
	Thumbnail string    `json:"thumbnail"`
}

// Status is the loader lifecycle position
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusErrored Status = "errored"
)

// State is a snapshot of the catalog
type State struct {
	Products  []Product `json:"products"`
	Status    Status    `json:"status"`
	IsLoading bool      `json:"is_loading"`
	Error     string    `json:"error,omitempty"`
}

// ProductsResponse is the upstream payload
type ProductsResponse struct {
	Products *[]Product `json:"products"`
}
