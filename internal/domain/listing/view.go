// internal/domain/listing/view.go
package listing

import "github.com/your-org/storefront/internal/domain/catalog"

// View is everything a product page renders, derived from the catalog and a FilterState
type View struct {
	Categories    []string          `json:"categories"`
	Filter        FilterState       `json:"filter"`
	FilteredCount int               `json:"filtered_count"`
	TotalPages    int               `json:"total_pages"`
	HasNext       bool              `json:"has_next"`
	HasPrev       bool              `json:"has_prev"`
	Products      []catalog.Product `json:"products"`
	Empty         bool              `json:"empty"`
	EmptyMessage  string            `json:"empty_message,omitempty"`
}

// Derive computes the view for f over products
func Derive(products []catalog.Product, f FilterState) View {
	filtered := Filter(products, f)
	totalPages := TotalPages(len(filtered), f.PageSize)

	view := View{
		Categories:    Categories(products),
		Filter:        f,
		FilteredCount: len(filtered),
		TotalPages:    totalPages,
		HasNext:       f.CurrentPage < totalPages,
		HasPrev:       f.CurrentPage > 1,
		Products:      Page(filtered, f.CurrentPage, f.PageSize),
	}

	if len(filtered) == 0 {
		view.Empty = true
		view.EmptyMessage = EmptyMessage
	}
	return view
}
