// internal/domain/listing/filter.go
package listing

import (
	"errors"
	"strings"

	"github.com/your-org/storefront/internal/domain/catalog"
)

// AllCategories is the category selection meaning "no restriction"
const AllCategories = "all"

// EmptyMessage is shown when no product matches the filters
const EmptyMessage = "No Product found, try resetting your filters!"

// ErrInvalidPageSize is returned for page sizes below 1
var ErrInvalidPageSize = errors.New("page size must be positive")

// FilterState is the user's browse selection. Filtered products and page
// counts are always derived from it, never stored.
type FilterState struct {
	SearchText       string `json:"search_text"`
	SelectedCategory string `json:"selected_category"`
	PageSize         int    `json:"page_size"`
	CurrentPage      int    `json:"current_page"`
}

// NewFilterState returns the initial selection for pageSize
func NewFilterState(pageSize int) FilterState {
	return FilterState{
		SelectedCategory: AllCategories,
		PageSize:         pageSize,
		CurrentPage:      1,
	}
}

// SetSearch applies search text; a change goes back to page 1
func (f FilterState) SetSearch(text string) FilterState {
	if text == f.SearchText {
		return f
	}
	f.SearchText = text
	f.CurrentPage = 1
	return f
}

// SetCategory applies a category selection; a change goes back to page 1
func (f FilterState) SetCategory(category string) FilterState {
	if category == "" {
		category = AllCategories
	}
	if category == f.SelectedCategory {
		return f
	}
	f.SelectedCategory = category
	f.CurrentPage = 1
	return f
}

// SetPageSize applies a page size; a change goes back to page 1
func (f FilterState) SetPageSize(size int) (FilterState, error) {
	if size <= 0 {
		return f, ErrInvalidPageSize
	}
	if size == f.PageSize {
		return f, nil
	}
	f.PageSize = size
	f.CurrentPage = 1
	return f, nil
}

// Next moves forward one page, never past totalPages
func (f FilterState) Next(totalPages int) FilterState {
	if f.CurrentPage+1 > totalPages {
		return f
	}
	f.CurrentPage++
	return f
}

// Previous moves back one page, never below 1
func (f FilterState) Previous() FilterState {
	if f.CurrentPage <= 1 {
		f.CurrentPage = 1
		return f
	}
	f.CurrentPage--
	return f
}

// GoTo jumps to page, clamped into [1, max(totalPages, 1)]
func (f FilterState) GoTo(page, totalPages int) FilterState {
	upper := totalPages
	if upper < 1 {
		upper = 1
	}
	switch {
	case page < 1:
		page = 1
	case page > upper:
		page = upper
	}
	f.CurrentPage = page
	return f
}

// Categories returns "all" followed by each distinct category in first-seen order
func Categories(products []catalog.Product) []string {
	categories := []string{AllCategories}
	seen := map[string]struct{}{AllCategories: {}}

	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

// Matches reports whether p passes the search and category filters
func Matches(p catalog.Product, searchText, category string) bool {
	if !strings.Contains(strings.ToLower(p.Title), strings.ToLower(searchText)) {
		return false
	}
	if category != AllCategories && p.Category != category {
		return false
	}
	return true
}

// Filter returns the products passing f's search and category filters, in catalog order
func Filter(products []catalog.Product, f FilterState) []catalog.Product {
	filtered := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if Matches(p, f.SearchText, f.SelectedCategory) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// TotalPages is ceil(count / pageSize); 0 when there is nothing to show
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// Page returns the slice of items for the 1-based page
func Page(items []catalog.Product, page, pageSize int) []catalog.Product {
	if page < 1 || pageSize <= 0 {
		return []catalog.Product{}
	}

	start := clamp((page-1)*pageSize, 0, len(items))
	end := clamp(start+pageSize, start, len(items))
	return items[start:end]
}

func clamp(value, lower, upper int) int {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
