// internal/interfaces/http/handlers/product.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/listing"
)

// ProductHandler serves the catalog and stateless product queries
type ProductHandler struct {
	catalog        listing.CatalogReader
	listingService *listing.Service
	logger         *logrus.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(reader listing.CatalogReader, listingService *listing.Service, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		catalog:        reader,
		listingService: listingService,
		logger:         logger,
	}
}

// GetCatalog handles GET /catalog
func (h *ProductHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Catalog retrieved successfully",
		"data":    h.catalog.State(),
	})
}

// GetProducts handles GET /products?search=&category=&page_size=&page=
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := listing.SearchParams{
		Search:   c.Query("search"),
		Category: c.DefaultQuery("category", listing.AllCategories),
	}

	var err error
	if params.PageSize, err = queryInt(c, "page_size"); err != nil {
		invalidRequest(c, err)
		return
	}
	if c.Query("page_size") != "" && params.PageSize <= 0 {
		invalidRequest(c, listing.ErrInvalidPageSize)
		return
	}
	if params.Page, err = queryInt(c, "page"); err != nil {
		invalidRequest(c, err)
		return
	}

	resp, err := h.listingService.Search(params)
	if errors.Is(err, listing.ErrInvalidPageSize) {
		invalidRequest(c, err)
		return
	}
	if err != nil {
		internalError(c, h.logger, "Failed to retrieve products", err)
		return
	}

	if resp.Status == catalog.StatusErrored {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": resp.Error,
			"data":  resp,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    resp,
	})
}

// GetCategories handles GET /products/categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	state := h.catalog.State()
	if state.Status == catalog.StatusErrored {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": state.Error,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data": gin.H{
			"status":     state.Status,
			"categories": listing.Categories(state.Products),
		},
	})
}

// queryInt parses an optional integer query parameter; absent means 0
func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid " + key)
	}
	return n, nil
}
