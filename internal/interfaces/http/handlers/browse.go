// internal/interfaces/http/handlers/browse.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/listing"
)

// BrowseHandler handles the per-session filter and pagination state
type BrowseHandler struct {
	listingService *listing.Service
	logger         *logrus.Logger
}

// NewBrowseHandler creates a new browse handler
func NewBrowseHandler(listingService *listing.Service, logger *logrus.Logger) *BrowseHandler {
	return &BrowseHandler{
		listingService: listingService,
		logger:         logger,
	}
}

// GetBrowse handles GET /browse
func (h *BrowseHandler) GetBrowse(c *gin.Context) {
	resp, err := h.listingService.Get(c.Request.Context(), sessionID(c))
	h.respond(c, "Browse state retrieved successfully", resp, err)
}

// UpdateFilter handles PUT /browse/filter
func (h *BrowseHandler) UpdateFilter(c *gin.Context) {
	var req listing.FilterUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	resp, err := h.listingService.UpdateFilter(c.Request.Context(), sessionID(c), req)
	h.respond(c, "Filters updated successfully", resp, err)
}

// NextPage handles POST /browse/next
func (h *BrowseHandler) NextPage(c *gin.Context) {
	resp, err := h.listingService.Next(c.Request.Context(), sessionID(c))
	h.respond(c, "Moved to next page", resp, err)
}

// PreviousPage handles POST /browse/previous
func (h *BrowseHandler) PreviousPage(c *gin.Context) {
	resp, err := h.listingService.Previous(c.Request.Context(), sessionID(c))
	h.respond(c, "Moved to previous page", resp, err)
}

// GoToPage handles PUT /browse/page/:page
func (h *BrowseHandler) GoToPage(c *gin.Context) {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid page number",
		})
		return
	}

	resp, err := h.listingService.GoTo(c.Request.Context(), sessionID(c), page)
	h.respond(c, "Moved to page", resp, err)
}

func (h *BrowseHandler) respond(c *gin.Context, message string, resp *listing.BrowseResponse, err error) {
	if errors.Is(err, listing.ErrInvalidPageSize) {
		invalidRequest(c, err)
		return
	}
	if err != nil {
		internalError(c, h.logger, "Failed to update browse state", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    resp,
	})
}
