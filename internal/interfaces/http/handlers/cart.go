// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/cart"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
	logger      *logrus.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	cartResponse, err := h.cartService.GetCart(c.Request.Context(), sessionID(c))
	if err != nil {
		internalError(c, h.logger, "Failed to retrieve cart", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    cartResponse,
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req cart.ItemPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	cartResponse, err := h.cartService.AddItem(c.Request.Context(), sessionID(c), req)
	if err != nil {
		internalError(c, h.logger, "Failed to add item to cart", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    cartResponse,
	})
}

// DecreaseCartItem handles POST /cart/items/:id/decrease
func (h *CartHandler) DecreaseCartItem(c *gin.Context) {
	cartResponse, err := h.cartService.DecreaseItemQuantity(c.Request.Context(), sessionID(c), c.Param("id"))
	if err != nil {
		internalError(c, h.logger, "Failed to update cart item", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    cartResponse,
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	cartResponse, err := h.cartService.RemoveItem(c.Request.Context(), sessionID(c), c.Param("id"))
	if err != nil {
		internalError(c, h.logger, "Failed to remove item from cart", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    cartResponse,
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	cartResponse, err := h.cartService.ClearCart(c.Request.Context(), sessionID(c))
	if err != nil {
		internalError(c, h.logger, "Failed to clear cart", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    cartResponse,
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	count, err := h.cartService.GetCartItemCount(c.Request.Context(), sessionID(c))
	if err != nil {
		internalError(c, h.logger, "Failed to get cart count", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": count,
		},
	})
}

// Checkout handles POST /cart/checkout. Nothing is charged and the cart is kept.
func (h *CartHandler) Checkout(c *gin.Context) {
	cartResponse, err := h.cartService.Checkout(c.Request.Context(), sessionID(c))
	if errors.Is(err, cart.ErrEmptyCart) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cart is empty",
		})
		return
	}
	if err != nil {
		internalError(c, h.logger, "Failed to checkout", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout completed",
		"data":    cartResponse,
	})
}
