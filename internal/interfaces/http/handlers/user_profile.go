// internal/interfaces/http/handlers/user_profile.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/user"
)

// ProfileHandler handles the session account's profile
type ProfileHandler struct {
	userService *user.Service
	logger      *logrus.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(userService *user.Service, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
		logger:      logger,
	}
}

// GetProfile handles GET /auth/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	u, err := h.userService.Current(c.Request.Context(), sessionID(c))
	if err != nil {
		internalError(c, h.logger, "Failed to retrieve profile", err)
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": user.ErrNoUserRegistered.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile retrieved successfully",
		"data":    u.Profile(),
	})
}

// UpdateProfile handles PUT /auth/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req user.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	u, err := h.userService.Edit(c.Request.Context(), sessionID(c), &req)
	if err != nil {
		authError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"data":    u.Profile(),
	})
}
