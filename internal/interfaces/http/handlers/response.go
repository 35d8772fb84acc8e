// internal/interfaces/http/handlers/response.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// sessionID returns the id set by the session middleware
func sessionID(c *gin.Context) string {
	id, _ := middleware.GetSessionIDFromContext(c)
	return id
}

func invalidRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request data",
		"details": err.Error(),
	})
}

func internalError(c *gin.Context, logger *logrus.Logger, message string, err error) {
	logger.WithError(err).WithFields(logrus.Fields{
		"request_id": c.GetString(middleware.RequestIDKey),
		"session_id": sessionID(c),
	}).Error(message)

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": message,
	})
}

// authError maps user service failures to HTTP responses
func authError(c *gin.Context, logger *logrus.Logger, err error) {
	var verr *user.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": verr.Messages,
		})
	case errors.Is(err, user.ErrEmailExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, user.ErrNoUserRegistered),
		errors.Is(err, user.ErrEmailNotFound),
		errors.Is(err, user.ErrIncorrectPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, user.ErrNoUserToUpdate):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		internalError(c, logger, "Failed to process account request", err)
	}
}
