// internal/interfaces/http/middleware/auth.go
package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LoginChecker reports whether a session's account is logged in
type LoginChecker interface {
	IsLoggedIn(ctx context.Context, sessionID string) (bool, error)
}

// RequireLogin lets a request through only when the session's user is logged in
func RequireLogin(checker LoginChecker, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := GetSessionIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			return
		}

		loggedIn, err := checker.IsLoggedIn(c.Request.Context(), sessionID)
		if err != nil {
			logger.WithError(err).WithField("session_id", sessionID).Error("Failed to check login state")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to check login state",
			})
			return
		}

		if !loggedIn {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			return
		}

		c.Next()
	}
}
