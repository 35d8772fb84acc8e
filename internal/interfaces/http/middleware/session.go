// internal/interfaces/http/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/storefront/internal/config"
)

// SessionIDKey is the gin context key holding the browser session id
const SessionIDKey = "session_id"

// Session reads the session cookie, issuing a new id when it is missing or malformed
func Session(cfg config.SessionConfig) gin.HandlerFunc {
	maxAge := int(cfg.TTL.Seconds())

	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.CookieName)
		if err != nil || uuid.Validate(sessionID) != nil {
			sessionID = uuid.New().String()
		}

		// Refresh the cookie so active sessions keep sliding forward
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.CookieName, sessionID, maxAge, "/", "", cfg.Secure, true)

		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

// GetSessionIDFromContext returns the session id set by Session
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	sessionID := c.GetString(SessionIDKey)
	return sessionID, sessionID != ""
}
