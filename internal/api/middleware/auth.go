package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/musicvalue/vault-backend/internal/auth"
	"github.com/musicvalue/vault-backend/internal/logger"
)

// Context keys set by the auth middleware.
const (
	AuthUserIDKey = "auth_user_id"
	AuthHandleKey = "auth_handle"
)

// Auth returns a gin middleware validating the backend session token. Guarded
// endpoints see the linked identity's user ID and handle in the context.
func Auth(sessions *auth.SessionIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			unauthorized(c, "invalid Authorization header format")
			return
		}

		claims, err := sessions.Verify(parts[1])
		if err != nil {
			logger.Warn("session verification failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			unauthorized(c, "invalid session token")
			return
		}

		c.Set(AuthUserIDKey, claims.Subject)
		c.Set(AuthHandleKey, claims.Handle)
		c.Next()
	}
}

func unauthorized(c *gin.Context, details string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "unauthorized",
			"message": "Authentication failed",
			"details": details,
		},
	})
}
