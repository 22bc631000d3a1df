package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"homebanking-sim/internal/session"
)

// AuthMiddleware validates the Bearer token and stores the resolved
// username in the request context; every engine call downstream receives
// the user explicitly from there.
func AuthMiddleware(sess *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(401, gin.H{
				"success": false, "error": session.KindSessionExpired,
				"message": "Tu sesión ha expirado. Por favor, inicia sesión nuevamente.",
			})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(401, gin.H{
				"success": false, "error": session.KindSessionExpired,
				"message": "Tu sesión ha expirado. Por favor, inicia sesión nuevamente.",
			})
			return
		}

		username, err := sess.ValidateSession(parts[1])
		if err != nil {
			fail(c, err)
			c.Abort()
			return
		}

		c.Set("user", username)
		c.Next()
	}
}

// currentUser returns the username set by AuthMiddleware.
func currentUser(c *gin.Context) string {
	return c.MustGet("user").(string)
}
