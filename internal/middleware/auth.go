package middleware

import (
	"net/http"
	"strings"

	"github.com/fikrirozi147/halal-checker-backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards the catalogue-management routes. Admin identity
// from the token lands in the gin context for handlers and logs.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format, use 'Bearer <token>'"})
			c.Abort()
			return
		}

		adminID, email, err := auth.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: " + err.Error()})
			c.Abort()
			return
		}

		c.Set("adminID", adminID)
		c.Set("adminEmail", email)
		c.Next()
	}
}
