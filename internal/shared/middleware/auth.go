package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"petregistry-backend/pkg/jwt"
)

// AuthMiddleware extracts the caller's identity from the Bearer token.
// Signature verification already happened at the API gateway in front of
// this service; here only the user_id claim is pulled out.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := jwt.ExtractClaims(parts[1])
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)

		c.Next()
	}
}
