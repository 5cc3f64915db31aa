package middleware

import (
	"strings"

	"github.com/opencivic/civicmap/internal/pkg/response"
	"github.com/opencivic/civicmap/internal/pkg/token"

	"github.com/gin-gonic/gin"
)

// AdminAuth validates the admin session token and stores the principal on
// the request context.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		// Support both "Bearer <token>" (case-insensitive) and raw token in header
		fields := strings.Fields(authHeader)
		var tokenString string
		if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			tokenString = fields[1]
		} else {
			tokenString = authHeader
		}

		claims, err := token.Validate(tokenString, secret)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token", "INVALID_TOKEN")
			c.Abort()
			return
		}

		c.Set("adminID", claims.AdminID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
