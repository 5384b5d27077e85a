package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hosthub/pkg/utils"
)

// JWTAuthMiddleware guards the mutating admin routes. Tokens are issued
// by the login endpoint only.
func JWTAuthMiddleware() gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("admin_id", claims.Subject)
		c.Set("admin_username", claims.Username)
		c.Next()
	}
}
