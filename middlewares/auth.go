package middlewares

import (
	"net/http"
	"strings"

	"dishpatch-be/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and, when roles are given,
// requires the caller to hold at least one of them.
func AuthMiddleware(secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing or invalid token"})
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid token"})
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("roles", claims.Roles)
		c.Set("email", claims.Email)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, need := range requiredRoles {
				for _, have := range claims.Roles {
					if need == have {
						allowed = true
						break
					}
				}
			}
			if !allowed {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "forbidden"})
				return
			}
		}

		c.Next()
	}
}
