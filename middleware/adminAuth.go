package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware gates admin endpoints. It runs after
// JWTAuthUserMiddleware and requires the token's admin claim.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("isAdmin")
		if !exists || isAdmin != true {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false, "message": "Admin access required",
			})
			return
		}
		c.Next()
	}
}
