package middleware

import (
	"context"
	"net/http"
	"strings"

	"urbanhelp/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthUserMiddleware validates the bearer token and attaches the verified
// identity (userID, userEmail, isAdmin) to the request context. Validated
// token hashes are cached in Redis so repeat requests skip signature checks.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "Missing or invalid Authorization header",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		identity, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "Invalid or expired token",
			})
			return
		}

		cacheTokenHash(c.Request.Context(), identity.UserID, tokenString)

		c.Set("userID", identity.UserID)
		c.Set("userEmail", identity.Email)
		c.Set("isAdmin", identity.IsAdmin)
		c.Next()
	}
}

// cacheTokenHash records the validated token hash with a sliding TTL. Cache
// trouble is logged and ignored; authentication already succeeded.
func cacheTokenHash(ctx context.Context, userID, tokenString string) {
	authCache := utils.GetAuthCacheClient()
	if authCache == nil {
		return
	}
	key := utils.AuthCachePrefix + userID
	hash := utils.HashToken(tokenString)

	cached, err := authCache.Get(ctx, key).Result()
	if err == nil && cached == hash {
		_ = authCache.Expire(ctx, key, utils.AuthCacheTTL).Err()
		return
	}
	if err != nil && err != redis.Nil {
		zap.L().Warn("auth cache lookup failed", zap.Error(err))
		return
	}
	if err := authCache.Set(ctx, key, hash, utils.AuthCacheTTL).Err(); err != nil {
		zap.L().Warn("auth cache store failed", zap.Error(err))
	}
}

// UserEmail returns the authenticated email the middleware attached.
func UserEmail(c *gin.Context) string {
	email, _ := c.Get("userEmail")
	s, _ := email.(string)
	return s
}
