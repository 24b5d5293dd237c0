package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"vitrine/internal/infrastructure/ratelimit"
	"vitrine/internal/shared/constants"
	"vitrine/internal/shared/utils"
)

// UploadRateLimit throttles theme uploads per authenticated user, falling
// back to the client IP for unauthenticated requests. A limiter failure lets
// the request through rather than blocking all traffic.
func UploadRateLimit(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "upload:ip:" + c.ClientIP()
		if userID, exists := c.Get(constants.ContextKeyUserID); exists {
			key = fmt.Sprintf("upload:user:%v", userID)
		}

		allowed, err := limiter.Allow(key, config)
		if err != nil {
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "upload rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
