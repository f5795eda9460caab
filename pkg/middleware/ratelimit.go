package middleware

import (
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
	"voyage/pkg/ratelimit"
	"voyage/pkg/utils"
)

// RateLimitMiddleware rejects clients that exceed their planning budget.
func RateLimitMiddleware(limiter *ratelimit.KeyedLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			log.Printf("trace=%s rate limited %s", c.GetString("trace_id"), c.ClientIP())
			utils.RespondError(c, http.StatusTooManyRequests, "Too many trip requests, please slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}
