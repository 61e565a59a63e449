package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookdesk/internal/validation"
	"golang.org/x/time/rate"
)

// IPRateLimiter manages per-IP token buckets. Used to keep a single
// client from draining the AI provider quota.
type IPRateLimiter struct {
	limiters sync.Map
	rate     rate.Limit
	burst    int
}

func NewIPRateLimiter(r rate.Limit, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		rate:  r,
		burst: burst,
	}
}

func (l *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	limiter, exists := l.limiters.Load(ip)
	if !exists {
		newLimiter := rate.NewLimiter(l.rate, l.burst)
		limiter, _ = l.limiters.LoadOrStore(ip, newLimiter)
	}
	return limiter.(*rate.Limiter)
}

// RateLimit rejects requests exceeding the per-IP limit with 429.
func RateLimit(l *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.GetLimiter(c.ClientIP()).Allow() {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, validation.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "too many requests",
			})
			return
		}
		c.Next()
	}
}
