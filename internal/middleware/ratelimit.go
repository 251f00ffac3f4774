package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgResponse "gene-woofallback/pkg/response"
)

// RateLimit enforces a per-source request budget on the decision routes.
// No-op when the configured limit is zero.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}
		source := extractIP(c.Request)
		if err := m.limiter.Allow(source); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware: %v", err)
			pkgResponse.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// extractIP extracts the client IP from the request, preferring proxy headers.
func extractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, _ := net.SplitHostPort(r.RemoteAddr)
	return ip
}

// sourceLimiter keeps a token-bucket limiter per source with auto-cleanup.
type sourceLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newSourceLimiter(requestsPerMin int) *sourceLimiter {
	if requestsPerMin <= 0 {
		return nil
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &sourceLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // max tracked sources
			nil,           // no eviction callback
			time.Minute*5, // TTL
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (sl *sourceLimiter) Allow(key string) error {
	limiter, ok := sl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(sl.rate, sl.burst)
		sl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
