package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gene-woofallback/internal/metrics"
	pkgResponse "gene-woofallback/pkg/response"
)

// HeaderRequestID carries the per-request correlation ID.
const HeaderRequestID = "X-Request-ID"

// RequireBearer rejects requests whose Authorization header does not carry
// the configured API key. Runs before any body read: unauthorized callers
// never reach the JSON decoder.
func (m Middleware) RequireBearer() gin.HandlerFunc {
	expected := "Bearer " + m.cfg.APIKey
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != expected {
			m.l.Warnf(c.Request.Context(), "middleware: rejected request to %s: bad bearer token", c.FullPath())
			metrics.UnauthorizedTotal.Inc()
			pkgResponse.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequestID assigns a correlation ID to every request, honoring one supplied
// by the caller. The ID goes on the response header only, never into the
// decision body.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}
