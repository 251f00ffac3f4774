package http

import (
	"github.com/gin-gonic/gin"

	"gene-woofallback/internal/middleware"
)

// RegisterRoutes binds the decision endpoint and its legacy alias to one
// handler. Both paths are guarded by bearer auth and the per-source rate
// limit; auth runs before any body read.
func RegisterRoutes(r *gin.Engine, h Handler, mw middleware.Middleware) {
	guarded := []gin.HandlerFunc{mw.RequestID(), mw.RequireBearer(), mw.RateLimit()}

	group := r.Group("/gene", guarded...)
	{
		group.POST("/woofallback", h.HandleFallback)
		group.POST("/woofallback1", h.HandleFallback)
	}
}
