package http

import (
	"github.com/gin-gonic/gin"

	"gene-woofallback/internal/lead"
	pkgHook "gene-woofallback/pkg/hook"
	pkgLog "gene-woofallback/pkg/log"
)

// Handler is the interface for the lead delivery handler.
type Handler interface {
	HandleFallback(c *gin.Context)
}

type handler struct {
	l    pkgLog.Logger
	uc   lead.UseCase
	hook *pkgHook.Client
}

// New creates a new lead delivery handler. hook may be disabled (empty URL);
// forwarding is skipped entirely in that case.
func New(l pkgLog.Logger, uc lead.UseCase, hook *pkgHook.Client) Handler {
	return &handler{
		l:    l,
		uc:   uc,
		hook: hook,
	}
}
