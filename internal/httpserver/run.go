package httpserver

import (
	"context"
	"fmt"
)

// Run maps handlers and serves until the listener fails or the process is
// stopped.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return fmt.Errorf("failed to map handlers: %w", err)
	}

	ctx := context.Background()
	srv.l.Infof(ctx, "HTTP server listening on :%d", srv.port)

	if err := srv.gin.Run(fmt.Sprintf(":%d", srv.port)); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
