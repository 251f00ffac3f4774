package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gene-woofallback/pkg/response"
)

// Health response constants.
const (
	HealthMessage = "From Gene Woo Fallback With Love"
	HealthVersion = "1.0.0"
)

// rootCheck handles the platform health probe.
// The exact shape is a caller contract: {ok: true, service: <name>}.
// @Summary Service Check
// @Description Platform-facing health probe
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is up"
// @Router / [get]
func (srv HTTPServer) rootCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"service": srv.serviceName,
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": srv.serviceName,
	})
}

// readyCheck handles readiness check — returns ready if server is up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": srv.serviceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": srv.serviceName,
	})
}
