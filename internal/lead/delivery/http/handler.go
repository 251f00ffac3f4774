package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"gene-woofallback/internal/lead"
	"gene-woofallback/internal/metrics"
)

// HandleFallback godoc
// @Summary     Classify an inbound lead message
// @Description Evaluates the rule pipeline and returns a decision record: escalate, reply, or qualified.
// @Tags        Decision
// @Accept      json
// @Produce     json
// @Param       body body fallbackReq false "Lead message and optional prior context"
// @Success     200 {object} lead.Decision
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Security    BearerAuth
// @Router      /gene/woofallback [POST]
func (h *handler) HandleFallback(c *gin.Context) {
	ctx := c.Request.Context()

	// Missing or malformed body is not an error: the engine answers with the
	// default clarify branch instead of failing the call.
	var req fallbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(ctx, "lead handler: unparseable body treated as empty input: %v", err)
		req = fallbackReq{}
	}

	decision := h.uc.Decide(ctx, req.toInput())

	// Forward booking decisions downstream. Fire-and-forget: the caller gets
	// the decision regardless of what happens to the hook.
	if decision.Route == lead.RouteBooking && h.hook.Enabled() {
		decision.Forwarded = true
		h.forwardAsync(decision, req)
	}

	metrics.DecisionsTotal.WithLabelValues(string(decision.Action), string(decision.Qualified.Band)).Inc()

	c.JSON(http.StatusOK, decision)
}

// forwardAsync posts the decision to the configured webhook in a detached
// goroutine. Errors are logged and swallowed; the primary response has
// already been computed.
func (h *handler) forwardAsync(decision lead.Decision, req fallbackReq) {
	decisionJSON, err := json.Marshal(decision)
	if err != nil {
		return
	}
	payloadJSON, _ := json.Marshal(req)

	go func() {
		// Detach from the request context, which is cancelled after response.
		bgCtx := context.Background()
		if err := h.hook.Forward(bgCtx, decisionJSON, payloadJSON); err != nil {
			h.l.Warnf(bgCtx, "lead handler: decision forwarding failed: %v", err)
			metrics.ForwardFailuresTotal.Inc()
		}
	}()
}
