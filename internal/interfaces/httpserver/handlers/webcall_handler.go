package handlers

import (
	"context"

	"github.com/janhq/webcall-relay/internal/domain/webcall"
)

// WebCallHandler handles web call HTTP requests.
type WebCallHandler struct {
	service webcall.Service
}

// NewWebCallHandler creates a new web call handler.
func NewWebCallHandler(service webcall.Service) *WebCallHandler {
	return &WebCallHandler{service: service}
}

// CreateWebCall exchanges the server credential for a per-call access token.
func (h *WebCallHandler) CreateWebCall(ctx context.Context, req *webcall.CreateWebCallRequest) (*webcall.WebCall, error) {
	return h.service.CreateWebCall(ctx, req)
}

// ListAgentTypes returns the configured selectors and the default one.
func (h *WebCallHandler) ListAgentTypes() ([]string, string) {
	return h.service.AgentTypes(), h.service.DefaultAgentType()
}

// AgentLabels returns custom display labels keyed by selector.
func (h *WebCallHandler) AgentLabels() map[string]string {
	return h.service.AgentLabels()
}
