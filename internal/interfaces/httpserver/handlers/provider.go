package handlers

import (
	"github.com/google/wire"

	"github.com/janhq/webcall-relay/internal/domain/webcall"
)

// Provider holds all HTTP handlers.
type Provider struct {
	WebCall *WebCallHandler
}

// NewProvider creates a new handler provider.
func NewProvider(webCallService webcall.Service) *Provider {
	return &Provider{
		WebCall: NewWebCallHandler(webCallService),
	}
}

// HandlerProvider provides all handlers for wire.
var HandlerProvider = wire.NewSet(
	NewProvider,
)
