package webcall

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/janhq/webcall-relay/pkg/telemetry"
)

// VendorClient creates web calls on the vendor API.
type VendorClient interface {
	CreateWebCall(ctx context.Context, params VendorCallParams) (*WebCall, error)
}

// Service defines the business operations for web calls.
type Service interface {
	CreateWebCall(ctx context.Context, req *CreateWebCallRequest) (*WebCall, error)
	AgentTypes() []string
	AgentLabels() map[string]string
	DefaultAgentType() string
}

type service struct {
	registry   *Registry
	vendor     VendorClient
	deployment string
	sanitizer  *telemetry.Sanitizer
	now        func() time.Time
	log        zerolog.Logger
}

// NewService creates a new web call service.
func NewService(registry *Registry, vendor VendorClient, deployment string, sanitizer *telemetry.Sanitizer, log zerolog.Logger) Service {
	return &service{
		registry:   registry,
		vendor:     vendor,
		deployment: deployment,
		sanitizer:  sanitizer,
		now:        time.Now,
		log:        log.With().Str("component", "webcall-service").Logger(),
	}
}

func (s *service) CreateWebCall(ctx context.Context, req *CreateWebCallRequest) (*WebCall, error) {
	agentID, agentType, err := s.registry.Resolve(req.AgentType)
	if err != nil {
		s.log.Warn().Err(err).Str("agent_type", req.AgentType).Msg("agent selector rejected")
		return nil, err
	}

	userID := req.UserID
	if userID == "" {
		userID = AnonymousUserID
	}

	params := VendorCallParams{
		AgentID:  agentID,
		Metadata: s.buildMetadata(agentType, userID, req.Metadata),
	}

	call, err := s.vendor.CreateWebCall(ctx, params)
	if err != nil {
		s.log.Error().
			Err(err).
			Str("agent_type", agentType).
			Str("user_id", s.sanitizer.SanitizeUserID(userID)).
			Msg("failed to create web call")
		return nil, err
	}

	s.log.Info().
		Str("call_id", call.CallID).
		Str("agent_type", agentType).
		Str("user_id", s.sanitizer.SanitizeUserID(userID)).
		Interface("metadata", s.sanitizer.SanitizeFields(req.Metadata)).
		Msg("web call created")

	return call, nil
}

func (s *service) AgentTypes() []string {
	return s.registry.Types()
}

func (s *service) AgentLabels() map[string]string {
	return s.registry.Labels()
}

func (s *service) DefaultAgentType() string {
	return s.registry.DefaultType()
}

// buildMetadata layers the caller's metadata over the server-populated keys.
func (s *service) buildMetadata(agentType, userID string, extra map[string]any) map[string]any {
	metadata := map[string]any{
		"user_id":       userID,
		"agent_type":    agentType,
		"session_start": s.now().UTC().Format(time.RFC3339Nano),
		"deployment":    s.deployment,
	}
	for k, v := range extra {
		metadata[k] = v
	}
	return metadata
}
