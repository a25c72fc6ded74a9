package domain

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/janhq/webcall-relay/internal/config"
	"github.com/janhq/webcall-relay/internal/domain/webcall"
	"github.com/janhq/webcall-relay/pkg/telemetry"
)

// ProvideAgentRegistry builds the agent registry from configuration.
func ProvideAgentRegistry(cfg *config.Config) (*webcall.Registry, error) {
	agents, err := cfg.AgentIDs()
	if err != nil {
		return nil, err
	}
	labels, err := cfg.AgentLabels()
	if err != nil {
		return nil, err
	}

	registry, err := webcall.NewRegistry(agents, cfg.DefaultAgentType)
	if err != nil {
		return nil, err
	}
	registry.SetLabels(labels)
	return registry, nil
}

// ProvideWebCallService provides a web call service.
func ProvideWebCallService(
	registry *webcall.Registry,
	vendor webcall.VendorClient,
	sanitizer *telemetry.Sanitizer,
	cfg *config.Config,
	log zerolog.Logger,
) webcall.Service {
	return webcall.NewService(registry, vendor, cfg.DeploymentLabel, sanitizer, log)
}

// ServiceProvider provides all domain services.
var ServiceProvider = wire.NewSet(
	ProvideAgentRegistry,
	ProvideWebCallService,
)
