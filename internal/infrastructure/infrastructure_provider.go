package infrastructure

import (
	"github.com/google/wire"

	"github.com/janhq/webcall-relay/internal/config"
	"github.com/janhq/webcall-relay/internal/domain/webcall"
	"github.com/janhq/webcall-relay/internal/infrastructure/retell"
	"github.com/janhq/webcall-relay/pkg/telemetry"
)

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// PII sanitizer
	ProvideSanitizer,

	// Retell client
	ProvideRetellClient,
	wire.Bind(new(webcall.VendorClient), new(*retell.Client)),
)

// ProvideSanitizer provides the log sanitizer
func ProvideSanitizer(cfg *config.Config) *telemetry.Sanitizer {
	return telemetry.NewSanitizer(telemetry.PIILevel(cfg.LogPIILevel), cfg.ServiceName)
}

// ProvideRetellClient provides the vendor client
func ProvideRetellClient(cfg *config.Config, sanitizer *telemetry.Sanitizer) *retell.Client {
	return retell.NewClient(cfg.RetellBaseURL, cfg.RetellAPIKey, cfg.RetellTimeout, sanitizer)
}
