package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the webcall-relay service.
type Config struct {
	// Service settings
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"webcall-relay"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"production"`
	HTTPPort        int           `env:"WEBCALL_API_PORT" envDefault:"8190"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogPIILevel     string        `env:"LOG_PII_LEVEL" envDefault:"hashed"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// OpenTelemetry
	EnableTracing bool   `env:"OTEL_ENABLED" envDefault:"false"`
	OTLPEndpoint  string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`

	// Retell
	RetellAPIKey  string        `env:"RETELL_API_KEY"`
	RetellBaseURL string        `env:"RETELL_BASE_URL" envDefault:"https://api.retellai.com"`
	RetellTimeout time.Duration `env:"RETELL_TIMEOUT" envDefault:"15s"`

	// Agents. The three built-in selectors are always registered, even when
	// their id is empty, so a missing id surfaces as a misconfiguration.
	SupportAgentID    string            `env:"SUPPORT_AGENT_ID"`
	SalesAgentID      string            `env:"SALES_AGENT_ID"`
	ConsultantAgentID string            `env:"CONSULTANT_AGENT_ID"`
	ExtraAgentIDs     map[string]string `env:"EXTRA_AGENT_IDS" envSeparator:"," envKeyValSeparator:":"`
	AgentsFile        string            `env:"AGENTS_FILE"`
	DefaultAgentType  string            `env:"DEFAULT_AGENT_TYPE" envDefault:"support"`

	// DeploymentLabel is forwarded to the vendor as call metadata.
	DeploymentLabel string `env:"DEPLOYMENT_LABEL" envDefault:"server"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.DefaultAgentType = strings.ToLower(strings.TrimSpace(cfg.DefaultAgentType))
	if cfg.DefaultAgentType == "" {
		return nil, fmt.Errorf("DEFAULT_AGENT_TYPE must not be empty")
	}
	if cfg.HTTPPort <= 0 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("WEBCALL_API_PORT out of range: %d", cfg.HTTPPort)
	}

	return cfg, nil
}

// Addr returns the HTTP server address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// IsDevelopment reports whether error details may be exposed to clients.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

// AgentIDs returns the selector -> agent id table from the environment and
// the optional catalog file. File entries override environment entries.
func (c *Config) AgentIDs() (map[string]string, error) {
	agents := map[string]string{
		"support":    strings.TrimSpace(c.SupportAgentID),
		"sales":      strings.TrimSpace(c.SalesAgentID),
		"consultant": strings.TrimSpace(c.ConsultantAgentID),
	}
	for name, id := range c.ExtraAgentIDs {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		agents[name] = strings.TrimSpace(id)
	}

	if strings.TrimSpace(c.AgentsFile) == "" {
		return agents, nil
	}

	catalog, err := LoadAgentCatalog(c.AgentsFile)
	if err != nil {
		return nil, err
	}
	for _, entry := range catalog.Agents {
		agents[strings.ToLower(entry.Type)] = entry.AgentID
	}
	return agents, nil
}

// AgentLabels returns the button labels declared in the catalog file.
func (c *Config) AgentLabels() (map[string]string, error) {
	if strings.TrimSpace(c.AgentsFile) == "" {
		return nil, nil
	}
	catalog, err := LoadAgentCatalog(c.AgentsFile)
	if err != nil {
		return nil, err
	}
	return catalog.Labels(), nil
}
