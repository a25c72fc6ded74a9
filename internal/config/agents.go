package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// AgentCatalog is the optional YAML file listing extra agent selectors.
//
//	agents:
//	  - type: billing
//	    agent_id: agent_1234
//	    label: Talk to Billing
type AgentCatalog struct {
	Agents []AgentEntry `yaml:"agents" json:"agents" validate:"dive"`
}

// AgentEntry maps one selector to a vendor agent id.
type AgentEntry struct {
	Type    string `yaml:"type" json:"type" validate:"required,max=64,alphanum" jsonschema:"required,maxLength=64,pattern=^[A-Za-z0-9]+$,description=Selector sent as agent_type"`
	AgentID string `yaml:"agent_id" json:"agent_id" validate:"required" jsonschema:"required,minLength=1,description=Retell agent id"`
	Label   string `yaml:"label,omitempty" json:"label,omitempty" validate:"omitempty,max=128" jsonschema:"maxLength=128,description=Idle button label"`
}

var catalogValidator = validator.New()

// LoadAgentCatalog reads and validates an agent catalog file.
func LoadAgentCatalog(path string) (*AgentCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read agents file: %w", err)
	}
	return ParseAgentCatalog(raw)
}

// ParseAgentCatalog decodes a catalog document. Unknown keys are rejected.
func ParseAgentCatalog(raw []byte) (*AgentCatalog, error) {
	catalog := &AgentCatalog{}
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(catalog); err != nil {
		return nil, fmt.Errorf("decode agents file: %w", err)
	}

	if err := catalogValidator.Struct(catalog); err != nil {
		return nil, fmt.Errorf("validate agents file: %w", err)
	}

	seen := make(map[string]struct{}, len(catalog.Agents))
	for i := range catalog.Agents {
		catalog.Agents[i].Type = strings.ToLower(catalog.Agents[i].Type)
		if _, dup := seen[catalog.Agents[i].Type]; dup {
			return nil, fmt.Errorf("validate agents file: duplicate agent type %q", catalog.Agents[i].Type)
		}
		seen[catalog.Agents[i].Type] = struct{}{}
	}
	return catalog, nil
}

// Labels returns the custom button labels declared in the catalog.
func (c *AgentCatalog) Labels() map[string]string {
	labels := make(map[string]string)
	for _, entry := range c.Agents {
		if entry.Label != "" {
			labels[entry.Type] = entry.Label
		}
	}
	return labels
}

// AgentCatalogSchema returns the JSON Schema of the agents file.
func AgentCatalogSchema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
	}

	schema := reflector.Reflect(&AgentCatalog{})
	schema.Title = "Webcall Relay Agent Catalog"
	schema.Description = "Agent selectors loaded from AGENTS_FILE"

	data, err := schema.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
