package webcall

import (
	"fmt"
	"sort"
	"strings"
)

// Registry resolves agent selectors to vendor agent ids.
// It is built once from configuration and is read-only afterwards.
type Registry struct {
	agents      map[string]string
	labels      map[string]string
	defaultType string
}

// NewRegistry creates a registry. The default selector must be registered.
func NewRegistry(agents map[string]string, defaultType string) (*Registry, error) {
	normalized := make(map[string]string, len(agents))
	for name, id := range agents {
		name = normalizeType(name)
		if name == "" {
			continue
		}
		normalized[name] = strings.TrimSpace(id)
	}

	defaultType = normalizeType(defaultType)
	if _, ok := normalized[defaultType]; !ok {
		return nil, fmt.Errorf("default agent type %q is not registered", defaultType)
	}

	return &Registry{agents: normalized, labels: map[string]string{}, defaultType: defaultType}, nil
}

// SetLabels attaches display labels. Labels for unregistered selectors are
// dropped. Call before the registry is shared.
func (r *Registry) SetLabels(labels map[string]string) {
	for name, label := range labels {
		name = normalizeType(name)
		if _, ok := r.agents[name]; !ok || strings.TrimSpace(label) == "" {
			continue
		}
		r.labels[name] = strings.TrimSpace(label)
	}
}

// Labels returns a copy of the display labels.
func (r *Registry) Labels() map[string]string {
	labels := make(map[string]string, len(r.labels))
	for name, label := range r.labels {
		labels[name] = label
	}
	return labels
}

// Resolve maps a selector to its agent id. An empty selector resolves to the
// default. The returned type is the normalized selector.
func (r *Registry) Resolve(agentType string) (string, string, error) {
	agentType = normalizeType(agentType)
	if agentType == "" {
		agentType = r.defaultType
	}

	agentID, ok := r.agents[agentType]
	if !ok {
		return "", "", &InvalidAgentError{AgentType: agentType, AvailableTypes: r.Types()}
	}
	if agentID == "" {
		return "", agentType, fmt.Errorf("%w: %s", ErrAgentNotConfigured, agentType)
	}
	return agentID, agentType, nil
}

// Types returns all registered selectors in sorted order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.agents))
	for name := range r.agents {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

// Unconfigured returns selectors that have no agent id.
func (r *Registry) Unconfigured() []string {
	var missing []string
	for _, name := range r.Types() {
		if r.agents[name] == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// DefaultType returns the selector used when a request omits one.
func (r *Registry) DefaultType() string {
	return r.defaultType
}

func normalizeType(agentType string) string {
	return strings.ToLower(strings.TrimSpace(agentType))
}
