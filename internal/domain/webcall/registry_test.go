package webcall

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAgents() map[string]string {
	return map[string]string{
		"support":    "agent_support",
		"Sales":      "agent_sales",
		"consultant": "",
	}
}

func TestNewRegistry_UnknownDefault(t *testing.T) {
	_, err := NewRegistry(testAgents(), "billing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "billing")
}

func TestRegistry_Resolve(t *testing.T) {
	registry, err := NewRegistry(testAgents(), "support")
	require.NoError(t, err)

	tests := []struct {
		name      string
		agentType string
		wantID    string
		wantType  string
	}{
		{"explicit", "support", "agent_support", "support"},
		{"empty uses default", "", "agent_support", "support"},
		{"case and space insensitive", "  SALES ", "agent_sales", "sales"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, agentType, err := registry.Resolve(tt.agentType)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantType, agentType)
		})
	}
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	registry, err := NewRegistry(testAgents(), "support")
	require.NoError(t, err)

	_, _, err = registry.Resolve("billing")

	var invalid *InvalidAgentError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "billing", invalid.AgentType)
	assert.Equal(t, []string{"consultant", "sales", "support"}, invalid.AvailableTypes)
}

func TestRegistry_ResolveUnconfigured(t *testing.T) {
	registry, err := NewRegistry(testAgents(), "support")
	require.NoError(t, err)

	_, agentType, err := registry.Resolve("consultant")
	assert.True(t, errors.Is(err, ErrAgentNotConfigured))
	assert.Equal(t, "consultant", agentType)
	assert.Equal(t, []string{"consultant"}, registry.Unconfigured())
}
