// Package webcall contains HTTP request DTOs for web call endpoints.
package webcall

import (
	"encoding/json"
	"strings"
)

// CreateWebCallRequest is the body of POST /api/create-web-call.
// Every field is optional; an empty body selects the default agent.
type CreateWebCallRequest struct {
	AgentType AgentSelector  `json:"agent_type,omitempty" swaggertype:"string"`
	UserID    string         `json:"user_id,omitempty" binding:"omitempty,max=256"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// AgentSelector accepts any JSON value and keeps its text form, so a
// selector of the wrong type is rejected as an unknown agent.
type AgentSelector string

// UnmarshalJSON implements json.Unmarshaler.
func (s *AgentSelector) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	switch v := value.(type) {
	case nil:
		*s = ""
	case string:
		*s = AgentSelector(v)
	default:
		*s = AgentSelector(strings.TrimSpace(string(data)))
	}
	return nil
}

// String returns the selector text.
func (s AgentSelector) String() string {
	return string(s)
}
