// Package webcallres contains HTTP response DTOs for web call endpoints.
package webcallres

import (
	domainwebcall "github.com/janhq/webcall-relay/internal/domain/webcall"
)

// WebCallResponse is returned on a successful token exchange.
type WebCallResponse struct {
	AccessToken string `json:"access_token"`
	CallID      string `json:"call_id"`
}

// AgentListResponse lists the selectors a client may send.
type AgentListResponse struct {
	Object  string            `json:"object"`
	Data    []string          `json:"data"`
	Default string            `json:"default"`
	Labels  map[string]string `json:"labels,omitempty"`
}

// NewWebCallResponse creates a WebCallResponse from a domain WebCall.
func NewWebCallResponse(call *domainwebcall.WebCall) *WebCallResponse {
	return &WebCallResponse{
		AccessToken: call.AccessToken,
		CallID:      call.CallID,
	}
}

// NewAgentListResponse creates an AgentListResponse.
func NewAgentListResponse(types []string, defaultType string, labels map[string]string) *AgentListResponse {
	return &AgentListResponse{
		Object:  "list",
		Data:    types,
		Default: defaultType,
		Labels:  labels,
	}
}
