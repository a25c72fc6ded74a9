package callui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/janhq/webcall-relay/internal/domain/webcall"
)

const (
	createWebCallPath = "/api/create-web-call"
	listAgentsPath    = "/api/agents"
)

// HTTPTokenSource calls the relay's token-exchange endpoint.
type HTTPTokenSource struct {
	client *resty.Client
}

var _ TokenSource = (*HTTPTokenSource)(nil)

// NewHTTPTokenSource creates a token source for the relay at baseURL.
func NewHTTPTokenSource(baseURL string, timeout time.Duration) *HTTPTokenSource {
	return &HTTPTokenSource{
		client: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetHeader("Content-Type", "application/json").
			SetTimeout(timeout),
	}
}

type createWebCallBody struct {
	AgentType string         `json:"agent_type,omitempty"`
	UserID    string         `json:"user_id,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// RelayError is a non-2xx answer from the relay.
type RelayError struct {
	StatusCode     int      `json:"-"`
	Message        string   `json:"error"`
	Details        string   `json:"details,omitempty"`
	AvailableTypes []string `json:"available_types,omitempty"`
}

func (e *RelayError) Error() string {
	msg := fmt.Sprintf("server error: %d", e.StatusCode)
	if e.Message != "" {
		msg += " " + e.Message
	}
	if e.Details != "" {
		msg += ": " + e.Details
	}
	return msg
}

// CreateWebCall posts the call request and returns the issued token.
func (s *HTTPTokenSource) CreateWebCall(ctx context.Context, req *webcall.CreateWebCallRequest) (*webcall.WebCall, error) {
	var result webcall.WebCall
	relayErr := &RelayError{}
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(createWebCallBody{
			AgentType: req.AgentType,
			UserID:    req.UserID,
			Metadata:  req.Metadata,
		}).
		SetResult(&result).
		SetError(relayErr).
		Post(createWebCallPath)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.IsError() {
		relayErr.StatusCode = resp.StatusCode()
		return nil, relayErr
	}
	if result.AccessToken == "" {
		return nil, fmt.Errorf("response missing access_token")
	}
	return &result, nil
}

// AgentList is the relay's agent catalog.
type AgentList struct {
	Data    []string          `json:"data"`
	Default string            `json:"default"`
	Labels  map[string]string `json:"labels,omitempty"`
}

// ListAgents fetches the selectors the relay accepts.
func (s *HTTPTokenSource) ListAgents(ctx context.Context) (*AgentList, error) {
	var result AgentList
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(listAgentsPath)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.IsError() {
		return nil, &RelayError{StatusCode: resp.StatusCode()}
	}
	return &result, nil
}
