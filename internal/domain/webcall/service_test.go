package webcall

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/webcall-relay/pkg/telemetry"
)

type mockVendorClient struct {
	createFunc func(ctx context.Context, params VendorCallParams) (*WebCall, error)
	calls      []VendorCallParams
}

func (m *mockVendorClient) CreateWebCall(ctx context.Context, params VendorCallParams) (*WebCall, error) {
	m.calls = append(m.calls, params)
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &WebCall{AccessToken: "tok", CallID: "call"}, nil
}

func newTestService(t *testing.T, vendor VendorClient) *service {
	t.Helper()
	registry, err := NewRegistry(testAgents(), "support")
	require.NoError(t, err)

	svc := NewService(registry, vendor, "server", telemetry.NewSanitizer(telemetry.PIILevelHashed, "test"), zerolog.Nop()).(*service)
	svc.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return svc
}

func TestCreateWebCall_Metadata(t *testing.T) {
	vendor := &mockVendorClient{}
	svc := newTestService(t, vendor)

	call, err := svc.CreateWebCall(context.Background(), &CreateWebCallRequest{
		AgentType: "sales",
		UserID:    "user_1",
		Metadata:  map[string]any{"page_url": "https://example.com", "deployment": "browser"},
	})
	require.NoError(t, err)
	assert.Equal(t, &WebCall{AccessToken: "tok", CallID: "call"}, call)

	require.Len(t, vendor.calls, 1)
	assert.Equal(t, "agent_sales", vendor.calls[0].AgentID)
	assert.Equal(t, map[string]any{
		"user_id":       "user_1",
		"agent_type":    "sales",
		"session_start": "2026-01-02T03:04:05Z",
		"deployment":    "browser",
		"page_url":      "https://example.com",
	}, vendor.calls[0].Metadata)
}

func TestCreateWebCall_Defaults(t *testing.T) {
	vendor := &mockVendorClient{}
	svc := newTestService(t, vendor)

	_, err := svc.CreateWebCall(context.Background(), &CreateWebCallRequest{})
	require.NoError(t, err)

	require.Len(t, vendor.calls, 1)
	assert.Equal(t, "agent_support", vendor.calls[0].AgentID)
	assert.Equal(t, AnonymousUserID, vendor.calls[0].Metadata["user_id"])
	assert.Equal(t, "support", vendor.calls[0].Metadata["agent_type"])
	assert.Equal(t, "server", vendor.calls[0].Metadata["deployment"])
}

func TestCreateWebCall_RejectsBeforeVendor(t *testing.T) {
	vendor := &mockVendorClient{}
	svc := newTestService(t, vendor)

	_, err := svc.CreateWebCall(context.Background(), &CreateWebCallRequest{AgentType: "billing"})
	var invalid *InvalidAgentError
	assert.True(t, errors.As(err, &invalid))

	_, err = svc.CreateWebCall(context.Background(), &CreateWebCallRequest{AgentType: "consultant"})
	assert.True(t, errors.Is(err, ErrAgentNotConfigured))

	assert.Empty(t, vendor.calls)
}

func TestCreateWebCall_VendorError(t *testing.T) {
	vendor := &mockVendorClient{
		createFunc: func(ctx context.Context, params VendorCallParams) (*WebCall, error) {
			return nil, &VendorError{StatusCode: 503, Message: "unavailable"}
		},
	}
	svc := newTestService(t, vendor)

	_, err := svc.CreateWebCall(context.Background(), &CreateWebCallRequest{AgentType: "support"})
	vendorErr, ok := IsVendorError(err)
	require.True(t, ok)
	assert.Equal(t, 503, vendorErr.StatusCode)
}

func TestAgentTypes(t *testing.T) {
	svc := newTestService(t, &mockVendorClient{})
	assert.Equal(t, []string{"consultant", "sales", "support"}, svc.AgentTypes())
}

func TestAgentLabels(t *testing.T) {
	svc := newTestService(t, &mockVendorClient{})
	svc.registry.SetLabels(map[string]string{"Sales": " Talk to Sales ", "billing": "Talk to Billing"})

	labels := svc.AgentLabels()
	assert.Equal(t, map[string]string{"sales": "Talk to Sales"}, labels)

	labels["sales"] = "changed"
	assert.Equal(t, "Talk to Sales", svc.AgentLabels()["sales"])
}

func TestDefaultAgentType(t *testing.T) {
	svc := newTestService(t, &mockVendorClient{})
	assert.Equal(t, "support", svc.DefaultAgentType())
}
