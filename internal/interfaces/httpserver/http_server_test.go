package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/janhq/webcall-relay/internal/config"
	"github.com/janhq/webcall-relay/internal/domain/webcall"
	"github.com/janhq/webcall-relay/internal/infrastructure/retell"
	"github.com/janhq/webcall-relay/internal/interfaces/httpserver"
	"github.com/janhq/webcall-relay/internal/interfaces/httpserver/handlers"
	"github.com/janhq/webcall-relay/internal/interfaces/httpserver/routes"
	"github.com/janhq/webcall-relay/pkg/telemetry"
)

const testAPIKey = "key_live_do_not_leak"

// MockWebCallService is a mock implementation of webcall.Service for testing.
type MockWebCallService struct {
	CreateWebCallFunc    func(ctx context.Context, req *webcall.CreateWebCallRequest) (*webcall.WebCall, error)
	AgentTypesFunc       func() []string
	AgentLabelsFunc      func() map[string]string
	DefaultAgentTypeFunc func() string
}

func (m *MockWebCallService) CreateWebCall(ctx context.Context, req *webcall.CreateWebCallRequest) (*webcall.WebCall, error) {
	if m.CreateWebCallFunc != nil {
		return m.CreateWebCallFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockWebCallService) AgentTypes() []string {
	if m.AgentTypesFunc != nil {
		return m.AgentTypesFunc()
	}
	return nil
}

func (m *MockWebCallService) AgentLabels() map[string]string {
	if m.AgentLabelsFunc != nil {
		return m.AgentLabelsFunc()
	}
	return nil
}

func (m *MockWebCallService) DefaultAgentType() string {
	if m.DefaultAgentTypeFunc != nil {
		return m.DefaultAgentTypeFunc()
	}
	return "support"
}

func newServer(cfg *config.Config, service webcall.Service) http.Handler {
	log := zerolog.Nop()
	routeProvider := routes.NewProvider(handlers.NewProvider(service), cfg, log)
	return httpserver.New(cfg, log, routeProvider).Handler()
}

func testConfig(environment string) *config.Config {
	return &config.Config{
		ServiceName:     "webcall-relay",
		Environment:     environment,
		HTTPPort:        8190,
		ShutdownTimeout: time.Second,
	}
}

// newVendorBackedServer wires the real registry, service and Retell client
// against a fake vendor.
func newVendorBackedServer(t *testing.T, apiKey string, vendor http.HandlerFunc) (http.Handler, *int) {
	t.Helper()
	calls := 0
	vendorServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		vendor(w, r)
	}))
	t.Cleanup(vendorServer.Close)

	registry, err := webcall.NewRegistry(map[string]string{
		"support":    "agent_support",
		"sales":      "agent_sales",
		"consultant": "",
	}, "support")
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	sanitizer := telemetry.NewSanitizer(telemetry.PIILevelHashed, "test")
	client := retell.NewClient(vendorServer.URL, apiKey, 5*time.Second, sanitizer)
	service := webcall.NewService(registry, client, "server", sanitizer, zerolog.Nop())
	return newServer(testConfig("production"), service), &calls
}

func okVendor(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write([]byte(`{"access_token":"tok_abc","call_id":"call_123"}`))
}

func doRequest(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response %q: %v", w.Body.String(), err)
	}
	return response
}

func TestCreateWebCall_KnownAgent(t *testing.T) {
	handler, calls := newVendorBackedServer(t, testAPIKey, okVendor)

	w := doRequest(handler, http.MethodPost, "/api/create-web-call", `{"agent_type":"sales","user_id":"user_1","metadata":{"page_url":"https://example.com"}}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	response := decode(t, w)
	if response["access_token"] != "tok_abc" {
		t.Errorf("Expected access_token 'tok_abc', got %v", response["access_token"])
	}
	if response["call_id"] != "call_123" {
		t.Errorf("Expected call_id 'call_123', got %v", response["call_id"])
	}
	if *calls != 1 {
		t.Errorf("Expected one vendor call, got %d", *calls)
	}
}

func TestCreateWebCall_EmptyBodyUsesDefault(t *testing.T) {
	var gotAgent string
	handler, _ := newVendorBackedServer(t, testAPIKey, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotAgent, _ = body["agent_id"].(string)
		okVendor(w, r)
	})

	w := doRequest(handler, http.MethodPost, "/api/create-web-call", "")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotAgent != "agent_support" {
		t.Errorf("Expected default agent 'agent_support', got %q", gotAgent)
	}
}

func TestCreateWebCall_UnknownAgent(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown name", `{"agent_type":"billing"}`},
		{"overlong name", `{"agent_type":"` + strings.Repeat("x", 65) + `"}`},
		{"number", `{"agent_type":123}`},
		{"boolean", `{"agent_type":true}`},
		{"object", `{"agent_type":{"name":"support"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, calls := newVendorBackedServer(t, testAPIKey, okVendor)

			w := doRequest(handler, http.MethodPost, "/api/create-web-call", tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d: %s", w.Code, w.Body.String())
			}
			response := decode(t, w)
			if response["error"] != "Invalid agent type" {
				t.Errorf("Unexpected error %v", response["error"])
			}
			available, _ := response["available_types"].([]interface{})
			want := []string{"consultant", "sales", "support"}
			if len(available) != len(want) {
				t.Fatalf("Expected available_types %v, got %v", want, available)
			}
			for i, v := range want {
				if available[i] != v {
					t.Errorf("available_types[%d] = %v, want %v", i, available[i], v)
				}
			}
			if *calls != 0 {
				t.Errorf("Expected vendor not to be called, got %d calls", *calls)
			}
		})
	}
}

func TestCreateWebCall_NullAgentUsesDefault(t *testing.T) {
	handler, calls := newVendorBackedServer(t, testAPIKey, okVendor)

	w := doRequest(handler, http.MethodPost, "/api/create-web-call", `{"agent_type":null}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if *calls != 1 {
		t.Errorf("Expected one vendor call, got %d", *calls)
	}
}

func TestCreateWebCall_EmptyBodyOverListener(t *testing.T) {
	handler, calls := newVendorBackedServer(t, testAPIKey, okVendor)
	server := httptest.NewServer(handler)
	defer server.Close()

	resp, err := http.Post(server.URL+"/api/create-web-call", "application/json", nil)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if *calls != 1 {
		t.Errorf("Expected one vendor call, got %d", *calls)
	}
}

func TestCreateWebCall_MethodNotAllowed(t *testing.T) {
	handler, _ := newVendorBackedServer(t, testAPIKey, okVendor)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		w := doRequest(handler, method, "/api/create-web-call", "")
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s: expected status 405, got %d", method, w.Code)
			continue
		}
		if response := decode(t, w); response["error"] != "Method not allowed" {
			t.Errorf("%s: unexpected error %v", method, response["error"])
		}
	}
}

func TestCreateWebCall_Preflight(t *testing.T) {
	handler, calls := newVendorBackedServer(t, testAPIKey, okVendor)

	for _, body := range []string{"", "{not json", `{"agent_type":"billing"}`} {
		w := doRequest(handler, http.MethodOptions, "/api/create-web-call", body)

		if w.Code != http.StatusOK {
			t.Errorf("body %q: expected status 200, got %d", body, w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("body %q: expected allow origin '*', got %q", body, got)
		}
		if got := w.Header().Get("Access-Control-Allow-Methods"); got != "POST, OPTIONS" {
			t.Errorf("body %q: unexpected allow methods %q", body, got)
		}
		if got := w.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type" {
			t.Errorf("body %q: unexpected allow headers %q", body, got)
		}
	}
	if *calls != 0 {
		t.Errorf("Expected vendor not to be called, got %d calls", *calls)
	}
}

func TestCreateWebCall_VendorFailureDoesNotLeakSecret(t *testing.T) {
	handler, _ := newVendorBackedServer(t, testAPIKey, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"internal failure for ` + r.Header.Get("Authorization") + `"}`))
	})

	w := doRequest(handler, http.MethodPost, "/api/create-web-call", `{"agent_type":"support"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), testAPIKey) {
		t.Errorf("Response leaked the API key: %s", w.Body.String())
	}
	response := decode(t, w)
	if response["error"] != "Failed to create call" {
		t.Errorf("Unexpected error %v", response["error"])
	}
	if response["vendor_status"] != float64(500) {
		t.Errorf("Expected vendor_status 500, got %v", response["vendor_status"])
	}
}

func TestCreateWebCall_VendorClientError(t *testing.T) {
	handler, _ := newVendorBackedServer(t, testAPIKey, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid api key"}`))
	})

	w := doRequest(handler, http.MethodPost, "/api/create-web-call", `{}`)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("Expected status 502, got %d", w.Code)
	}
	response := decode(t, w)
	if response["details"] != "invalid api key" {
		t.Errorf("Expected vendor message in details, got %v", response["details"])
	}
	if response["vendor_status"] != float64(401) {
		t.Errorf("Expected vendor_status 401, got %v", response["vendor_status"])
	}
}

func TestCreateWebCall_Misconfigured(t *testing.T) {
	t.Run("agent without credential", func(t *testing.T) {
		handler, calls := newVendorBackedServer(t, testAPIKey, okVendor)

		w := doRequest(handler, http.MethodPost, "/api/create-web-call", `{"agent_type":"consultant"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("Expected status 500, got %d", w.Code)
		}
		response := decode(t, w)
		if response["error"] != "Server misconfigured" {
			t.Errorf("Unexpected error %v", response["error"])
		}
		if !strings.Contains(response["details"].(string), "consultant") {
			t.Errorf("Expected diagnostic to name the agent type, got %v", response["details"])
		}
		if *calls != 0 {
			t.Errorf("Expected vendor not to be called, got %d calls", *calls)
		}
	})

	t.Run("missing api key", func(t *testing.T) {
		handler, calls := newVendorBackedServer(t, "", okVendor)

		w := doRequest(handler, http.MethodPost, "/api/create-web-call", `{"agent_type":"support"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("Expected status 500, got %d", w.Code)
		}
		if response := decode(t, w); response["error"] != "Server misconfigured" {
			t.Errorf("Unexpected error %v", response["error"])
		}
		if *calls != 0 {
			t.Errorf("Expected vendor not to be called, got %d calls", *calls)
		}
	})
}

func TestCreateWebCall_MalformedBody(t *testing.T) {
	handler, calls := newVendorBackedServer(t, testAPIKey, okVendor)

	w := doRequest(handler, http.MethodPost, "/api/create-web-call", `{"agent_type":`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	if response := decode(t, w); response["error"] != "Invalid request body" {
		t.Errorf("Unexpected error %v", response["error"])
	}
	if *calls != 0 {
		t.Errorf("Expected vendor not to be called, got %d calls", *calls)
	}
}

func TestCreateWebCall_UnexpectedError(t *testing.T) {
	service := &MockWebCallService{
		CreateWebCallFunc: func(ctx context.Context, req *webcall.CreateWebCallRequest) (*webcall.WebCall, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
	}

	tests := []struct {
		environment string
		wantDetails string
	}{
		{"production", "Internal server error"},
		{"development", "dial tcp: connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			handler := newServer(testConfig(tt.environment), service)

			w := doRequest(handler, http.MethodPost, "/api/create-web-call", `{"agent_type":"support"}`)
			if w.Code != http.StatusInternalServerError {
				t.Fatalf("Expected status 500, got %d", w.Code)
			}
			if response := decode(t, w); response["details"] != tt.wantDetails {
				t.Errorf("Expected details %q, got %v", tt.wantDetails, response["details"])
			}
		})
	}
}

func TestCreateWebCall_ForwardsRequest(t *testing.T) {
	var got *webcall.CreateWebCallRequest
	service := &MockWebCallService{
		CreateWebCallFunc: func(ctx context.Context, req *webcall.CreateWebCallRequest) (*webcall.WebCall, error) {
			got = req
			return &webcall.WebCall{AccessToken: "tok", CallID: "call"}, nil
		},
	}
	handler := newServer(testConfig("development"), service)

	body := bytes.NewBufferString(`{"agent_type":"sales","user_id":"user_x","metadata":{"user_agent":"test"}}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/create-web-call", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if got == nil || got.AgentType != "sales" || got.UserID != "user_x" || got.Metadata["user_agent"] != "test" {
		t.Errorf("Request not forwarded as sent: %+v", got)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header")
	}
}

func TestListAgents(t *testing.T) {
	service := &MockWebCallService{
		AgentTypesFunc:  func() []string { return []string{"consultant", "sales", "support"} },
		AgentLabelsFunc: func() map[string]string { return map[string]string{"consultant": "Talk to Advisor"} },
	}
	handler := newServer(testConfig("development"), service)

	w := doRequest(handler, http.MethodGet, "/api/agents", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	response := decode(t, w)
	if response["object"] != "list" || response["default"] != "support" {
		t.Errorf("Unexpected response %v", response)
	}
	if data, _ := response["data"].([]interface{}); len(data) != 3 {
		t.Errorf("Expected 3 agent types, got %v", response["data"])
	}
	if labels, _ := response["labels"].(map[string]interface{}); labels["consultant"] != "Talk to Advisor" {
		t.Errorf("Expected consultant label, got %v", response["labels"])
	}
}

func TestCoreRoutes(t *testing.T) {
	handler := newServer(testConfig("development"), &MockWebCallService{})

	for _, path := range []string{"/", "/healthz", "/readyz", "/metrics"} {
		if w := doRequest(handler, http.MethodGet, path, ""); w.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", path, w.Code)
		}
	}
	if w := doRequest(handler, http.MethodGet, "/nope", ""); w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}
