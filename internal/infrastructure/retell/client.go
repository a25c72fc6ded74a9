// Package retell is a client for the Retell AI REST API.
package retell

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/janhq/webcall-relay/internal/domain/webcall"
	"github.com/janhq/webcall-relay/internal/infrastructure/metrics"
	"github.com/janhq/webcall-relay/pkg/telemetry"
)

const createWebCallPath = "/v2/create-web-call"

// Client implements webcall.VendorClient.
type Client struct {
	httpClient *resty.Client
	apiKey     string
	sanitizer  *telemetry.Sanitizer
	tracer     trace.Tracer
}

var _ webcall.VendorClient = (*Client)(nil)

// NewClient creates a Resty-backed Retell client.
func NewClient(baseURL, apiKey string, timeout time.Duration, sanitizer *telemetry.Sanitizer) *Client {
	return &Client{
		httpClient: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetHeader("Content-Type", "application/json").
			SetHeader("User-Agent", "webcall-relay/1.0").
			SetTimeout(timeout),
		apiKey:    apiKey,
		sanitizer: sanitizer,
		tracer:    otel.Tracer("retell"),
	}
}

type createWebCallResponse struct {
	CallID      string `json:"call_id"`
	AccessToken string `json:"access_token"`
	AgentID     string `json:"agent_id"`
	CallStatus  string `json:"call_status"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// CreateWebCall calls POST /v2/create-web-call.
func (c *Client) CreateWebCall(ctx context.Context, params webcall.VendorCallParams) (*webcall.WebCall, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return nil, webcall.ErrAPIKeyMissing
	}

	ctx, span := c.tracer.Start(ctx, "retell.create_web_call",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("retell.agent_id", params.AgentID)),
	)
	defer span.End()

	start := time.Now()
	var result createWebCallResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetBody(params).
		SetResult(&result).
		Post(createWebCallPath)
	metrics.ObserveVendorRequest(time.Since(start), statusOf(resp, err))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, fmt.Errorf("retell create web call: %s", c.sanitizer.RedactSecrets(err.Error(), c.apiKey))
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))

	if resp.IsError() {
		vendorErr := &webcall.VendorError{
			StatusCode: resp.StatusCode(),
			Message:    c.sanitizer.RedactSecrets(errorMessage(resp), c.apiKey),
		}
		span.SetStatus(codes.Error, vendorErr.Error())
		return nil, vendorErr
	}

	if result.AccessToken == "" || result.CallID == "" {
		err := errors.New("retell create web call: response missing access_token or call_id")
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("retell.call_id", result.CallID))
	return &webcall.WebCall{
		AccessToken: result.AccessToken,
		CallID:      result.CallID,
	}, nil
}

func errorMessage(resp *resty.Response) string {
	var body errorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	if text := strings.TrimSpace(resp.String()); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode())
}

func statusOf(resp *resty.Response, err error) string {
	if err != nil || resp == nil {
		return "transport_error"
	}
	return fmt.Sprintf("%d", resp.StatusCode())
}
