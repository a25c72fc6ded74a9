package webcall

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAgentNotConfigured is returned when a known selector has no agent id.
	ErrAgentNotConfigured = errors.New("agent not configured")
	// ErrAPIKeyMissing is returned when the vendor API key is not set.
	ErrAPIKeyMissing = errors.New("vendor api key not configured")
)

// InvalidAgentError is returned for a selector that is not in the registry.
type InvalidAgentError struct {
	AgentType      string
	AvailableTypes []string
}

func (e *InvalidAgentError) Error() string {
	return fmt.Sprintf("invalid agent type %q (available: %s)", e.AgentType, strings.Join(e.AvailableTypes, ", "))
}

// VendorError is a failed response from the vendor API.
// Message has already been scrubbed of credentials.
type VendorError struct {
	StatusCode int
	Message    string
}

func (e *VendorError) Error() string {
	return fmt.Sprintf("vendor api error (status %d): %s", e.StatusCode, e.Message)
}

// IsVendorError reports whether err wraps a *VendorError.
func IsVendorError(err error) (*VendorError, bool) {
	var vendorErr *VendorError
	if errors.As(err, &vendorErr) {
		return vendorErr, true
	}
	return nil, false
}
