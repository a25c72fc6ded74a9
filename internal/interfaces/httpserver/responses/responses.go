// Package responses contains HTTP response helpers for the webcall-relay.
// Endpoint-specific response types are in subpackages.
package responses

import "github.com/janhq/webcall-relay/internal/utils/platformerrors"

// ErrorResponse is the error envelope, re-exported for swagger annotations.
type ErrorResponse = platformerrors.HTTPErrorResponse
