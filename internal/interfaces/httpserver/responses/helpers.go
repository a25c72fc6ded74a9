package responses

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/janhq/webcall-relay/internal/domain/webcall"
	"github.com/janhq/webcall-relay/internal/utils/platformerrors"
)

const failedToCreateCall = "Failed to create call"

// HandleError maps web call errors to the error envelope. Unexpected error
// text is only exposed when exposeDetails is set.
func HandleError(c *gin.Context, err error, exposeDetails bool, log zerolog.Logger) {
	var invalid *webcall.InvalidAgentError
	switch {
	case errors.As(err, &invalid):
		platformerrors.WriteInvalidAgent(c, fmt.Sprintf("unknown agent type %q", invalid.AgentType), invalid.AvailableTypes)
		return
	case errors.Is(err, webcall.ErrAgentNotConfigured):
		platformerrors.WriteMisconfigured(c, err.Error())
		return
	case errors.Is(err, webcall.ErrAPIKeyMissing):
		platformerrors.WriteMisconfigured(c, err.Error())
		return
	}

	if vendorErr, ok := webcall.IsVendorError(err); ok {
		platformerrors.Write(c, VendorStatus(vendorErr.StatusCode), platformerrors.HTTPErrorResponse{
			Error:        failedToCreateCall,
			Details:      vendorErr.Message,
			VendorStatus: vendorErr.StatusCode,
		})
		return
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unexpected error")
	details := platformerrors.GenericDetails
	if exposeDetails && err != nil {
		details = err.Error()
	}
	platformerrors.WriteInternalError(c, failedToCreateCall, details)
}

// VendorStatus relays vendor 5xx statuses as-is. Vendor 4xx means this
// server sent a bad request or credential, which is a gateway failure for
// the caller.
func VendorStatus(status int) int {
	if status >= http.StatusInternalServerError && status <= 599 {
		return status
	}
	return http.StatusBadGateway
}

// FailureReason returns a bounded metric label for err.
func FailureReason(err error) string {
	var invalid *webcall.InvalidAgentError
	switch {
	case errors.As(err, &invalid):
		return "invalid_agent"
	case errors.Is(err, webcall.ErrAgentNotConfigured), errors.Is(err, webcall.ErrAPIKeyMissing):
		return "misconfigured"
	}
	if _, ok := webcall.IsVendorError(err); ok {
		return "vendor_error"
	}
	return "internal"
}
