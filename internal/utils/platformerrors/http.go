package platformerrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GenericDetails is returned in place of error text outside development.
const GenericDetails = "Internal server error"

// HTTPErrorResponse is the error envelope returned by every endpoint.
type HTTPErrorResponse struct {
	Error          string   `json:"error"`
	Details        string   `json:"details,omitempty"`
	AvailableTypes []string `json:"available_types,omitempty"`
	VendorStatus   int      `json:"vendor_status,omitempty"`
	RequestID      string   `json:"request_id,omitempty"`
}

// Write writes an error envelope with the given status.
func Write(c *gin.Context, status int, resp HTTPErrorResponse) {
	if resp.RequestID == "" {
		resp.RequestID = requestID(c)
	}
	c.AbortWithStatusJSON(status, resp)
}

// WriteValidationError writes a 400 Bad Request response.
func WriteValidationError(c *gin.Context, message, details string) {
	Write(c, http.StatusBadRequest, HTTPErrorResponse{Error: message, Details: details})
}

// WriteInvalidAgent writes a 400 listing the selectors a client may use.
func WriteInvalidAgent(c *gin.Context, details string, available []string) {
	Write(c, http.StatusBadRequest, HTTPErrorResponse{
		Error:          "Invalid agent type",
		Details:        details,
		AvailableTypes: available,
	})
}

// WriteMethodNotAllowed writes a 405 response.
func WriteMethodNotAllowed(c *gin.Context) {
	Write(c, http.StatusMethodNotAllowed, HTTPErrorResponse{Error: "Method not allowed"})
}

// WriteNotFound writes a 404 response.
func WriteNotFound(c *gin.Context) {
	Write(c, http.StatusNotFound, HTTPErrorResponse{Error: "Not found"})
}

// WriteMisconfigured writes a 500 for server-side configuration problems.
func WriteMisconfigured(c *gin.Context, details string) {
	Write(c, http.StatusInternalServerError, HTTPErrorResponse{Error: "Server misconfigured", Details: details})
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(c *gin.Context, message, details string) {
	Write(c, http.StatusInternalServerError, HTTPErrorResponse{Error: message, Details: details})
}

func requestID(c *gin.Context) string {
	if id, ok := c.Get("request_id"); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
