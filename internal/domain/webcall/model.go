package webcall

// AnonymousUserID is forwarded when the caller does not identify itself.
const AnonymousUserID = "anonymous"

// CreateWebCallRequest is a single call request. It lives for one HTTP request.
type CreateWebCallRequest struct {
	AgentType string
	UserID    string
	Metadata  map[string]any
}

// WebCall is the vendor-issued session token for one call.
// It is handed to the caller and never stored.
type WebCall struct {
	AccessToken string `json:"access_token"`
	CallID      string `json:"call_id"`
}

// VendorCallParams is the outbound payload for the vendor's session-creation endpoint.
type VendorCallParams struct {
	AgentID  string         `json:"agent_id"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
