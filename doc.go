// Package webcallrelay implements the webcall relay service, which lets
// browsers start Retell AI voice calls without holding the Retell API key.
//
// The service provides:
//   - Token exchange for a selected agent (POST /api/create-web-call)
//   - Agent selector listing (GET /api/agents)
//   - A call UI adapter driving a LiveKit-backed call client
//   - webcall-cli for token exchange and terminal calls
//
// For more information, see the DESIGN.md file.
package webcallrelay
