// Package callui drives a voice-call UI from a vendor real-time client.
package callui

import (
	"context"
	"fmt"
	"strings"

	"github.com/janhq/webcall-relay/internal/domain/webcall"
)

// EventType identifies a real-time client event.
type EventType string

const (
	EventCallStarted       EventType = "call_started"
	EventCallEnded         EventType = "call_ended"
	EventAgentStartTalking EventType = "agent_start_talking"
	EventAgentStopTalking  EventType = "agent_stop_talking"
	EventUpdate            EventType = "update"
	EventError             EventType = "error"
)

// TranscriptEntry is one utterance of a live transcript.
type TranscriptEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Event is emitted by a RealtimeClient.
type Event struct {
	Type       EventType
	Transcript []TranscriptEntry
	Err        error
}

// FormatTranscript renders entries one per line as "role: content".
func FormatTranscript(entries []TranscriptEntry) string {
	var b strings.Builder
	for i, entry := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", entry.Role, entry.Content)
	}
	return b.String()
}

// CallConfig is handed to the real-time client when a call starts.
type CallConfig struct {
	AccessToken         string
	SampleRate          int
	EmitRawAudioSamples bool
}

// RealtimeClient is the vendor SDK surface the adapter needs.
// StopCall must emit EventCallEnded before returning when a call was live.
type RealtimeClient interface {
	StartCall(ctx context.Context, cfg CallConfig) error
	StopCall()
	Subscribe(handler func(Event))
}

// TokenSource exchanges an agent selection for a per-call access token.
type TokenSource interface {
	CreateWebCall(ctx context.Context, req *webcall.CreateWebCallRequest) (*webcall.WebCall, error)
}

// View renders adapter state.
type View interface {
	SetStatus(status string)
	SetTranscript(transcript string)
	ShowCallControls(visible bool)
	SetButton(agentType, label string, active bool)
}
