package callui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/janhq/webcall-relay/internal/domain/webcall"
	"github.com/janhq/webcall-relay/internal/utils/idgen"
)

// Status lines shown by the view.
const (
	StatusConnected       = "Connected! Start speaking..."
	StatusCallEnded       = "Call ended. Choose an agent to start again."
	StatusAgentSpeaking   = "AI is speaking..."
	StatusListening       = "Listening..."
	StatusConnectionError = "Connection error. Please try again."
	StatusConnecting      = "Connecting..."
	StatusFailedToConnect = "Failed to connect. Please try again."

	LabelConnected = "Connected"
)

const (
	// DefaultSampleRate is the audio sample rate requested from the vendor.
	DefaultSampleRate = 24000
	userIDLength      = 9
)

var idleLabels = map[string]string{
	"support":    "Talk to Support",
	"sales":      "Talk to Sales",
	"consultant": "Talk to Advisor",
}

// IdleLabel returns the button label for agentType when no call is active.
func IdleLabel(agentType string) string {
	if label, ok := idleLabels[agentType]; ok {
		return label
	}
	if agentType == "" {
		return "Talk to Agent"
	}
	return "Talk to " + strings.ToUpper(agentType[:1]) + agentType[1:]
}

// GenerateUserID returns a random per-session caller id ("user_" + 9 chars).
func GenerateUserID() (string, error) {
	return idgen.GenerateSecureID("user", userIDLength)
}

// Options configures an Adapter.
type Options struct {
	// AgentTypes are the selectors that get a button.
	AgentTypes []string
	// Labels override the idle button label per selector.
	Labels map[string]string
	// UserID is sent with every call. Generated when empty.
	UserID string
	// PageURL and UserAgent are forwarded as call metadata.
	PageURL   string
	UserAgent string
}

// Adapter keeps call state and maps client events to view updates.
type Adapter struct {
	client RealtimeClient
	tokens TokenSource
	view   View
	opts   Options
	log    zerolog.Logger

	mu           sync.Mutex
	isCallActive bool
	currentAgent string
}

// NewAdapter subscribes to client and renders the idle state.
func NewAdapter(client RealtimeClient, tokens TokenSource, view View, opts Options, log zerolog.Logger) (*Adapter, error) {
	if opts.UserID == "" {
		id, err := GenerateUserID()
		if err != nil {
			return nil, fmt.Errorf("generate user id: %w", err)
		}
		opts.UserID = id
	}

	a := &Adapter{
		client: client,
		tokens: tokens,
		view:   view,
		opts:   opts,
		log:    log.With().Str("component", "callui").Logger(),
	}
	client.Subscribe(a.handleEvent)
	a.resetButtons()
	a.view.ShowCallControls(false)
	return a, nil
}

// IsCallActive reports whether a call is live.
func (a *Adapter) IsCallActive() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.isCallActive
}

// CurrentAgent returns the selector of the pending or live call.
func (a *Adapter) CurrentAgent() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentAgent
}

// UserID returns the caller id sent with token requests.
func (a *Adapter) UserID() string {
	return a.opts.UserID
}

// StartCall fetches a token for agentType and starts a call with it.
// An active call is ended first.
func (a *Adapter) StartCall(ctx context.Context, agentType string) error {
	agentType = strings.ToLower(strings.TrimSpace(agentType))

	if a.IsCallActive() {
		a.EndCall()
	}

	a.mu.Lock()
	a.currentAgent = agentType
	a.mu.Unlock()

	a.view.SetStatus(StatusConnecting)
	a.view.SetButton(agentType, LabelConnected, true)

	call, err := a.tokens.CreateWebCall(ctx, &webcall.CreateWebCallRequest{
		AgentType: agentType,
		UserID:    a.opts.UserID,
		Metadata:  a.metadata(),
	})
	if err != nil {
		return a.failStart(agentType, fmt.Errorf("create web call: %w", err))
	}

	err = a.client.StartCall(ctx, CallConfig{
		AccessToken:         call.AccessToken,
		SampleRate:          DefaultSampleRate,
		EmitRawAudioSamples: false,
	})
	if err != nil {
		return a.failStart(agentType, fmt.Errorf("start call: %w", err))
	}

	a.log.Info().Str("agent_type", agentType).Str("call_id", call.CallID).Msg("call requested")
	return nil
}

// EndCall stops the vendor call when one is active.
func (a *Adapter) EndCall() {
	if !a.IsCallActive() {
		return
	}
	a.client.StopCall()
}

func (a *Adapter) failStart(agentType string, err error) error {
	a.log.Error().Err(err).Str("agent_type", agentType).Msg("failed to start call")

	a.mu.Lock()
	a.currentAgent = ""
	a.mu.Unlock()

	a.view.SetStatus(StatusFailedToConnect)
	a.resetButtons()
	return err
}

func (a *Adapter) metadata() map[string]any {
	metadata := map[string]any{}
	if a.opts.PageURL != "" {
		metadata["page_url"] = a.opts.PageURL
	}
	if a.opts.UserAgent != "" {
		metadata["user_agent"] = a.opts.UserAgent
	}
	return metadata
}

func (a *Adapter) handleEvent(event Event) {
	switch event.Type {
	case EventCallStarted:
		a.mu.Lock()
		a.isCallActive = true
		a.mu.Unlock()
		a.view.SetStatus(StatusConnected)
		a.view.ShowCallControls(true)

	case EventCallEnded:
		a.markEnded()
		a.view.SetStatus(StatusCallEnded)

	case EventAgentStartTalking:
		a.view.SetStatus(StatusAgentSpeaking)

	case EventAgentStopTalking:
		a.view.SetStatus(StatusListening)

	case EventUpdate:
		if len(event.Transcript) > 0 {
			a.view.SetTranscript(FormatTranscript(event.Transcript))
		}

	case EventError:
		a.log.Error().Err(event.Err).Msg("call error")
		a.view.SetStatus(StatusConnectionError)
		a.client.StopCall()
		a.markEnded()

	default:
		a.log.Debug().Str("event_type", string(event.Type)).Msg("ignoring event")
	}
}

// markEnded clears call state and restores the idle controls.
func (a *Adapter) markEnded() {
	a.mu.Lock()
	a.isCallActive = false
	a.currentAgent = ""
	a.mu.Unlock()

	a.view.ShowCallControls(false)
	a.resetButtons()
}

func (a *Adapter) resetButtons() {
	for _, agentType := range a.opts.AgentTypes {
		label, ok := a.opts.Labels[agentType]
		if !ok {
			label = IdleLabel(agentType)
		}
		a.view.SetButton(agentType, label, false)
	}
}
