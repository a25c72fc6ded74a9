// Package livekit joins vendor web-call rooms over LiveKit.
package livekit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	lksdk "github.com/livekit/server-sdk-go/v2"
	"github.com/rs/zerolog"

	"github.com/janhq/webcall-relay/internal/callui"
)

// DefaultRetellURL is the LiveKit deployment that hosts Retell web calls.
const DefaultRetellURL = "wss://retell-ai-4ihahnq7.livekit.cloud"

type roomConn interface {
	Disconnect()
}

type connectFunc func(url, token string, callback *lksdk.RoomCallback) (roomConn, error)

func connectToRoom(url, token string, callback *lksdk.RoomCallback) (roomConn, error) {
	room, err := lksdk.ConnectToRoomWithToken(url, token, callback, lksdk.WithAutoSubscribe(false))
	if err != nil {
		return nil, err
	}
	return room, nil
}

// RealtimeClient implements callui.RealtimeClient on a LiveKit room.
// It only carries signaling: audio is neither published nor rendered.
type RealtimeClient struct {
	url     string
	log     zerolog.Logger
	connect connectFunc

	mu      sync.Mutex
	room    roomConn
	gen     uint64
	handler func(callui.Event)
}

var _ callui.RealtimeClient = (*RealtimeClient)(nil)

// NewRealtimeClient creates a client for the LiveKit server at url.
func NewRealtimeClient(url string, log zerolog.Logger) *RealtimeClient {
	if url == "" {
		url = DefaultRetellURL
	}
	return &RealtimeClient{
		url:     url,
		log:     log.With().Str("component", "livekit").Logger(),
		connect: connectToRoom,
	}
}

// Subscribe sets the event handler.
func (c *RealtimeClient) Subscribe(handler func(callui.Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handler = handler
}

// StartCall joins the room the access token grants.
func (c *RealtimeClient) StartCall(ctx context.Context, cfg callui.CallConfig) error {
	if cfg.AccessToken == "" {
		return errors.New("access token is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	if c.room != nil {
		c.mu.Unlock()
		return errors.New("call already active")
	}
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	callback := &lksdk.RoomCallback{
		OnDisconnectedWithReason: func(reason lksdk.DisconnectionReason) {
			c.finish(gen, reason)
		},
		ParticipantCallback: lksdk.ParticipantCallback{
			OnDataPacket: func(data lksdk.DataPacket, params lksdk.DataReceiveParams) {
				packet, ok := data.(*lksdk.UserDataPacket)
				if !ok {
					return
				}
				event, ok := parseDataEvent(packet.Payload)
				if !ok {
					return
				}
				c.emitFor(gen, event)
			},
		},
	}

	room, err := c.connect(c.url, cfg.AccessToken, callback)
	if err != nil {
		return fmt.Errorf("connect to room: %w", err)
	}

	c.mu.Lock()
	if c.gen != gen || ctx.Err() != nil {
		c.mu.Unlock()
		room.Disconnect()
		if err := ctx.Err(); err != nil {
			return err
		}
		return errors.New("call superseded")
	}
	c.room = room
	c.mu.Unlock()

	c.log.Info().Int("sample_rate", cfg.SampleRate).Msg("joined call room")
	c.emit(callui.Event{Type: callui.EventCallStarted})
	return nil
}

// StopCall leaves the room and emits call_ended when a call was live.
func (c *RealtimeClient) StopCall() {
	c.mu.Lock()
	room := c.room
	if room == nil {
		c.mu.Unlock()
		return
	}
	c.room = nil
	c.gen++
	c.mu.Unlock()

	room.Disconnect()
	c.log.Info().Msg("left call room")
	c.emit(callui.Event{Type: callui.EventCallEnded})
}

// ErrConnectionFailed is carried by the error event emitted when the room
// connection drops abnormally.
var ErrConnectionFailed = errors.New("call connection failed")

// finish handles a server-side disconnect of session gen. A failed
// connection emits an error event ahead of call_ended.
func (c *RealtimeClient) finish(gen uint64, reason lksdk.DisconnectionReason) {
	c.mu.Lock()
	if c.gen != gen || c.room == nil {
		c.mu.Unlock()
		return
	}
	c.room = nil
	c.gen++
	c.mu.Unlock()

	if reason == lksdk.Failed {
		c.log.Warn().Str("reason", string(reason)).Msg("call room connection failed")
		c.emit(callui.Event{Type: callui.EventError, Err: fmt.Errorf("%w: %s", ErrConnectionFailed, reason)})
	} else {
		c.log.Info().Str("reason", string(reason)).Msg("call room closed")
	}
	c.emit(callui.Event{Type: callui.EventCallEnded})
}

func (c *RealtimeClient) emitFor(gen uint64, event callui.Event) {
	c.mu.Lock()
	current := c.gen == gen && c.room != nil
	c.mu.Unlock()
	if current {
		c.emit(event)
	}
}

func (c *RealtimeClient) emit(event callui.Event) {
	c.mu.Lock()
	handler := c.handler
	c.mu.Unlock()
	if handler != nil {
		handler(event)
	}
}

type dataEvent struct {
	EventType  string                   `json:"event_type"`
	Transcript []callui.TranscriptEntry `json:"transcript"`
}

// parseDataEvent maps a vendor data packet to an adapter event.
func parseDataEvent(payload []byte) (callui.Event, bool) {
	var raw dataEvent
	if err := json.Unmarshal(payload, &raw); err != nil {
		return callui.Event{}, false
	}

	switch callui.EventType(raw.EventType) {
	case callui.EventUpdate:
		return callui.Event{Type: callui.EventUpdate, Transcript: raw.Transcript}, true
	case callui.EventAgentStartTalking, callui.EventAgentStopTalking:
		return callui.Event{Type: callui.EventType(raw.EventType)}, true
	default:
		return callui.Event{}, false
	}
}
