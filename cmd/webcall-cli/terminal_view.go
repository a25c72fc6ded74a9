package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/janhq/webcall-relay/internal/callui"
)

// terminalView prints adapter state as lines of text.
type terminalView struct {
	mu         sync.Mutex
	out        io.Writer
	transcript string
	ended      chan struct{}
	endOnce    sync.Once
}

var _ callui.View = (*terminalView)(nil)

func newTerminalView(out io.Writer) *terminalView {
	return &terminalView{out: out, ended: make(chan struct{})}
}

// Ended is closed once the call has ended or failed to start.
func (v *terminalView) Ended() <-chan struct{} {
	return v.ended
}

func (v *terminalView) SetStatus(status string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(v.out, "[status] %s\n", status)

	if status == callui.StatusCallEnded || status == callui.StatusFailedToConnect {
		v.endOnce.Do(func() { close(v.ended) })
	}
}

// SetTranscript prints only the lines added since the last update.
func (v *terminalView) SetTranscript(transcript string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	added := transcript
	if strings.HasPrefix(transcript, v.transcript) {
		added = strings.TrimPrefix(transcript, v.transcript)
		added = strings.TrimPrefix(added, "\n")
	}
	v.transcript = transcript
	if added == "" {
		return
	}
	for _, line := range strings.Split(added, "\n") {
		fmt.Fprintf(v.out, "  %s\n", line)
	}
}

func (v *terminalView) ShowCallControls(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if visible {
		fmt.Fprintln(v.out, "[controls] press Ctrl+C to end the call")
	}
}

func (v *terminalView) SetButton(agentType, label string, active bool) {
	if !active {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(v.out, "[%s] %s\n", agentType, label)
}

func newTokenSource(cmd *cobra.Command) (*callui.HTTPTokenSource, error) {
	server, _ := cmd.Flags().GetString("server")
	if server == "" {
		return nil, fmt.Errorf("--server is required")
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")
	return callui.NewHTTPTokenSource(server, timeout), nil
}
