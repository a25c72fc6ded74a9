package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/janhq/webcall-relay/internal/callui"
	"github.com/janhq/webcall-relay/internal/infrastructure/livekit"
)

var callCmd = &cobra.Command{
	Use:   "call [agent_type]",
	Short: "Join a web call",
	Long: `Request a token for an agent and join the call room.

Status changes and the live transcript are printed until the call ends or
the command is interrupted. Audio is not captured or played.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCall,
}

func init() {
	callCmd.Flags().String("livekit-url", envOr("RETELL_LIVEKIT_URL", livekit.DefaultRetellURL), "LiveKit URL hosting the call")
	callCmd.Flags().String("user-id", "", "Caller id (generated when empty)")
	callCmd.Flags().String("page-url", "", "page_url metadata sent with the call")
	callCmd.Flags().Duration("max-duration", 0, "End the call after this long (0 = no limit)")
}

func runCall(cmd *cobra.Command, args []string) error {
	source, err := newTokenSource(cmd)
	if err != nil {
		return err
	}

	var labels map[string]string
	agentType := ""
	if len(args) > 0 {
		agentType = strings.ToLower(args[0])
	}
	if agents, err := source.ListAgents(cmd.Context()); err == nil {
		labels = agents.Labels
		if agentType == "" {
			agentType = agents.Default
		}
	}

	log := newLogger(cmd)
	livekitURL, _ := cmd.Flags().GetString("livekit-url")
	userID, _ := cmd.Flags().GetString("user-id")
	pageURL, _ := cmd.Flags().GetString("page-url")
	maxDuration, _ := cmd.Flags().GetDuration("max-duration")

	view := newTerminalView(cmd.OutOrStdout())
	client := livekit.NewRealtimeClient(livekitURL, log)
	adapter, err := callui.NewAdapter(client, source, view, callui.Options{
		AgentTypes: []string{agentType},
		Labels:     labels,
		UserID:     userID,
		PageURL:    pageURL,
		UserAgent:  "webcall-cli/" + version,
	}, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := adapter.StartCall(ctx, agentType); err != nil {
		return err
	}

	var deadline <-chan time.Time
	if maxDuration > 0 {
		timer := time.NewTimer(maxDuration)
		defer timer.Stop()
		deadline = timer.C
	}

	select {
	case <-view.Ended():
		return nil
	case <-ctx.Done():
	case <-deadline:
	}

	adapter.EndCall()
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

func newLogger(cmd *cobra.Command) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
