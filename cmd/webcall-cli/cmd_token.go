package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/janhq/webcall-relay/internal/callui"
	"github.com/janhq/webcall-relay/internal/domain/webcall"
)

var tokenCmd = &cobra.Command{
	Use:   "token [agent_type]",
	Short: "Request a call token",
	Long:  `Run one token exchange against the relay and print the result.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().String("user-id", "", "Caller id (generated when empty)")
	tokenCmd.Flags().StringToString("metadata", nil, "Extra call metadata (key=value)")
	tokenCmd.Flags().StringP("output", "o", "json", "Output format (json|yaml)")
}

type tokenOutput struct {
	AgentType   string `json:"agent_type,omitempty" yaml:"agent_type,omitempty"`
	UserID      string `json:"user_id" yaml:"user_id"`
	AccessToken string `json:"access_token" yaml:"access_token"`
	CallID      string `json:"call_id" yaml:"call_id"`
}

func runToken(cmd *cobra.Command, args []string) error {
	source, err := newTokenSource(cmd)
	if err != nil {
		return err
	}

	agentType := ""
	if len(args) > 0 {
		agentType = args[0]
	}

	userID, _ := cmd.Flags().GetString("user-id")
	if userID == "" {
		if userID, err = callui.GenerateUserID(); err != nil {
			return err
		}
	}

	extra, _ := cmd.Flags().GetStringToString("metadata")
	metadata := make(map[string]any, len(extra))
	for key, value := range extra {
		metadata[key] = value
	}

	call, err := source.CreateWebCall(cmd.Context(), &webcall.CreateWebCallRequest{
		AgentType: agentType,
		UserID:    userID,
		Metadata:  metadata,
	})
	if err != nil {
		return err
	}

	out := tokenOutput{
		AgentType:   agentType,
		UserID:      userID,
		AccessToken: call.AccessToken,
		CallID:      call.CallID,
	}

	format, _ := cmd.Flags().GetString("output")
	switch format {
	case "yaml":
		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		defer encoder.Close()
		return encoder.Encode(out)
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
