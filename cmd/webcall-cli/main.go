package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "webcall-cli",
	Short: "Webcall CLI - talk to a webcall relay from the terminal",
	Long: `webcall-cli drives a webcall relay the way the browser page does.

It exchanges an agent selection for a call token and joins the call room,
printing status changes and the live transcript.

Examples:
  # List the agents the relay accepts
  webcall-cli agents

  # Print a raw token exchange
  webcall-cli token sales --output yaml

  # Join a call and follow its events
  webcall-cli call support

  # Print the agents file schema
  webcall-cli schema`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(agentsCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(schemaCmd)

	rootCmd.PersistentFlags().String("server", envOr("WEBCALL_SERVER_URL", "http://localhost:8190"), "Relay base URL")
	rootCmd.PersistentFlags().Duration("timeout", 15*time.Second, "Request timeout")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
