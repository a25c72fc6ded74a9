package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List agent types",
	Long:  `List the agent selectors the relay accepts and its default.`,
	RunE:  runAgents,
}

func runAgents(cmd *cobra.Command, args []string) error {
	source, err := newTokenSource(cmd)
	if err != nil {
		return err
	}

	agents, err := source.ListAgents(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Available agents:")
	for _, agentType := range agents.Data {
		marker := " "
		if agentType == agents.Default {
			marker = "*"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", marker, agentType)
	}
	return nil
}
