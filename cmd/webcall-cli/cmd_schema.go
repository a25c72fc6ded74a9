package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/janhq/webcall-relay/internal/config"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the agents file JSON Schema",
	Long:  `Print the JSON Schema for the YAML file referenced by AGENTS_FILE.`,
	RunE:  runSchema,
}

func init() {
	schemaCmd.Flags().StringP("file", "f", "", "Write the schema to this path instead of stdout")
}

func runSchema(cmd *cobra.Command, args []string) error {
	data, err := config.AgentCatalogSchema()
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s\n", path)
	return nil
}
