// Package main is the entry point for the descgen-cli application.
// It initializes the root command and registers the generation and preview
// sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/MGTheTrain/description-generator/cmd/descgen-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "descgen-cli",
		Short: "Catalog description generation CLI tool",
		Long: `descgen-cli generates product descriptions for catalog rows stored in a
Google Sheets worksheet. Rows are read, descriptions are produced with an LLM
and written back into the description column.

Required environment variables:
- GROQ_API_KEY (or the legacy QROQ_TOKEN)
- Google service account credentials, either as a google_credentials.json file
  or via GOOGLE_CREDENTIALS_JSON / GOOGLE_CREDENTIALS_BASE64.
OPENROUTER_API_KEY is optional and enables the fallback provider.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitGenerateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize generate commands: %w", err)
	}

	if err := commands.InitPreviewCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize preview commands: %w", err)
	}

	return nil
}
