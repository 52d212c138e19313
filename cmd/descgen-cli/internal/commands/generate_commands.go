package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MGTheTrain/description-generator/internal/app"
	"github.com/MGTheTrain/description-generator/internal/domain/catalog"
	"github.com/MGTheTrain/description-generator/internal/domain/generation"
	"github.com/MGTheTrain/description-generator/internal/infrastructure/connector"
	"github.com/MGTheTrain/description-generator/internal/pkg/config"
	"github.com/MGTheTrain/description-generator/internal/pkg/logger"
	"github.com/MGTheTrain/description-generator/internal/pkg/textutil"

	"github.com/spf13/cobra"
)

// generateFlags holds the parsed flag values of the generate command.
type generateFlags struct {
	sheetInput        string
	worksheet         string
	startRow          int
	endRow            int
	limit             int
	sleepSeconds      float64
	maxRetries        int
	retryDelaySeconds float64
	force             bool
	dryRun            bool
	logLevel          string
}

func parseGenerateFlags(cmd *cobra.Command) (*generateFlags, error) {
	flags := &generateFlags{}
	var err error

	if flags.sheetInput, err = cmd.Flags().GetString("sheet-id"); err != nil {
		return nil, fmt.Errorf("invalid sheet-id flag: %w", err)
	}
	if flags.worksheet, err = cmd.Flags().GetString("worksheet"); err != nil {
		return nil, fmt.Errorf("invalid worksheet flag: %w", err)
	}
	if flags.startRow, err = cmd.Flags().GetInt("start-row"); err != nil {
		return nil, fmt.Errorf("invalid start-row flag: %w", err)
	}
	if flags.endRow, err = cmd.Flags().GetInt("end-row"); err != nil {
		return nil, fmt.Errorf("invalid end-row flag: %w", err)
	}
	if flags.limit, err = cmd.Flags().GetInt("limit"); err != nil {
		return nil, fmt.Errorf("invalid limit flag: %w", err)
	}
	if flags.sleepSeconds, err = cmd.Flags().GetFloat64("sleep"); err != nil {
		return nil, fmt.Errorf("invalid sleep flag: %w", err)
	}
	if flags.maxRetries, err = cmd.Flags().GetInt("max-retries"); err != nil {
		return nil, fmt.Errorf("invalid max-retries flag: %w", err)
	}
	if flags.retryDelaySeconds, err = cmd.Flags().GetFloat64("retry-delay"); err != nil {
		return nil, fmt.Errorf("invalid retry-delay flag: %w", err)
	}
	if flags.force, err = cmd.Flags().GetBool("force"); err != nil {
		return nil, fmt.Errorf("invalid force flag: %w", err)
	}
	if flags.dryRun, err = cmd.Flags().GetBool("dry-run"); err != nil {
		return nil, fmt.Errorf("invalid dry-run flag: %w", err)
	}
	if flags.logLevel, err = cmd.Flags().GetString("log-level"); err != nil {
		return nil, fmt.Errorf("invalid log-level flag: %w", err)
	}

	return flags, nil
}

// GenerateCommandHandler encapsulates logic for running a generation pass via CLI.
type GenerateCommandHandler struct {
	logger logger.Logger
}

// NewGenerateCommandHandler initializes and returns a GenerateCommandHandler instance.
func NewGenerateCommandHandler() (*GenerateCommandHandler, error) {
	return &GenerateCommandHandler{}, nil
}

// GenerateCmd processes a row range of a worksheet and fills in missing descriptions
func (commandHandler *GenerateCommandHandler) GenerateCmd(cmd *cobra.Command, _ []string) error {
	flags, err := parseGenerateFlags(cmd)
	if err != nil {
		return err
	}

	commandHandler.logger, err = setupLogger(flags.logLevel)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	sheetID, err := textutil.NormalizeSheetID(flags.sheetInput)
	if err != nil {
		return err
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if flags.maxRetries > 0 {
		cfg.Groq.MaxRetries = flags.maxRetries
	}
	if flags.retryDelaySeconds > 0 {
		cfg.Groq.RetryDelay = time.Duration(flags.retryDelaySeconds * float64(time.Second))
	}

	// Ctrl-C cancels the run after the current row
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runService, err := commandHandler.buildRunService(ctx, cfg)
	if err != nil {
		return err
	}

	params := generation.ProcessParams{
		Range: catalog.SheetRange{
			SheetID:   sheetID,
			Worksheet: flags.worksheet,
			StartRow:  flags.startRow,
			EndRow:    flags.endRow,
		},
		Force:  flags.force,
		DryRun: flags.dryRun,
		Limit:  flags.limit,
		Sleep:  time.Duration(flags.sleepSeconds * float64(time.Second)),
	}

	result, err := runService.Process(ctx, params, app.NewLoggerSink(commandHandler.logger))
	commandHandler.logger.Info("Processed rows: ", result.Processed)
	return err
}

func (commandHandler *GenerateCommandHandler) buildRunService(ctx context.Context, cfg *config.CliConfig) (generation.RunService, error) {
	sheetConnector, err := connector.NewGoogleSheetConnector(ctx, &cfg.Google, commandHandler.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Sheets connector: %w", err)
	}

	groqConnector, err := connector.NewGroqConnector(&cfg.Groq, commandHandler.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Groq connector: %w", err)
	}

	var openRouterConnector generation.ChatClient
	if cfg.OpenRouter.APIKey != "" {
		openRouterConnector, err = connector.NewOpenRouterConnector(&cfg.OpenRouter, commandHandler.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenRouter connector: %w", err)
		}
	}

	generator, err := app.NewDescriptionGenerator(groqConnector, openRouterConnector, &cfg.Groq, cfg.OpenRouter.Model, commandHandler.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create description generator: %w", err)
	}

	return app.NewSheetRunService(sheetConnector, generator, commandHandler.logger)
}

// InitGenerateCommands registers the generate command with the root command.
func InitGenerateCommands(rootCmd *cobra.Command) error {
	handler, err := NewGenerateCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create generate command handler: %w", err)
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate descriptions for a worksheet row range",
		RunE:  handler.GenerateCmd,
	}
	generateCmd.Flags().String("sheet-id", "", "Spreadsheet ID or full Google Sheets URL")
	generateCmd.Flags().String("worksheet", "", "Worksheet name")
	generateCmd.Flags().Int("start-row", 2, "First data row to process (1-based)")
	generateCmd.Flags().Int("end-row", 100, "Last data row to process, 0 processes to the end")
	generateCmd.Flags().Int("limit", 0, "Cap on the number of processed rows, 0 means no cap")
	generateCmd.Flags().Float64("sleep", 0, "Pause between rows in seconds")
	generateCmd.Flags().Int("max-retries", 0, "Attempts per model, 0 keeps the configured value")
	generateCmd.Flags().Float64("retry-delay", 0, "Delay between attempts in seconds, 0 keeps the configured value")
	generateCmd.Flags().Bool("force", false, "Regenerate rows that already have a description")
	generateCmd.Flags().Bool("dry-run", false, "Generate without writing back to the sheet")
	generateCmd.Flags().String("log-level", "info", "Log level (debug, info, warning, error)")
	if err := generateCmd.MarkFlagRequired("sheet-id"); err != nil {
		return fmt.Errorf("failed to mark sheet-id flag required: %w", err)
	}
	if err := generateCmd.MarkFlagRequired("worksheet"); err != nil {
		return fmt.Errorf("failed to mark worksheet flag required: %w", err)
	}

	rootCmd.AddCommand(generateCmd)
	return nil
}
