package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/MGTheTrain/description-generator/internal/app"
	"github.com/MGTheTrain/description-generator/internal/infrastructure/connector"
	"github.com/MGTheTrain/description-generator/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// PreviewCommandHandler encapsulates logic for previewing worksheet contents via CLI.
type PreviewCommandHandler struct {
	logger logger.Logger
}

// NewPreviewCommandHandler initializes and returns a PreviewCommandHandler instance.
func NewPreviewCommandHandler() (*PreviewCommandHandler, error) {
	return &PreviewCommandHandler{}, nil
}

// PreviewCmd prints the header row and the first data rows of a worksheet
func (commandHandler *PreviewCommandHandler) PreviewCmd(cmd *cobra.Command, _ []string) error {
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return fmt.Errorf("invalid log-level flag: %w", err)
	}
	commandHandler.logger, err = setupLogger(logLevel)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	sheetInput, err := cmd.Flags().GetString("sheet-id")
	if err != nil {
		return fmt.Errorf("invalid sheet-id flag: %w", err)
	}
	worksheet, err := cmd.Flags().GetString("worksheet")
	if err != nil {
		return fmt.Errorf("invalid worksheet flag: %w", err)
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	ctx := context.Background()
	sheetConnector, err := connector.NewGoogleSheetConnector(ctx, &cfg.Google, commandHandler.logger)
	if err != nil {
		return err
	}

	previewService, err := app.NewSheetPreviewService(sheetConnector, commandHandler.logger)
	if err != nil {
		return err
	}

	preview, err := previewService.Preview(ctx, sheetInput, worksheet)
	if err != nil {
		return err
	}

	fmt.Println(strings.Join(preview.Headers, " | "))
	for _, row := range preview.Rows {
		fmt.Println(strings.Join(row, " | "))
	}
	commandHandler.logger.Info("Total data rows: ", preview.TotalRows)
	return nil
}

// InitPreviewCommands registers the preview command with the root command.
func InitPreviewCommands(rootCmd *cobra.Command) error {
	handler, err := NewPreviewCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create preview command handler: %w", err)
	}

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the header and first rows of a worksheet",
		RunE:  handler.PreviewCmd,
	}
	previewCmd.Flags().String("sheet-id", "", "Spreadsheet ID or full Google Sheets URL")
	previewCmd.Flags().String("worksheet", "", "Worksheet name")
	previewCmd.Flags().String("log-level", "info", "Log level (debug, info, warning, error)")
	if err := previewCmd.MarkFlagRequired("sheet-id"); err != nil {
		return fmt.Errorf("failed to mark sheet-id flag required: %w", err)
	}
	if err := previewCmd.MarkFlagRequired("worksheet"); err != nil {
		return fmt.Errorf("failed to mark worksheet flag required: %w", err)
	}

	rootCmd.AddCommand(previewCmd)
	return nil
}
