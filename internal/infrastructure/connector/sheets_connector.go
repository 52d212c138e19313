package connector

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/MGTheTrain/description-generator/internal/domain/catalog"
	"github.com/MGTheTrain/description-generator/internal/pkg/config"
	"github.com/MGTheTrain/description-generator/internal/pkg/googlecreds"
	"github.com/MGTheTrain/description-generator/internal/pkg/logger"
)

type googleSheetConnector struct {
	service *sheets.Service
	logger  logger.Logger
}

// NewGoogleSheetConnector creates a SheetConnector authenticated with the
// service account configured in settings. The credentials file is
// materialized from the environment when absent on disk.
func NewGoogleSheetConnector(ctx context.Context, settings *config.GoogleSettings, log logger.Logger) (catalog.SheetConnector, error) {
	credsPath, err := googlecreds.EnsureCredentialsFile(settings.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve Google credentials: %w", err)
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %s: %w", credsPath, err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsScope, sheets.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service-account credentials: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	log.Info("Google Sheets connector initialized with credentials from ", credsPath)
	return &googleSheetConnector{service: service, logger: log}, nil
}

func (c *googleSheetConnector) Header(ctx context.Context, sheetID, worksheet string) ([]string, error) {
	values, err := c.fetch(ctx, sheetID, fmt.Sprintf("'%s'!1:1", worksheet))
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, nil
	}
	return values[0], nil
}

func (c *googleSheetConnector) Rows(ctx context.Context, sheetID, worksheet string) ([][]string, error) {
	return c.fetch(ctx, sheetID, fmt.Sprintf("'%s'", worksheet))
}

func (c *googleSheetConnector) UpdateCell(ctx context.Context, sheetID, worksheet string, row, col int, value string) error {
	cellRange := fmt.Sprintf("'%s'!%s%d", worksheet, columnLetters(col), row)
	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{{value}},
	}

	_, err := c.service.Spreadsheets.Values.
		Update(sheetID, cellRange, valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update cell %s: %w", cellRange, err)
	}

	return nil
}

func (c *googleSheetConnector) AppendRow(ctx context.Context, sheetID, worksheet string, values []string) error {
	row := make([]interface{}, len(values))
	for i, value := range values {
		row[i] = value
	}
	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{row},
	}

	_, err := c.service.Spreadsheets.Values.
		Append(sheetID, fmt.Sprintf("'%s'", worksheet), valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row to worksheet %s: %w", worksheet, err)
	}

	return nil
}

func (c *googleSheetConnector) fetch(ctx context.Context, sheetID, readRange string) ([][]string, error) {
	resp, err := c.service.Spreadsheets.Values.
		Get(sheetID, readRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch range %s: %w", readRange, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, rawRow := range resp.Values {
		row := make([]string, len(rawRow))
		for j, cell := range rawRow {
			row[j] = fmt.Sprint(cell)
		}
		rows[i] = row
	}

	return rows, nil
}

// columnLetters converts a 1-based column index to its A1 letter form.
func columnLetters(col int) string {
	letters := ""
	for col > 0 {
		col--
		letters = string(rune('A'+col%26)) + letters
		col /= 26
	}
	return letters
}
