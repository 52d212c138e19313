package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/description-generator/internal/domain/catalog"
	"github.com/MGTheTrain/description-generator/internal/pkg/logger"
	"github.com/MGTheTrain/description-generator/internal/pkg/textutil"
)

// previewRowCount caps how many data rows a preview returns.
const previewRowCount = 9

// sheetPreviewService implements the PreviewService interface
type sheetPreviewService struct {
	sheetConnector catalog.SheetConnector
	logger         logger.Logger
}

// NewSheetPreviewService creates a new instance of PreviewService
func NewSheetPreviewService(sheetConnector catalog.SheetConnector, logger logger.Logger) (catalog.PreviewService, error) {
	return &sheetPreviewService{
		sheetConnector: sheetConnector,
		logger:         logger,
	}, nil
}

// Preview returns the header row, the first data rows and the total data row
// count of the worksheet.
func (s *sheetPreviewService) Preview(ctx context.Context, sheetInput, worksheet string) (*catalog.SheetPreview, error) {
	sheetID, err := textutil.NormalizeSheetID(sheetInput)
	if err != nil {
		return nil, err
	}

	rows, err := s.sheetConnector.Rows(ctx, sheetID, worksheet)
	if err != nil {
		return nil, fmt.Errorf("failed to load worksheet %s: %w", worksheet, err)
	}

	preview := &catalog.SheetPreview{
		Headers: []string{},
		Rows:    [][]string{},
	}
	if len(rows) == 0 {
		return preview, nil
	}

	preview.Headers = rows[0]
	preview.TotalRows = len(rows) - 1

	end := 1 + previewRowCount
	if end > len(rows) {
		end = len(rows)
	}
	preview.Rows = rows[1:end]

	s.logger.Info("Previewed worksheet ", worksheet, " with ", preview.TotalRows, " data rows")
	return preview, nil
}
