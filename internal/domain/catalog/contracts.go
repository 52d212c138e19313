package catalog

import "context"

// SheetConnector is an interface for interacting with a spreadsheet backend.
type SheetConnector interface {
	// Header fetches the first row of the worksheet.
	Header(ctx context.Context, sheetID, worksheet string) ([]string, error)

	// Rows fetches all rows of the worksheet, header included.
	Rows(ctx context.Context, sheetID, worksheet string) ([][]string, error)

	// UpdateCell writes value into the cell at the 1-based row/column position.
	UpdateCell(ctx context.Context, sheetID, worksheet string, row, col int, value string) error

	// AppendRow appends values as a new row after the last filled row.
	AppendRow(ctx context.Context, sheetID, worksheet string, values []string) error
}

// SheetPreview is a small window into a worksheet for the admin UI.
type SheetPreview struct {
	Headers   []string
	Rows      [][]string
	TotalRows int
}

// PreviewService exposes read-only worksheet previews.
type PreviewService interface {
	// Preview returns the header row, the first data rows and the total data
	// row count. sheetInput may be a bare sheet ID or a full URL.
	Preview(ctx context.Context, sheetInput, worksheet string) (*SheetPreview, error)
}
