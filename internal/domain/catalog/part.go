package catalog

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Worksheet header names the generator expects in row 1.
const (
	HeaderArticle     = "Артикул"
	HeaderName        = "Наименование"
	HeaderDescription = "Описание"
)

// Part is one product row of the catalog worksheet.
type Part struct {
	Row         int
	Article     string
	Name        string
	Description string
}

// Complete reports whether the row carries both an article and a name.
// Incomplete rows are skipped during generation.
func (p *Part) Complete() bool {
	return p.Article != "" && p.Name != ""
}

// HasDescription reports whether the description cell is already filled.
func (p *Part) HasDescription() bool {
	return p.Description != ""
}

// SheetColumns holds the 1-based column indices resolved from the header row.
type SheetColumns struct {
	Article     int
	Name        int
	Description int
}

// ResolveColumns maps the header row onto SheetColumns. Header cells are
// trimmed before matching. A missing header is an error naming the header.
func ResolveColumns(header []string) (*SheetColumns, error) {
	headerMap := make(map[string]int, len(header))
	for idx, name := range header {
		headerMap[strings.TrimSpace(name)] = idx + 1
	}

	columns := &SheetColumns{}
	for _, want := range []struct {
		name string
		dest *int
	}{
		{HeaderArticle, &columns.Article},
		{HeaderName, &columns.Name},
		{HeaderDescription, &columns.Description},
	} {
		idx, ok := headerMap[want.name]
		if !ok {
			return nil, fmt.Errorf("header %q not found in the first row", want.name)
		}
		*want.dest = idx
	}

	return columns, nil
}

// PartAt extracts the part at the given 1-based row index from raw sheet
// values. Cells beyond the row's length read as empty.
func (c *SheetColumns) PartAt(row []string, index int) *Part {
	return &Part{
		Row:         index,
		Article:     cellAt(row, c.Article),
		Name:        cellAt(row, c.Name),
		Description: cellAt(row, c.Description),
	}
}

func cellAt(row []string, col int) string {
	if col < 1 || col > len(row) {
		return ""
	}
	return strings.TrimSpace(row[col-1])
}

// SheetRange identifies the worksheet slice a generation run operates on.
// StartRow and EndRow are 1-based and inclusive; EndRow 0 means "to the end".
type SheetRange struct {
	SheetID   string `validate:"required"`
	Worksheet string `validate:"required"`
	StartRow  int    `validate:"min=1"`
	EndRow    int    `validate:"min=0"`
}

// Validate checks the range for structural soundness.
func (r *SheetRange) Validate() error {
	validate := validator.New()

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for SheetRange: %w", err)
	}

	if r.EndRow > 0 && r.EndRow < r.StartRow {
		return fmt.Errorf("end row %d precedes start row %d", r.EndRow, r.StartRow)
	}

	return nil
}
