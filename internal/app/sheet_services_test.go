//go:build unit
// +build unit

package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/MGTheTrain/description-generator/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetPreviewService_Preview(t *testing.T) {
	rows := [][]string{{"Артикул", "Наименование", "Описание"}}
	for i := 0; i < 15; i++ {
		rows = append(rows, []string{fmt.Sprintf("A-%d", i), "Деталь", ""})
	}
	sheet := &fakeSheetConnector{rows: rows}

	service, err := NewSheetPreviewService(sheet, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	preview, err := service.Preview(context.Background(), "https://docs.google.com/spreadsheets/d/1AbcDEfGh/edit", "Лист1")
	require.NoError(t, err)

	assert.Equal(t, []string{"Артикул", "Наименование", "Описание"}, preview.Headers)
	assert.Len(t, preview.Rows, 9)
	assert.Equal(t, 15, preview.TotalRows)
}

func TestSheetPreviewService_EmptyWorksheet(t *testing.T) {
	service, err := NewSheetPreviewService(&fakeSheetConnector{}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	preview, err := service.Preview(context.Background(), "1AbcDEfGh", "Лист1")
	require.NoError(t, err)

	assert.Empty(t, preview.Headers)
	assert.Empty(t, preview.Rows)
	assert.Zero(t, preview.TotalRows)
}

func TestSheetPreviewService_InvalidSheetInput(t *testing.T) {
	service, err := NewSheetPreviewService(&fakeSheetConnector{}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = service.Preview(context.Background(), "", "Лист1")
	assert.Error(t, err)
}

func TestSheetPreviewService_SheetFailure(t *testing.T) {
	sheet := &fakeSheetConnector{rowsErr: fmt.Errorf("permission denied")}
	service, err := NewSheetPreviewService(sheet, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = service.Preview(context.Background(), "1AbcDEfGh", "Лист1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}
