//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/description-generator/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSheetHandler_Preview_Success(t *testing.T) {
	mockPreviewService := new(MockPreviewService)
	mockPreviewService.On("Preview", mock.Anything, "1AbcDEfGh", "Лист1").Return(&catalog.SheetPreview{
		Headers:   []string{"Артикул", "Наименование", "Описание"},
		Rows:      [][]string{{"A-100", "Насос", ""}},
		TotalRows: 1,
	}, nil)

	handler := NewSheetHandler(mockPreviewService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, "POST", "/sheets/preview", PreviewRequest{
		SheetURL:  "1AbcDEfGh",
		SheetName: "Лист1",
	})

	handler.Preview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Артикул")
	assert.Contains(t, w.Body.String(), `"total_rows":1`)
	mockPreviewService.AssertExpectations(t)
}

func TestSheetHandler_Preview_MissingSheet(t *testing.T) {
	handler := NewSheetHandler(new(MockPreviewService))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, "POST", "/sheets/preview", PreviewRequest{SheetName: "Лист1"})

	handler.Preview(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Не указан ID таблицы")
}

func TestSheetHandler_Preview_ServiceFailure(t *testing.T) {
	mockPreviewService := new(MockPreviewService)
	mockPreviewService.On("Preview", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("permission denied"))

	handler := NewSheetHandler(mockPreviewService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, "POST", "/sheets/preview", PreviewRequest{
		SheetURL:  "1AbcDEfGh",
		SheetName: "Лист1",
	})

	handler.Preview(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Ошибка загрузки данных")
	mockPreviewService.AssertExpectations(t)
}
