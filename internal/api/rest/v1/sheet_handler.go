package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MGTheTrain/description-generator/internal/domain/catalog"
)

// SheetHandler defines the interface for handling worksheet operations
type SheetHandler interface {
	Preview(ctx *gin.Context)
}

type sheetHandler struct {
	previewService catalog.PreviewService
}

// NewSheetHandler creates a new SheetHandler
func NewSheetHandler(previewService catalog.PreviewService) SheetHandler {
	return &sheetHandler{previewService: previewService}
}

// Preview returns the header row and the first data rows of a worksheet
func (handler *sheetHandler) Preview(ctx *gin.Context) {
	var request PreviewRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if request.SheetURL == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Не указан ID таблицы"})
		return
	}

	preview, err := handler.previewService.Preview(ctx, request.SheetURL, request.SheetName)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: fmt.Sprintf("Ошибка загрузки данных: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, PreviewResponse{
		Headers:   preview.Headers,
		Rows:      preview.Rows,
		TotalRows: preview.TotalRows,
	})
}
