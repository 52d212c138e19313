package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/description-generator/internal/domain/catalog"
	"github.com/MGTheTrain/description-generator/internal/domain/generation"
	"github.com/MGTheTrain/description-generator/internal/pkg/logger"
	"github.com/MGTheTrain/description-generator/internal/pkg/textutil"
)

// sheetRunService implements the RunService interface for processing catalog rows
type sheetRunService struct {
	sheetConnector catalog.SheetConnector
	generator      generation.Generator
	logger         logger.Logger
}

// NewSheetRunService creates a new instance of RunService
func NewSheetRunService(
	sheetConnector catalog.SheetConnector,
	generator generation.Generator,
	logger logger.Logger,
) (generation.RunService, error) {
	return &sheetRunService{
		sheetConnector: sheetConnector,
		generator:      generator,
		logger:         logger,
	}, nil
}

// Process iterates the configured row range, generates missing descriptions
// and writes them back. Row-level failures are reported through the sink and
// skipped; only sheet access failures and cancellation abort the run. The
// returned result is valid even when an error is returned.
func (s *sheetRunService) Process(ctx context.Context, params generation.ProcessParams, sink generation.EventSink) (*generation.ProcessResult, error) {
	result := &generation.ProcessResult{}
	if sink == nil {
		sink = NewLoggerSink(s.logger)
	}

	if err := params.Range.Validate(); err != nil {
		return result, fmt.Errorf("invalid sheet range: %w", err)
	}

	rows, err := s.sheetConnector.Rows(ctx, params.Range.SheetID, params.Range.Worksheet)
	if err != nil {
		return result, fmt.Errorf("failed to read worksheet %s: %w", params.Range.Worksheet, err)
	}
	if len(rows) == 0 {
		return result, fmt.Errorf("worksheet %s is empty", params.Range.Worksheet)
	}

	columns, err := catalog.ResolveColumns(rows[0])
	if err != nil {
		return result, err
	}

	for i, row := range rows {
		rowIndex := i + 1
		if rowIndex < params.Range.StartRow {
			continue
		}
		if params.Range.EndRow > 0 && rowIndex > params.Range.EndRow {
			break
		}
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		part := columns.PartAt(row, rowIndex)
		if !part.Complete() {
			continue
		}
		if part.HasDescription() && !params.Force {
			continue
		}

		sink.Emit(generation.EventInfo, fmt.Sprintf("🔧 Строка %d | %s | %s", part.Row, part.Article, part.Name))

		requestStart := time.Now()
		text, err := s.generator.Generate(ctx, part.Article, part.Name)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			s.logger.Error("generation failed for row ", part.Row, ": ", err)
			sink.Emit(generation.EventError, fmt.Sprintf("❌ Ошибка генерации для строки %d: %v", part.Row, err))
			continue
		}
		requestTime := time.Since(requestStart)
		result.TotalLLM += requestTime

		if params.DryRun {
			sink.Emit(generation.EventInfo, fmt.Sprintf("📝 (dry-run) %s...", dryRunPreview(text)))
		} else {
			if err := s.sheetConnector.UpdateCell(ctx, params.Range.SheetID, params.Range.Worksheet, part.Row, columns.Description, text); err != nil {
				s.logger.Error("failed to update row ", part.Row, ": ", err)
				sink.Emit(generation.EventError, fmt.Sprintf("❌ Не удалось обновить строку %d: %v", part.Row, err))
				continue
			}
			sink.Emit(generation.EventSuccess, "✅ Записано в Google Sheets.")
		}

		sink.Emit(generation.EventInfo, fmt.Sprintf("⏱️ Время запроса: %.2f c", requestTime.Seconds()))
		result.Processed++

		if params.Limit > 0 && result.Processed >= params.Limit {
			break
		}

		if params.Sleep > 0 {
			if err := sleepContext(ctx, params.Sleep); err != nil {
				return result, err
			}
		}
	}

	if result.Processed > 0 {
		result.AverageLLM = result.TotalLLM / time.Duration(result.Processed)
		sink.Emit(generation.EventInfo, fmt.Sprintf(
			"📊 Среднее время: %.2f c (обработано %d)", result.AverageLLM.Seconds(), result.Processed,
		))
	}

	return result, nil
}

// dryRunPreview flattens the generated text into a short single-line excerpt.
func dryRunPreview(text string) string {
	return strings.ReplaceAll(textutil.Truncate(text, 100), "\n", " ")
}
