package app

import (
	"github.com/MGTheTrain/description-generator/internal/domain/generation"
	"github.com/MGTheTrain/description-generator/internal/pkg/logger"
)

// loggerSink forwards run progress to the application logger. The CLI runs
// with this sink; the REST API uses the job service's persisting sink.
type loggerSink struct {
	logger logger.Logger
}

// NewLoggerSink creates an EventSink writing every event to the logger.
func NewLoggerSink(log logger.Logger) generation.EventSink {
	return &loggerSink{logger: log}
}

func (s *loggerSink) Emit(level, message string) {
	if level == generation.EventError {
		s.logger.Error(message)
		return
	}
	s.logger.Info(message)
}
