package generation

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// JobState describes the lifecycle of a generation job.
type JobState string

// Job state constants
const (
	JobStatePending   JobState = "pending"
	JobStateRunning   JobState = "running"
	JobStateSucceeded JobState = "succeeded"
	JobStateFailed    JobState = "failed"
	JobStateCanceled  JobState = "canceled"
)

// Job entity
type Job struct {
	ID               string `validate:"required,uuid4"`
	SheetID          string `validate:"required"`
	Worksheet        string `validate:"required"`
	StartRow         int    `validate:"min=1"`
	EndRow           int    `validate:"min=0"`
	Force            bool
	DryRun           bool
	State            JobState `validate:"required,oneof=pending running succeeded failed canceled"`
	Processed        int
	Error            string
	DateTimeStarted  time.Time `validate:"required"`
	DateTimeFinished *time.Time
}

// Finished reports whether the job reached a terminal state.
func (j *Job) Finished() bool {
	switch j.State {
	case JobStateSucceeded, JobStateFailed, JobStateCanceled:
		return true
	default:
		return false
	}
}

// Validate for validating Job struct
func (j *Job) Validate() error {
	validate := validator.New()

	err := validate.Struct(j)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// Log event level constants. "success" and "error" drive UI styling; levels
// otherwise behave like plain info events.
const (
	EventInfo    = "info"
	EventSuccess = "success"
	EventError   = "error"
)

// LogEvent is one progress message emitted by a running job.
type LogEvent struct {
	JobID     string
	Timestamp time.Time
	Level     string
	Message   string
}
