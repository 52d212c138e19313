package v1

import (
	"time"

	"github.com/MGTheTrain/description-generator/internal/domain/generation"
)

// ErrorResponse carries a user-facing error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// StartGenerationRequest configures a generation job. SheetURL may be a bare
// spreadsheet ID or a full Google Sheets URL.
type StartGenerationRequest struct {
	SheetURL     string  `json:"sheet_url"`
	SheetName    string  `json:"sheet_name"`
	StartRow     int     `json:"start_row"`
	EndRow       int     `json:"end_row"`
	Limit        int     `json:"limit"`
	SleepSeconds float64 `json:"sleep_seconds"`
	Force        bool    `json:"force"`
	DryRun       bool    `json:"dry_run"`
}

// StartGenerationResponse acknowledges a started job.
type StartGenerationResponse struct {
	Status   string `json:"status"`
	JobID    string `json:"job_id"`
	StartRow int    `json:"start_row"`
	EndRow   int    `json:"end_row"`
}

// StopResponse reports the outcome of a stop request.
type StopResponse struct {
	Status string `json:"status"`
}

// JobResponse is the wire form of a generation job.
type JobResponse struct {
	ID               string     `json:"id"`
	SheetID          string     `json:"sheet_id"`
	Worksheet        string     `json:"worksheet"`
	StartRow         int        `json:"start_row"`
	EndRow           int        `json:"end_row"`
	Force            bool       `json:"force"`
	DryRun           bool       `json:"dry_run"`
	State            string     `json:"state"`
	Processed        int        `json:"processed"`
	Error            string     `json:"error,omitempty"`
	DateTimeStarted  time.Time  `json:"date_time_started"`
	DateTimeFinished *time.Time `json:"date_time_finished,omitempty"`
}

// StatusResponse reports job activity.
type StatusResponse struct {
	Active bool         `json:"active"`
	Job    *JobResponse `json:"job,omitempty"`
}

// PreviewRequest identifies the worksheet to preview.
type PreviewRequest struct {
	SheetURL  string `json:"sheet_url"`
	SheetName string `json:"sheet_name"`
}

// PreviewResponse is a small window into a worksheet.
type PreviewResponse struct {
	Headers   []string   `json:"headers"`
	Rows      [][]string `json:"rows"`
	TotalRows int        `json:"total_rows"`
}

// LogEventResponse is one SSE log payload.
type LogEventResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
}

func toJobResponse(job *generation.Job) *JobResponse {
	if job == nil {
		return nil
	}
	return &JobResponse{
		ID:               job.ID,
		SheetID:          job.SheetID,
		Worksheet:        job.Worksheet,
		StartRow:         job.StartRow,
		EndRow:           job.EndRow,
		Force:            job.Force,
		DryRun:           job.DryRun,
		State:            string(job.State),
		Processed:        job.Processed,
		Error:            job.Error,
		DateTimeStarted:  job.DateTimeStarted,
		DateTimeFinished: job.DateTimeFinished,
	}
}
