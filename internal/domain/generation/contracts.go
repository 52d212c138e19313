package generation

import (
	"context"
	"time"

	"github.com/MGTheTrain/description-generator/internal/domain/catalog"
)

// Chat message role constants
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one chat-completion message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is a provider-neutral chat-completion request.
type ChatRequest struct {
	Model       string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// ChatClient produces a chat completion against one LLM provider.
type ChatClient interface {
	// Complete sends the request and returns the assistant message content.
	Complete(ctx context.Context, request *ChatRequest) (string, error)
}

// Generator produces a description for a single catalog part, handling model
// fallback and retries internally.
type Generator interface {
	Generate(ctx context.Context, article, name string) (string, error)
}

// EventSink receives progress messages from a generation run.
type EventSink interface {
	Emit(level, message string)
}

// ProcessParams configures one generation run over a sheet range.
type ProcessParams struct {
	Range catalog.SheetRange
	Force bool
	// DryRun generates but never writes back to the sheet.
	DryRun bool
	// Limit caps the number of processed rows; 0 means no cap.
	Limit int
	// Sleep is an optional pause between rows.
	Sleep time.Duration
}

// ProcessResult summarizes a finished generation run.
type ProcessResult struct {
	Processed  int
	TotalLLM   time.Duration
	AverageLLM time.Duration
}

// RunService processes a range of catalog rows synchronously.
type RunService interface {
	Process(ctx context.Context, params ProcessParams, sink EventSink) (*ProcessResult, error)
}

// JobStatus reports whether a job is active plus the most recent job.
type JobStatus struct {
	Active bool
	Job    *Job
}

// JobService manages asynchronous generation jobs. At most one job runs at a
// time.
type JobService interface {
	// Start launches a job for the given parameters. It returns an error when
	// a job is already running.
	Start(ctx context.Context, params ProcessParams) (*Job, error)

	// Stop cancels the running job. It reports whether a job was running.
	Stop(ctx context.Context) (bool, error)

	// Status returns the current activity flag and the latest job.
	Status(ctx context.Context) (*JobStatus, error)

	// List returns persisted jobs, most recent first.
	List(ctx context.Context, limit int) ([]*Job, error)

	// Subscribe registers a log event listener. The returned function
	// unsubscribes and closes the channel.
	Subscribe() (<-chan *LogEvent, func())
}

// JobRepository defines the interface for Job-related persistence operations
type JobRepository interface {
	// Create adds a new Job to the database
	Create(ctx context.Context, job *Job) error
	// UpdateByID updates a Job in the database by ID
	UpdateByID(ctx context.Context, job *Job) error
	// GetByID retrieves a Job from the database by ID
	GetByID(ctx context.Context, jobID string) (*Job, error)
	// List lists Jobs in the database, most recent first
	List(ctx context.Context, limit int) ([]*Job, error)
	// AppendLog persists one job log event
	AppendLog(ctx context.Context, event *LogEvent) error
	// ListLogs retrieves the log events of a job in emission order
	ListLogs(ctx context.Context, jobID string) ([]*LogEvent, error)
}
