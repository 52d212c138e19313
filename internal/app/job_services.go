package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MGTheTrain/description-generator/internal/domain/generation"
	"github.com/MGTheTrain/description-generator/internal/pkg/logger"
)

// ErrJobAlreadyRunning is returned by Start while a job is active.
var ErrJobAlreadyRunning = errors.New("a generation job is already running")

// subscriberBuffer bounds the per-subscriber event queue; slow consumers
// lose events rather than stalling the worker.
const subscriberBuffer = 64

// jobService implements the JobService interface. It runs at most one
// generation job at a time in a background goroutine.
type jobService struct {
	runService generation.RunService
	jobRepo    generation.JobRepository
	logger     logger.Logger

	mu      sync.Mutex
	current *generation.Job
	cancel  context.CancelFunc

	subMu       sync.Mutex
	subscribers map[int]chan *generation.LogEvent
	nextSubID   int
}

// NewJobService creates a new instance of JobService
func NewJobService(
	runService generation.RunService,
	jobRepo generation.JobRepository,
	logger logger.Logger,
) (generation.JobService, error) {
	return &jobService{
		runService:  runService,
		jobRepo:     jobRepo,
		logger:      logger,
		subscribers: make(map[int]chan *generation.LogEvent),
	}, nil
}

// Start launches a background generation job for the given parameters.
func (s *jobService) Start(ctx context.Context, params generation.ProcessParams) (*generation.Job, error) {
	if err := params.Range.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sheet range: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && !s.current.Finished() {
		return nil, ErrJobAlreadyRunning
	}

	job := &generation.Job{
		ID:              uuid.New().String(),
		SheetID:         params.Range.SheetID,
		Worksheet:       params.Range.Worksheet,
		StartRow:        params.Range.StartRow,
		EndRow:          params.Range.EndRow,
		Force:           params.Force,
		DryRun:          params.DryRun,
		State:           generation.JobStatePending,
		DateTimeStarted: time.Now().UTC(),
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to persist job: %w", err)
	}

	// The worker outlives the request; it is canceled through Stop, not
	// through the request context.
	runCtx, cancel := context.WithCancel(context.Background())
	s.current = job
	s.cancel = cancel

	go s.run(runCtx, job, params)

	s.logger.Info("Started generation job ", job.ID, " for sheet ", job.SheetID)
	return s.snapshotLocked(), nil
}

// Stop cancels the running job, reporting whether one was running.
func (s *jobService) Stop(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.Finished() || s.cancel == nil {
		return false, nil
	}

	s.cancel()
	s.logger.Info("Stop requested for generation job ", s.current.ID)
	return true, nil
}

// Status reports whether a job is active plus the most recent job.
func (s *jobService) Status(ctx context.Context) (*generation.JobStatus, error) {
	s.mu.Lock()
	if s.current != nil {
		status := &generation.JobStatus{
			Active: !s.current.Finished(),
			Job:    s.snapshotLocked(),
		}
		s.mu.Unlock()
		return status, nil
	}
	s.mu.Unlock()

	jobs, err := s.jobRepo.List(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to load last job: %w", err)
	}

	status := &generation.JobStatus{Active: false}
	if len(jobs) > 0 {
		status.Job = jobs[0]
	}
	return status, nil
}

// List returns persisted jobs, most recent first.
func (s *jobService) List(ctx context.Context, limit int) ([]*generation.Job, error) {
	return s.jobRepo.List(ctx, limit)
}

// Subscribe registers a log event listener.
func (s *jobService) Subscribe() (<-chan *generation.LogEvent, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan *generation.LogEvent, subscriberBuffer)
	s.subscribers[id] = ch

	unsubscribe := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if _, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(ch)
		}
	}
	return ch, unsubscribe
}

// run executes the job in the background and records its outcome.
func (s *jobService) run(ctx context.Context, job *generation.Job, params generation.ProcessParams) {
	s.setState(job, generation.JobStateRunning)

	sink := &jobSink{service: s, jobID: job.ID}
	result, err := s.runService.Process(ctx, params, sink)

	s.mu.Lock()
	job.Processed = result.Processed
	finished := time.Now().UTC()
	job.DateTimeFinished = &finished

	switch {
	case errors.Is(err, context.Canceled):
		job.State = generation.JobStateCanceled
	case err != nil:
		job.State = generation.JobStateFailed
		job.Error = err.Error()
	default:
		job.State = generation.JobStateSucceeded
	}
	s.cancel = nil
	s.mu.Unlock()

	switch job.State {
	case generation.JobStateCanceled:
		sink.Emit(generation.EventInfo, "⏹️ Генерация остановлена")
	case generation.JobStateFailed:
		sink.Emit(generation.EventError, fmt.Sprintf("❌ Ошибка: %v", err))
	default:
		sink.Emit(generation.EventSuccess, "✅ Генерация завершена")
	}

	if err := s.jobRepo.UpdateByID(context.Background(), job); err != nil {
		s.logger.Error("failed to persist finished job ", job.ID, ": ", err)
	}
	s.logger.Info("Generation job ", job.ID, " finished in state ", string(job.State))
}

func (s *jobService) setState(job *generation.Job, state generation.JobState) {
	s.mu.Lock()
	job.State = state
	s.mu.Unlock()

	if err := s.jobRepo.UpdateByID(context.Background(), job); err != nil {
		s.logger.Error("failed to persist job state for ", job.ID, ": ", err)
	}
}

// snapshotLocked copies the current job. Callers must hold s.mu.
func (s *jobService) snapshotLocked() *generation.Job {
	if s.current == nil {
		return nil
	}
	snapshot := *s.current
	return &snapshot
}

// publish persists the event and fans it out to subscribers. Subscribers
// with full buffers are skipped.
func (s *jobService) publish(event *generation.LogEvent) {
	if err := s.jobRepo.AppendLog(context.Background(), event); err != nil {
		s.logger.Error("failed to persist job log event: ", err)
	}

	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// jobSink timestamps run events and routes them through the job service.
type jobSink struct {
	service *jobService
	jobID   string
}

func (s *jobSink) Emit(level, message string) {
	s.service.publish(&generation.LogEvent{
		JobID:     s.jobID,
		Timestamp: time.Now().UTC(),
		Level:     level,
		Message:   message,
	})
}
