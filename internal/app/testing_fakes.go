//go:build unit
// +build unit

package app

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/MGTheTrain/description-generator/internal/domain/generation"
)

// fakeChatClient replays scripted responses and records every request.
type fakeChatClient struct {
	mu        sync.Mutex
	requests  []*generation.ChatRequest
	responses []scriptedResponse
}

type scriptedResponse struct {
	content string
	err     error
}

func (c *fakeChatClient) Complete(_ context.Context, request *generation.ChatRequest) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests = append(c.requests, request)
	if len(c.responses) == 0 {
		return "", fmt.Errorf("no scripted response left")
	}
	next := c.responses[0]
	c.responses = c.responses[1:]
	return next.content, next.err
}

func (c *fakeChatClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

// fakeSheetConnector serves in-memory rows and records cell updates.
type fakeSheetConnector struct {
	mu      sync.Mutex
	rows    [][]string
	rowsErr error
	updates []cellUpdate
}

type cellUpdate struct {
	row   int
	col   int
	value string
}

func (c *fakeSheetConnector) Header(_ context.Context, _, _ string) ([]string, error) {
	if len(c.rows) == 0 {
		return nil, nil
	}
	return c.rows[0], nil
}

func (c *fakeSheetConnector) Rows(_ context.Context, _, _ string) ([][]string, error) {
	if c.rowsErr != nil {
		return nil, c.rowsErr
	}
	return c.rows, nil
}

func (c *fakeSheetConnector) UpdateCell(_ context.Context, _, _ string, row, col int, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updates = append(c.updates, cellUpdate{row: row, col: col, value: value})
	return nil
}

func (c *fakeSheetConnector) AppendRow(_ context.Context, _, _ string, values []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows = append(c.rows, values)
	return nil
}

// staticGenerator returns the same text for every part.
type staticGenerator struct {
	text string
	err  error
}

func (g *staticGenerator) Generate(_ context.Context, _, _ string) (string, error) {
	return g.text, g.err
}

// collectSink gathers emitted events for assertions.
type collectSink struct {
	mu     sync.Mutex
	events []string
}

func (s *collectSink) Emit(level, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, level+": "+message)
}

func (s *collectSink) all() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.events...)
}

// memoryJobRepo is an in-memory JobRepository for unit tests.
type memoryJobRepo struct {
	mu     sync.Mutex
	jobs   map[string]*generation.Job
	order  []string
	events []*generation.LogEvent
}

func newMemoryJobRepo() *memoryJobRepo {
	return &memoryJobRepo{jobs: make(map[string]*generation.Job)}
}

func (r *memoryJobRepo) Create(_ context.Context, job *generation.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := *job
	r.jobs[job.ID] = &snapshot
	r.order = append(r.order, job.ID)
	return nil
}

func (r *memoryJobRepo) UpdateByID(_ context.Context, job *generation.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; !ok {
		return fmt.Errorf("job with ID %s not found", job.ID)
	}
	snapshot := *job
	r.jobs[job.ID] = &snapshot
	return nil
}

func (r *memoryJobRepo) GetByID(_ context.Context, jobID string) (*generation.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("job with ID %s not found", jobID)
	}
	snapshot := *job
	return &snapshot, nil
}

func (r *memoryJobRepo) List(_ context.Context, limit int) ([]*generation.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	jobs := make([]*generation.Job, 0, len(r.jobs))
	for _, id := range r.order {
		snapshot := *r.jobs[id]
		jobs = append(jobs, &snapshot)
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].DateTimeStarted.After(jobs[j].DateTimeStarted)
	})
	if limit > 0 && len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs, nil
}

func (r *memoryJobRepo) AppendLog(_ context.Context, event *generation.LogEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *memoryJobRepo) ListLogs(_ context.Context, jobID string) ([]*generation.LogEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var events []*generation.LogEvent
	for _, event := range r.events {
		if event.JobID == jobID {
			events = append(events, event)
		}
	}
	return events, nil
}

// blockingRunService waits for cancellation unless released first.
type blockingRunService struct {
	release chan struct{}
	result  *generation.ProcessResult
	err     error
}

func newBlockingRunService() *blockingRunService {
	return &blockingRunService{
		release: make(chan struct{}),
		result:  &generation.ProcessResult{},
	}
}

func (s *blockingRunService) Process(ctx context.Context, _ generation.ProcessParams, sink generation.EventSink) (*generation.ProcessResult, error) {
	if sink != nil {
		sink.Emit(generation.EventInfo, "🔧 Строка 2 | A-100 | Насос")
	}
	select {
	case <-ctx.Done():
		return s.result, ctx.Err()
	case <-s.release:
		return s.result, s.err
	}
}
