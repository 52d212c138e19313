//go:build unit
// +build unit

package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MGTheTrain/description-generator/internal/domain/catalog"
	"github.com/MGTheTrain/description-generator/internal/domain/generation"
	"github.com/MGTheTrain/description-generator/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobParams() generation.ProcessParams {
	return generation.ProcessParams{
		Range: catalog.SheetRange{SheetID: "sheet", Worksheet: "Лист1", StartRow: 2, EndRow: 100},
	}
}

func waitForState(t *testing.T, repo *memoryJobRepo, jobID string, state generation.JobState) {
	t.Helper()
	require.Eventually(t, func() bool {
		job, err := repo.GetByID(context.Background(), jobID)
		return err == nil && job.State == state
	}, 2*time.Second, 10*time.Millisecond, "job never reached state %s", state)
}

func TestJobService_StartAndComplete(t *testing.T) {
	repo := newMemoryJobRepo()
	runService := newBlockingRunService()
	runService.result = &generation.ProcessResult{Processed: 3}

	service, err := NewJobService(runService, repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	job, err := service.Start(context.Background(), jobParams())
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.NotEmpty(t, job.ID)

	close(runService.release)
	waitForState(t, repo, job.ID, generation.JobStateSucceeded)

	persisted, err := repo.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, persisted.Processed)
	require.NotNil(t, persisted.DateTimeFinished)
}

func TestJobService_RejectsConcurrentStart(t *testing.T) {
	repo := newMemoryJobRepo()
	runService := newBlockingRunService()

	service, err := NewJobService(runService, repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	job, err := service.Start(context.Background(), jobParams())
	require.NoError(t, err)

	_, err = service.Start(context.Background(), jobParams())
	assert.ErrorIs(t, err, ErrJobAlreadyRunning)

	close(runService.release)
	waitForState(t, repo, job.ID, generation.JobStateSucceeded)

	// A finished job no longer blocks new starts
	_, err = service.Start(context.Background(), jobParams())
	assert.NoError(t, err)
}

func TestJobService_StopCancelsRunningJob(t *testing.T) {
	repo := newMemoryJobRepo()
	runService := newBlockingRunService()

	service, err := NewJobService(runService, repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	job, err := service.Start(context.Background(), jobParams())
	require.NoError(t, err)

	stopped, err := service.Stop(context.Background())
	require.NoError(t, err)
	assert.True(t, stopped)

	waitForState(t, repo, job.ID, generation.JobStateCanceled)
}

func TestJobService_StopWithoutRunningJob(t *testing.T) {
	service, err := NewJobService(newBlockingRunService(), newMemoryJobRepo(), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	stopped, err := service.Stop(context.Background())
	require.NoError(t, err)
	assert.False(t, stopped)
}

func TestJobService_FailureRecordsError(t *testing.T) {
	repo := newMemoryJobRepo()
	runService := newBlockingRunService()
	runService.err = fmt.Errorf("worksheet Лист1 is empty")

	service, err := NewJobService(runService, repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	job, err := service.Start(context.Background(), jobParams())
	require.NoError(t, err)

	close(runService.release)
	waitForState(t, repo, job.ID, generation.JobStateFailed)

	persisted, err := repo.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Contains(t, persisted.Error, "is empty")
}

func TestJobService_StatusReflectsActivity(t *testing.T) {
	repo := newMemoryJobRepo()
	runService := newBlockingRunService()

	service, err := NewJobService(runService, repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	status, err := service.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Active)
	assert.Nil(t, status.Job)

	job, err := service.Start(context.Background(), jobParams())
	require.NoError(t, err)

	status, err = service.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Active)
	require.NotNil(t, status.Job)
	assert.Equal(t, job.ID, status.Job.ID)

	close(runService.release)
	waitForState(t, repo, job.ID, generation.JobStateSucceeded)

	require.Eventually(t, func() bool {
		status, err := service.Status(context.Background())
		return err == nil && !status.Active
	}, 2*time.Second, 10*time.Millisecond)
}

func TestJobService_SubscribeReceivesEvents(t *testing.T) {
	repo := newMemoryJobRepo()
	runService := newBlockingRunService()

	service, err := NewJobService(runService, repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	events, unsubscribe := service.Subscribe()
	defer unsubscribe()

	job, err := service.Start(context.Background(), jobParams())
	require.NoError(t, err)

	select {
	case event := <-events:
		require.NotNil(t, event)
		assert.Equal(t, job.ID, event.JobID)
		assert.Contains(t, event.Message, "Строка 2")
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}

	close(runService.release)
	waitForState(t, repo, job.ID, generation.JobStateSucceeded)

	// Events are also persisted for later inspection
	logs, err := repo.ListLogs(context.Background(), job.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, logs)
}

func TestJobService_StartRejectsInvalidRange(t *testing.T) {
	service, err := NewJobService(newBlockingRunService(), newMemoryJobRepo(), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	params := jobParams()
	params.Range.StartRow = 10
	params.Range.EndRow = 5

	_, err = service.Start(context.Background(), params)
	assert.Error(t, err)
}
