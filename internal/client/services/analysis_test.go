package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strumind/console/internal/client/models"
	"github.com/strumind/console/internal/client/repositories/queries"
	"github.com/strumind/console/internal/common"
)

type jobStep struct {
	status models.JobStatus
	err    error
}

// fakeAnalysisAPI plays back a scripted sequence of job observations, one
// per GetJob call, repeating the last step once the script is exhausted.
type fakeAnalysisAPI struct {
	mu sync.Mutex

	runJob *models.AnalysisJob
	runErr error

	script   []jobStep
	getCalls int

	cancelErr   error
	cancelCalls int

	results []models.ResultSummary
}

func (f *fakeAnalysisAPI) RunAnalysis(ctx context.Context, req models.RunRequest) (*models.AnalysisJob, error) {
	if f.runErr != nil {
		return nil, f.runErr
	}
	return f.runJob, nil
}

func (f *fakeAnalysisAPI) GetJob(ctx context.Context, jobID string) (*models.AnalysisJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	step := f.script[len(f.script)-1]
	if f.getCalls < len(f.script) {
		step = f.script[f.getCalls]
	}
	f.getCalls++

	if step.err != nil {
		return nil, step.err
	}
	return &models.AnalysisJob{ID: jobID, Status: step.status}, nil
}

func (f *fakeAnalysisAPI) CancelJob(ctx context.Context, jobID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelCalls++
	return f.cancelErr
}

func (f *fakeAnalysisAPI) ListResults(ctx context.Context, modelID string) ([]models.ResultSummary, error) {
	return f.results, nil
}

func (f *fakeAnalysisAPI) GetResult(ctx context.Context, resultID string) (*models.AnalysisResults, error) {
	return &models.AnalysisResults{AnalysisType: "linear"}, nil
}

func (f *fakeAnalysisAPI) observed() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getCalls
}

func newWatchService(t *testing.T, api *fakeAnalysisAPI) (*AnalysisService, queries.Repository) {
	t.Helper()
	cache := setupCache(t)
	return NewAnalysisService(api, cache, testLogger(), 10*time.Millisecond), cache
}

func TestAnalysisService_Run_TracksJob(t *testing.T) {
	api := &fakeAnalysisAPI{
		runJob: &models.AnalysisJob{ID: "j1", Status: models.JobStatusPending},
	}
	svc, _ := newWatchService(t, api)

	job, err := svc.Run(context.Background(), "m1", []string{"lc1"}, models.DefaultAnalysisSettings())
	require.NoError(t, err)
	assert.Equal(t, "j1", job.ID)

	id, ok := svc.TrackedJob()
	assert.True(t, ok)
	assert.Equal(t, "j1", id)
	assert.Equal(t, models.JobStatusPending, svc.LastStatus())
	assert.True(t, svc.CancelAllowed())
}

func TestAnalysisService_RunFailure_LeavesNoTrackedJob(t *testing.T) {
	api := &fakeAnalysisAPI{
		runErr: fmt.Errorf("%w: model has no load cases", common.ErrValidation),
	}
	svc, _ := newWatchService(t, api)

	_, err := svc.Run(context.Background(), "m1", nil, models.DefaultAnalysisSettings())
	assert.ErrorIs(t, err, common.ErrValidation)

	_, ok := svc.TrackedJob()
	assert.False(t, ok)
}

func TestAnalysisService_Watch_StopsAtFirstTerminalObservation(t *testing.T) {
	api := &fakeAnalysisAPI{
		runJob: &models.AnalysisJob{ID: "j1", Status: models.JobStatusPending},
		script: []jobStep{
			{status: models.JobStatusPending},
			{status: models.JobStatusRunning},
			{status: models.JobStatusCompleted},
		},
	}
	svc, cache := newWatchService(t, api)
	ctx := context.Background()

	_, err := svc.Run(ctx, "m1", []string{"lc1"}, models.DefaultAnalysisSettings())
	require.NoError(t, err)

	// Pre-populate the results key so the terminal transition's
	// invalidation is observable.
	require.NoError(t, cache.Set(ctx, queries.ModelResultsKey("m1"), []byte(`[]`)))

	var seen []models.JobStatus
	job, err := svc.Watch(ctx, func(j models.AnalysisJob) {
		seen = append(seen, j.Status)
	})
	require.NoError(t, err)

	assert.Equal(t, models.JobStatusCompleted, job.Status)
	assert.Equal(t, []models.JobStatus{
		models.JobStatusPending,
		models.JobStatusRunning,
		models.JobStatusCompleted,
	}, seen)
	assert.Equal(t, 3, api.observed(), "no status fetch after the terminal observation")
	assert.Equal(t, models.JobStatusCompleted, svc.LastStatus())

	_, _, err = cache.Get(ctx, queries.ModelResultsKey("m1"))
	assert.ErrorIs(t, err, common.ErrNotFound, "completion must invalidate the cached results list")
}

func TestAnalysisService_Watch_TransientFailureKeepsSchedule(t *testing.T) {
	// Three consecutive unavailable fetches exhaust the in-tick retry
	// budget; the watcher must skip the tick and catch up on the next one.
	unavailable := fmt.Errorf("%w: connection refused", common.ErrUnavailable)
	api := &fakeAnalysisAPI{
		runJob: &models.AnalysisJob{ID: "j1", Status: models.JobStatusRunning},
		script: []jobStep{
			{err: unavailable},
			{err: unavailable},
			{err: unavailable},
			{status: models.JobStatusRunning},
			{status: models.JobStatusCompleted},
		},
	}
	svc, _ := newWatchService(t, api)
	ctx := context.Background()

	_, err := svc.Run(ctx, "m1", []string{"lc1"}, models.DefaultAnalysisSettings())
	require.NoError(t, err)

	job, err := svc.Watch(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, job.Status)
}

func TestAnalysisService_Watch_PermanentErrorTearsDown(t *testing.T) {
	api := &fakeAnalysisAPI{
		runJob: &models.AnalysisJob{ID: "j1", Status: models.JobStatusPending},
		script: []jobStep{{err: common.ErrUnauthorized}},
	}
	svc, _ := newWatchService(t, api)
	ctx := context.Background()

	_, err := svc.Run(ctx, "m1", []string{"lc1"}, models.DefaultAnalysisSettings())
	require.NoError(t, err)

	_, err = svc.Watch(ctx, nil)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestAnalysisService_Watch_ContextCancelStopsPolling(t *testing.T) {
	api := &fakeAnalysisAPI{
		runJob: &models.AnalysisJob{ID: "j1", Status: models.JobStatusRunning},
		script: []jobStep{{status: models.JobStatusRunning}},
	}
	svc, _ := newWatchService(t, api)

	_, err := svc.Run(context.Background(), "m1", []string{"lc1"}, models.DefaultAnalysisSettings())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, werr := svc.Watch(ctx, nil)
		done <- werr
	}()

	time.Sleep(35 * time.Millisecond)
	cancel()

	select {
	case werr := <-done:
		assert.ErrorIs(t, werr, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after context cancellation")
	}

	polled := api.observed()
	time.Sleep(35 * time.Millisecond)
	assert.Equal(t, polled, api.observed(), "no polls after teardown")
}

func TestAnalysisService_Cancel_RunningJob(t *testing.T) {
	api := &fakeAnalysisAPI{
		runJob: &models.AnalysisJob{ID: "j1", Status: models.JobStatusRunning},
	}
	svc, cache := newWatchService(t, api)
	ctx := context.Background()

	_, err := svc.Run(ctx, "m1", []string{"lc1"}, models.DefaultAnalysisSettings())
	require.NoError(t, err)
	require.NoError(t, cache.Set(ctx, queries.ModelResultsKey("m1"), []byte(`[]`)))

	require.NoError(t, svc.Cancel(ctx))

	assert.Equal(t, 1, api.cancelCalls)
	_, ok := svc.TrackedJob()
	assert.False(t, ok, "cancel clears the tracked job")
	assert.Equal(t, models.JobStatusCancelled, svc.LastStatus())

	_, _, err = cache.Get(ctx, queries.ModelResultsKey("m1"))
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestAnalysisService_Cancel_TerminalJobRejectedLocally(t *testing.T) {
	api := &fakeAnalysisAPI{
		runJob: &models.AnalysisJob{ID: "j1", Status: models.JobStatusRunning},
		script: []jobStep{{status: models.JobStatusCompleted}},
	}
	svc, _ := newWatchService(t, api)
	ctx := context.Background()

	_, err := svc.Run(ctx, "m1", []string{"lc1"}, models.DefaultAnalysisSettings())
	require.NoError(t, err)
	_, err = svc.Refresh(ctx)
	require.NoError(t, err)

	err = svc.Cancel(ctx)
	assert.ErrorIs(t, err, common.ErrJobNotCancellable)
	assert.Zero(t, api.cancelCalls, "terminal jobs never reach the server")
	assert.False(t, svc.CancelAllowed())
}

func TestAnalysisService_Cancel_NoTrackedJob(t *testing.T) {
	svc, _ := newWatchService(t, &fakeAnalysisAPI{})
	err := svc.Cancel(context.Background())
	assert.ErrorIs(t, err, common.ErrNoTrackedJob)
}

func TestAnalysisService_Results_EmptyIsNotAnError(t *testing.T) {
	api := &fakeAnalysisAPI{results: []models.ResultSummary{}}
	svc, _ := newWatchService(t, api)

	list, err := svc.Results(context.Background(), "m1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAnalysisService_RefreshWithoutJob(t *testing.T) {
	svc, _ := newWatchService(t, &fakeAnalysisAPI{})
	_, err := svc.Refresh(context.Background())
	assert.True(t, errors.Is(err, common.ErrNoTrackedJob))
}
