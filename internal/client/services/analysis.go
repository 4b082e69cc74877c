package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/strumind/console/internal/client/models"
	"github.com/strumind/console/internal/client/repositories/queries"
	"github.com/strumind/console/internal/common"
	"github.com/strumind/console/internal/logging"
)

// analysisAPI is the slice of the API surface the analysis service needs.
type analysisAPI interface {
	RunAnalysis(ctx context.Context, req models.RunRequest) (*models.AnalysisJob, error)
	GetJob(ctx context.Context, jobID string) (*models.AnalysisJob, error)
	CancelJob(ctx context.Context, jobID string) error
	ListResults(ctx context.Context, modelID string) ([]models.ResultSummary, error)
	GetResult(ctx context.Context, resultID string) (*models.AnalysisResults, error)
}

// AnalysisService drives the analysis job lifecycle: submit, poll until
// terminal, cancel, browse results. The state machine itself is
// server-owned; the client mirrors it.
//
// Exactly one job is tracked at a time. A new run replaces the tracked id;
// a successful cancel clears it.
type AnalysisService struct {
	api   analysisAPI
	cache queries.Repository
	log   logging.Logger

	// interval between status polls while a job is live.
	interval time.Duration

	mu         sync.Mutex
	jobID      string
	modelID    string
	lastStatus models.JobStatus
}

func NewAnalysisService(api analysisAPI, cache queries.Repository, log logging.Logger, interval time.Duration) *AnalysisService {
	return &AnalysisService{api: api, cache: cache, log: log, interval: interval}
}

// Run submits an analysis request. On success the returned job becomes the
// tracked current job. On failure nothing changes, so the caller's draft
// settings survive for another attempt.
func (s *AnalysisService) Run(ctx context.Context, modelID string, loadCaseIDs []string, settings models.AnalysisSettings) (*models.AnalysisJob, error) {
	req := models.RunRequest{
		ModelID:     modelID,
		LoadCaseIDs: loadCaseIDs,
		Settings:    settings,
		SaveResults: true,
	}

	job, err := s.api.RunAnalysis(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.jobID = job.ID
	s.modelID = modelID
	s.lastStatus = job.Status
	s.mu.Unlock()

	s.log.Info(ctx, "analysis submitted", "job_id", job.ID, "model_id", modelID)
	return job, nil
}

// TrackedJob returns the id of the current job, if any.
func (s *AnalysisService) TrackedJob() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobID, s.jobID != ""
}

// LastStatus returns the most recently observed status of the tracked job.
func (s *AnalysisService) LastStatus() models.JobStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastStatus
}

// CancelAllowed reports whether the cancel action should be offered: a job
// is tracked and its last observed status is pending or running.
func (s *AnalysisService) CancelAllowed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobID != "" && s.lastStatus.Cancellable()
}

// Refresh fetches the tracked job's current state, records the observed
// status, and invalidates the cached results list on the transition into
// completed so the results view re-fetches.
func (s *AnalysisService) Refresh(ctx context.Context) (*models.AnalysisJob, error) {
	s.mu.Lock()
	jobID := s.jobID
	modelID := s.modelID
	prev := s.lastStatus
	s.mu.Unlock()

	if jobID == "" {
		return nil, common.ErrNoTrackedJob
	}

	job, err := s.api.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	// The tracked slot may have been replaced while the fetch was in
	// flight; only record the status if it is still our job.
	if s.jobID == jobID {
		s.lastStatus = job.Status
	}
	s.mu.Unlock()

	if job.Status == models.JobStatusCompleted && prev != models.JobStatusCompleted {
		if err := s.cache.Invalidate(ctx, queries.ModelResultsKey(modelID)); err != nil {
			s.log.Warn(ctx, "invalidating results", "model_id", modelID, "error", err)
		}
	}
	return job, nil
}

// Watch polls the tracked job until it reaches a terminal state, invoking
// onUpdate after every observation. The decision to continue is taken on
// the freshest fetched status, so polling stops exactly at the first
// terminal observation. A transient fetch failure is retried with bounded
// backoff and then skipped; it never tears down the schedule. Cancelling
// ctx tears the watcher down.
func (s *AnalysisService) Watch(ctx context.Context, onUpdate func(models.AnalysisJob)) (*models.AnalysisJob, error) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		var job *models.AnalysisJob
		backoff := retry.WithMaxRetries(2, retry.NewConstant(s.interval/4))
		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			j, ferr := s.Refresh(ctx)
			if ferr != nil {
				if errors.Is(ferr, common.ErrUnavailable) {
					return retry.RetryableError(ferr)
				}
				return ferr
			}
			job = j
			return nil
		})
		if err != nil {
			if errors.Is(err, common.ErrUnavailable) {
				// Transient: keep the schedule, catch up next tick.
				s.log.Warn(ctx, "poll failed, will retry", "error", err)
				continue
			}
			return nil, fmt.Errorf("polling job: %w", err)
		}

		if onUpdate != nil {
			onUpdate(*job)
		}
		if job.Status.Terminal() {
			return job, nil
		}
	}
}

// Cancel requests cancellation of the tracked job. Allowed only while the
// last observed status is pending or running; the server remains the final
// authority and may still reject. On success the tracked id is cleared and
// the cached results list invalidated.
func (s *AnalysisService) Cancel(ctx context.Context) error {
	s.mu.Lock()
	jobID := s.jobID
	modelID := s.modelID
	status := s.lastStatus
	s.mu.Unlock()

	if jobID == "" {
		return common.ErrNoTrackedJob
	}
	if !status.Cancellable() {
		return fmt.Errorf("%w: %s", common.ErrJobNotCancellable, status)
	}

	if err := s.api.CancelJob(ctx, jobID); err != nil {
		return err
	}

	s.mu.Lock()
	if s.jobID == jobID {
		s.jobID = ""
		s.lastStatus = models.JobStatusCancelled
	}
	s.mu.Unlock()

	if err := s.cache.Invalidate(ctx, queries.ModelResultsKey(modelID)); err != nil {
		s.log.Warn(ctx, "invalidating results", "model_id", modelID, "error", err)
	}
	s.log.Info(ctx, "analysis cancelled", "job_id", jobID)
	return nil
}

// Results lists result summaries for a model. An empty set is a valid
// state, not an error.
func (s *AnalysisService) Results(ctx context.Context, modelID string) ([]models.ResultSummary, error) {
	return fetchCached(ctx, s.cache, queries.ModelResultsKey(modelID), s.log,
		func(ctx context.Context) ([]models.ResultSummary, error) {
			return s.api.ListResults(ctx, modelID)
		})
}

// Result fetches one detailed result. Detail views are not cached.
func (s *AnalysisService) Result(ctx context.Context, resultID string) (*models.AnalysisResults, error) {
	return s.api.GetResult(ctx, resultID)
}
