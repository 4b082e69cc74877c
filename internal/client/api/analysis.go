package api

import (
	"context"
	"net/http"

	"github.com/strumind/console/internal/client/models"
)

// RunAnalysis submits an analysis run and returns the created job, which
// starts out pending.
func (c *Client) RunAnalysis(ctx context.Context, req models.RunRequest) (*models.AnalysisJob, error) {
	var job models.AnalysisJob
	if err := c.do(ctx, http.MethodPost, "/api/analysis/run", req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// GetJob fetches the current state of an analysis job.
func (c *Client) GetJob(ctx context.Context, jobID string) (*models.AnalysisJob, error) {
	var job models.AnalysisJob
	if err := c.do(ctx, http.MethodGet, "/api/analysis/jobs/"+jobID, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// CancelJob asks the server to cancel a pending or running job. The server
// rejects cancellation of terminal jobs with a validation error.
func (c *Client) CancelJob(ctx context.Context, jobID string) error {
	return c.do(ctx, http.MethodDelete, "/api/analysis/jobs/"+jobID, nil, nil)
}

// ListResults returns result summaries for a model. An empty slice is a
// valid response, not an error.
func (c *Client) ListResults(ctx context.Context, modelID string) ([]models.ResultSummary, error) {
	var list []models.ResultSummary
	if err := c.do(ctx, http.MethodGet, "/api/analysis/models/"+modelID+"/results", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetResult fetches the detailed node/element results of one analysis.
func (c *Client) GetResult(ctx context.Context, resultID string) (*models.AnalysisResults, error) {
	var res models.AnalysisResults
	if err := c.do(ctx, http.MethodGet, "/api/analysis/results/"+resultID, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
