package api

import (
	"context"
	"net/http"

	"github.com/strumind/console/internal/client/models"
)

func (c *Client) RunDesignCheck(ctx context.Context, req models.DesignRequest) ([]models.ElementDesignResult, error) {
	var results []models.ElementDesignResult
	if err := c.do(ctx, http.MethodPost, "/api/design/check", req, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Client) ListDesignResults(ctx context.Context, modelID string) ([]models.ElementDesignResult, error) {
	var results []models.ElementDesignResult
	if err := c.do(ctx, http.MethodGet, "/api/design/models/"+modelID+"/results", nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Client) OptimizeDesign(ctx context.Context, req models.OptimizeRequest) ([]models.ElementDesignResult, error) {
	var results []models.ElementDesignResult
	if err := c.do(ctx, http.MethodPost, "/api/design/optimize", req, &results); err != nil {
		return nil, err
	}
	return results, nil
}
