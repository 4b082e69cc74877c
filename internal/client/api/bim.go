package api

import (
	"context"
	"net/http"

	"github.com/strumind/console/internal/client/models"
)

func (c *Client) GetGeometry(ctx context.Context, modelID string) (*models.Geometry, error) {
	var g models.Geometry
	if err := c.do(ctx, http.MethodGet, "/api/bim/models/"+modelID+"/geometry", nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Client) UpdateGeometry(ctx context.Context, modelID string, g models.Geometry) error {
	return c.do(ctx, http.MethodPut, "/api/bim/models/"+modelID+"/geometry", g, nil)
}

func (c *Client) ExportBIM(ctx context.Context, modelID, format string) (*models.ExportInfo, error) {
	var info models.ExportInfo
	req := models.ExportRequest{Format: format}
	if err := c.do(ctx, http.MethodPost, "/api/bim/models/"+modelID+"/export", req, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
