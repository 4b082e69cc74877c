package api

import (
	"context"
	"net/http"

	"github.com/strumind/console/internal/client/models"
)

func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.do(ctx, http.MethodGet, "/api/projects/", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) CreateProject(ctx context.Context, draft models.ProjectDraft) (*models.Project, error) {
	var project models.Project
	if err := c.do(ctx, http.MethodPost, "/api/projects/", draft, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if err := c.do(ctx, http.MethodGet, "/api/projects/"+id, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, draft models.ProjectDraft) (*models.Project, error) {
	var project models.Project
	if err := c.do(ctx, http.MethodPut, "/api/projects/"+id, draft, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/projects/"+id, nil, nil)
}

func (c *Client) ListModels(ctx context.Context, projectID string) ([]models.StructuralModel, error) {
	var list []models.StructuralModel
	if err := c.do(ctx, http.MethodGet, "/api/projects/"+projectID+"/models", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CreateModel(ctx context.Context, projectID string, draft models.ModelDraft) (*models.StructuralModel, error) {
	var model models.StructuralModel
	if err := c.do(ctx, http.MethodPost, "/api/projects/"+projectID+"/models", draft, &model); err != nil {
		return nil, err
	}
	return &model, nil
}
