package api

import (
	"context"
	"net/http"

	"github.com/strumind/console/internal/client/models"
)

// Materials and sections hang off a structural model; list/create address
// the model, update/delete address the record itself.

func (c *Client) ListMaterials(ctx context.Context, modelID string) ([]models.Material, error) {
	var list []models.Material
	if err := c.do(ctx, http.MethodGet, "/api/materials/models/"+modelID, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CreateMaterial(ctx context.Context, modelID string, draft models.MaterialDraft) (*models.Material, error) {
	var material models.Material
	if err := c.do(ctx, http.MethodPost, "/api/materials/models/"+modelID, draft, &material); err != nil {
		return nil, err
	}
	return &material, nil
}

func (c *Client) UpdateMaterial(ctx context.Context, id string, draft models.MaterialDraft) (*models.Material, error) {
	var material models.Material
	if err := c.do(ctx, http.MethodPut, "/api/materials/"+id, draft, &material); err != nil {
		return nil, err
	}
	return &material, nil
}

func (c *Client) DeleteMaterial(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/materials/"+id, nil, nil)
}

func (c *Client) ListSections(ctx context.Context, modelID string) ([]models.Section, error) {
	var list []models.Section
	if err := c.do(ctx, http.MethodGet, "/api/sections/models/"+modelID, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CreateSection(ctx context.Context, modelID string, draft models.SectionDraft) (*models.Section, error) {
	var section models.Section
	if err := c.do(ctx, http.MethodPost, "/api/sections/models/"+modelID, draft, &section); err != nil {
		return nil, err
	}
	return &section, nil
}

func (c *Client) UpdateSection(ctx context.Context, id string, draft models.SectionDraft) (*models.Section, error) {
	var section models.Section
	if err := c.do(ctx, http.MethodPut, "/api/sections/"+id, draft, &section); err != nil {
		return nil, err
	}
	return &section, nil
}

func (c *Client) DeleteSection(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/sections/"+id, nil, nil)
}
