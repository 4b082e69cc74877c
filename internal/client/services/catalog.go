package services

import (
	"context"

	"github.com/strumind/console/internal/client/models"
	"github.com/strumind/console/internal/client/repositories/queries"
	"github.com/strumind/console/internal/logging"
)

type catalogAPI interface {
	ListMaterials(ctx context.Context, modelID string) ([]models.Material, error)
	CreateMaterial(ctx context.Context, modelID string, draft models.MaterialDraft) (*models.Material, error)
	UpdateMaterial(ctx context.Context, id string, draft models.MaterialDraft) (*models.Material, error)
	DeleteMaterial(ctx context.Context, id string) error
	ListSections(ctx context.Context, modelID string) ([]models.Section, error)
	CreateSection(ctx context.Context, modelID string, draft models.SectionDraft) (*models.Section, error)
	UpdateSection(ctx context.Context, id string, draft models.SectionDraft) (*models.Section, error)
	DeleteSection(ctx context.Context, id string) error
}

// CatalogService manages the material and section libraries of a model.
type CatalogService struct {
	api   catalogAPI
	cache queries.Repository
	log   logging.Logger
}

func NewCatalogService(api catalogAPI, cache queries.Repository, log logging.Logger) *CatalogService {
	return &CatalogService{api: api, cache: cache, log: log}
}

func (s *CatalogService) Materials(ctx context.Context, modelID string) ([]models.Material, error) {
	return fetchCached(ctx, s.cache, queries.MaterialsKey(modelID), s.log,
		func(ctx context.Context) ([]models.Material, error) {
			return s.api.ListMaterials(ctx, modelID)
		})
}

func (s *CatalogService) CreateMaterial(ctx context.Context, modelID string, draft models.MaterialDraft) (*models.Material, error) {
	material, err := s.api.CreateMaterial(ctx, modelID, draft)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx, queries.MaterialsKey(modelID))
	return material, nil
}

func (s *CatalogService) UpdateMaterial(ctx context.Context, modelID, id string, draft models.MaterialDraft) (*models.Material, error) {
	material, err := s.api.UpdateMaterial(ctx, id, draft)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx, queries.MaterialsKey(modelID))
	return material, nil
}

func (s *CatalogService) DeleteMaterial(ctx context.Context, modelID, id string) error {
	if err := s.api.DeleteMaterial(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx, queries.MaterialsKey(modelID))
	return nil
}

func (s *CatalogService) Sections(ctx context.Context, modelID string) ([]models.Section, error) {
	return fetchCached(ctx, s.cache, queries.SectionsKey(modelID), s.log,
		func(ctx context.Context) ([]models.Section, error) {
			return s.api.ListSections(ctx, modelID)
		})
}

func (s *CatalogService) CreateSection(ctx context.Context, modelID string, draft models.SectionDraft) (*models.Section, error) {
	section, err := s.api.CreateSection(ctx, modelID, draft)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx, queries.SectionsKey(modelID))
	return section, nil
}

func (s *CatalogService) UpdateSection(ctx context.Context, modelID, id string, draft models.SectionDraft) (*models.Section, error) {
	section, err := s.api.UpdateSection(ctx, id, draft)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx, queries.SectionsKey(modelID))
	return section, nil
}

func (s *CatalogService) DeleteSection(ctx context.Context, modelID, id string) error {
	if err := s.api.DeleteSection(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx, queries.SectionsKey(modelID))
	return nil
}
