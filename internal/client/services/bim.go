package services

import (
	"context"

	"github.com/strumind/console/internal/client/models"
	"github.com/strumind/console/internal/client/repositories/queries"
	"github.com/strumind/console/internal/logging"
)

type bimAPI interface {
	GetGeometry(ctx context.Context, modelID string) (*models.Geometry, error)
	UpdateGeometry(ctx context.Context, modelID string, g models.Geometry) error
	ExportBIM(ctx context.Context, modelID, format string) (*models.ExportInfo, error)
}

type BIMService struct {
	api   bimAPI
	cache queries.Repository
	log   logging.Logger
}

func NewBIMService(api bimAPI, cache queries.Repository, log logging.Logger) *BIMService {
	return &BIMService{api: api, cache: cache, log: log}
}

func (s *BIMService) Geometry(ctx context.Context, modelID string) (*models.Geometry, error) {
	return fetchCached(ctx, s.cache, queries.GeometryKey(modelID), s.log,
		func(ctx context.Context) (*models.Geometry, error) {
			return s.api.GetGeometry(ctx, modelID)
		})
}

func (s *BIMService) UpdateGeometry(ctx context.Context, modelID string, g models.Geometry) error {
	if err := s.api.UpdateGeometry(ctx, modelID, g); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx, queries.GeometryKey(modelID))
	return nil
}

// Export asks the server to produce a BIM file (ifc, step or dwg).
func (s *BIMService) Export(ctx context.Context, modelID, format string) (*models.ExportInfo, error) {
	return s.api.ExportBIM(ctx, modelID, format)
}
