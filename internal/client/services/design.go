package services

import (
	"context"

	"github.com/strumind/console/internal/client/models"
	"github.com/strumind/console/internal/client/repositories/queries"
	"github.com/strumind/console/internal/logging"
)

type designAPI interface {
	RunDesignCheck(ctx context.Context, req models.DesignRequest) ([]models.ElementDesignResult, error)
	ListDesignResults(ctx context.Context, modelID string) ([]models.ElementDesignResult, error)
	OptimizeDesign(ctx context.Context, req models.OptimizeRequest) ([]models.ElementDesignResult, error)
}

type DesignService struct {
	api   designAPI
	cache queries.Repository
	log   logging.Logger
}

func NewDesignService(api designAPI, cache queries.Repository, log logging.Logger) *DesignService {
	return &DesignService{api: api, cache: cache, log: log}
}

// Check runs code checks for the given elements. A fresh check makes the
// cached design results stale.
func (s *DesignService) Check(ctx context.Context, req models.DesignRequest) ([]models.ElementDesignResult, error) {
	results, err := s.api.RunDesignCheck(ctx, req)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx, queries.DesignResultsKey(req.ModelID))
	return results, nil
}

func (s *DesignService) Results(ctx context.Context, modelID string) ([]models.ElementDesignResult, error) {
	return fetchCached(ctx, s.cache, queries.DesignResultsKey(modelID), s.log,
		func(ctx context.Context) ([]models.ElementDesignResult, error) {
			return s.api.ListDesignResults(ctx, modelID)
		})
}

func (s *DesignService) Optimize(ctx context.Context, req models.OptimizeRequest) ([]models.ElementDesignResult, error) {
	results, err := s.api.OptimizeDesign(ctx, req)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx, queries.DesignResultsKey(req.ModelID))
	return results, nil
}
