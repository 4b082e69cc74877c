package services

import (
	"context"
	"strings"

	"github.com/strumind/console/internal/client/models"
	"github.com/strumind/console/internal/client/repositories/queries"
	"github.com/strumind/console/internal/logging"
)

// projectAPI is the slice of the API surface the project service needs.
type projectAPI interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, draft models.ProjectDraft) (*models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	UpdateProject(ctx context.Context, id string, draft models.ProjectDraft) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error
	ListModels(ctx context.Context, projectID string) ([]models.StructuralModel, error)
	CreateModel(ctx context.Context, projectID string, draft models.ModelDraft) (*models.StructuralModel, error)
}

type ProjectService struct {
	api   projectAPI
	cache queries.Repository
	log   logging.Logger
}

func NewProjectService(api projectAPI, cache queries.Repository, log logging.Logger) *ProjectService {
	return &ProjectService{api: api, cache: cache, log: log}
}

// List returns the user's projects, served from cache until the list key
// is invalidated by a mutation.
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return fetchCached(ctx, s.cache, queries.ProjectsKey(), s.log, s.api.ListProjects)
}

// Filter narrows a project list by case-insensitive substring match on
// name or description. An empty term returns the list unchanged.
func Filter(projects []models.Project, term string) []models.Project {
	if term == "" {
		return projects
	}
	needle := strings.ToLower(term)

	filtered := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Create submits a new project. On success the cached list is stale and
// gets invalidated; on failure the cache is untouched so the caller's view
// stays consistent.
func (s *ProjectService) Create(ctx context.Context, draft models.ProjectDraft) (*models.Project, error) {
	project, err := s.api.CreateProject(ctx, draft)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Invalidate(ctx, queries.ProjectsKey()); err != nil {
		s.log.Warn(ctx, "invalidating project list", "error", err)
	}
	return project, nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (*models.Project, error) {
	return fetchCached(ctx, s.cache, queries.ProjectKey(id), s.log,
		func(ctx context.Context) (*models.Project, error) {
			return s.api.GetProject(ctx, id)
		})
}

func (s *ProjectService) Update(ctx context.Context, id string, draft models.ProjectDraft) (*models.Project, error) {
	project, err := s.api.UpdateProject(ctx, id, draft)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx, queries.ProjectsKey())
	_ = s.cache.InvalidatePrefix(ctx, queries.ProjectKey(id))
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteProject(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx, queries.ProjectsKey())
	_ = s.cache.InvalidatePrefix(ctx, queries.ProjectKey(id))
	return nil
}

// Models lists the structural models of a project.
func (s *ProjectService) Models(ctx context.Context, projectID string) ([]models.StructuralModel, error) {
	return fetchCached(ctx, s.cache, queries.ProjectModelsKey(projectID), s.log,
		func(ctx context.Context) ([]models.StructuralModel, error) {
			return s.api.ListModels(ctx, projectID)
		})
}

func (s *ProjectService) CreateModel(ctx context.Context, projectID string, draft models.ModelDraft) (*models.StructuralModel, error) {
	model, err := s.api.CreateModel(ctx, projectID, draft)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx, queries.ProjectModelsKey(projectID))
	return model, nil
}
