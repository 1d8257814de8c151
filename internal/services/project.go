package services

import (
	"context"

	"github.com/gomesdev1/portfolio-api/internal/database"
	"github.com/gomesdev1/portfolio-api/internal/models"
	"github.com/gomesdev1/portfolio-api/internal/repository"
	"github.com/gomesdev1/portfolio-api/pkg/dto"
	"go.mongodb.org/mongo-driver/bson"
)

type ProjectService struct {
	repo *repository.Repository[models.Project]
}

func NewProjectService(store database.Store) *ProjectService {
	return &ProjectService{repo: repository.New[models.Project](store, database.ProjectsCollection)}
}

// List returns every project regardless of status.
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.repo.List(ctx, bson.M{}, repository.ByOrder)
}

func (s *ProjectService) ListFeatured(ctx context.Context) ([]models.Project, error) {
	return s.repo.List(ctx, bson.M{"featured": true}, repository.ByOrder)
}

func (s *ProjectService) Create(ctx context.Context, req dto.CreateProjectRequest) (*models.Project, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, req.ToProject())
}

func (s *ProjectService) Update(ctx context.Context, id string, req dto.UpdateProjectRequest) (*models.Project, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, req)
}
