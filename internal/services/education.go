package services

import (
	"context"

	"github.com/gomesdev1/portfolio-api/internal/database"
	"github.com/gomesdev1/portfolio-api/internal/models"
	"github.com/gomesdev1/portfolio-api/internal/repository"
	"github.com/gomesdev1/portfolio-api/pkg/dto"
)

type EducationService struct {
	repo *repository.Repository[models.Education]
}

func NewEducationService(store database.Store) *EducationService {
	return &EducationService{repo: repository.New[models.Education](store, database.EducationCollection)}
}

func (s *EducationService) ListActive(ctx context.Context) ([]models.Education, error) {
	return s.repo.List(ctx, activeOnly, repository.ByOrder)
}

func (s *EducationService) Create(ctx context.Context, req dto.CreateEducationRequest) (*models.Education, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, req.ToEducation())
}

func (s *EducationService) Update(ctx context.Context, id string, req dto.UpdateEducationRequest) (*models.Education, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, req)
}
