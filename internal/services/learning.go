package services

import (
	"context"

	"github.com/gomesdev1/portfolio-api/internal/database"
	"github.com/gomesdev1/portfolio-api/internal/models"
	"github.com/gomesdev1/portfolio-api/internal/repository"
	"github.com/gomesdev1/portfolio-api/pkg/dto"
)

// LearningService manages the "currently learning" list.
type LearningService struct {
	repo *repository.Repository[models.LearningItem]
}

func NewLearningService(store database.Store) *LearningService {
	return &LearningService{repo: repository.New[models.LearningItem](store, database.CurrentLearningCollection)}
}

func (s *LearningService) ListActive(ctx context.Context) ([]models.LearningItem, error) {
	return s.repo.List(ctx, activeOnly, repository.ByOrder)
}

func (s *LearningService) Create(ctx context.Context, req dto.CreateLearningItemRequest) (*models.LearningItem, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, req.ToLearningItem())
}

func (s *LearningService) Update(ctx context.Context, id string, req dto.UpdateLearningItemRequest) (*models.LearningItem, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, req)
}
