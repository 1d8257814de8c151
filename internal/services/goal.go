package services

import (
	"context"

	"github.com/gomesdev1/portfolio-api/internal/database"
	"github.com/gomesdev1/portfolio-api/internal/models"
	"github.com/gomesdev1/portfolio-api/internal/repository"
	"github.com/gomesdev1/portfolio-api/pkg/dto"
)

type GoalService struct {
	repo *repository.Repository[models.Goal]
}

func NewGoalService(store database.Store) *GoalService {
	return &GoalService{repo: repository.New[models.Goal](store, database.GoalsCollection)}
}

func (s *GoalService) ListActive(ctx context.Context) ([]models.Goal, error) {
	return s.repo.List(ctx, activeOnly, repository.ByOrder)
}

func (s *GoalService) Create(ctx context.Context, req dto.CreateGoalRequest) (*models.Goal, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, req.ToGoal())
}

func (s *GoalService) Update(ctx context.Context, id string, req dto.UpdateGoalRequest) (*models.Goal, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, req)
}
