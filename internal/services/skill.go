package services

import (
	"context"

	"github.com/gomesdev1/portfolio-api/internal/database"
	"github.com/gomesdev1/portfolio-api/internal/models"
	"github.com/gomesdev1/portfolio-api/internal/repository"
	"github.com/gomesdev1/portfolio-api/pkg/dto"
	"go.mongodb.org/mongo-driver/bson"
)

var activeOnly = bson.M{"is_active": true}

type SkillService struct {
	repo *repository.Repository[models.Skill]
}

func NewSkillService(store database.Store) *SkillService {
	return &SkillService{repo: repository.New[models.Skill](store, database.SkillsCollection)}
}

func (s *SkillService) ListActive(ctx context.Context) ([]models.Skill, error) {
	return s.repo.List(ctx, activeOnly, repository.ByOrder)
}

func (s *SkillService) Create(ctx context.Context, req dto.CreateSkillRequest) (*models.Skill, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, req.ToSkill())
}

func (s *SkillService) Update(ctx context.Context, id string, req dto.UpdateSkillRequest) (*models.Skill, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, req)
}

// Delete removes the skill permanently. Hiding it is done with is_active.
func (s *SkillService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
