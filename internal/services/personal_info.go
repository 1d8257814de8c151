package services

import (
	"context"

	"github.com/gomesdev1/portfolio-api/internal/database"
	"github.com/gomesdev1/portfolio-api/internal/models"
	"github.com/gomesdev1/portfolio-api/internal/repository"
	"github.com/gomesdev1/portfolio-api/pkg/dto"
)

type PersonalInfoService struct {
	repo *repository.Repository[models.PersonalInfo]
}

func NewPersonalInfoService(store database.Store) *PersonalInfoService {
	return &PersonalInfoService{repo: repository.New[models.PersonalInfo](store, database.PersonalInfoCollection)}
}

func (s *PersonalInfoService) Get(ctx context.Context) (*models.PersonalInfo, error) {
	return s.repo.GetOne(ctx)
}

// Update patches the singleton document, whichever id it was seeded with.
func (s *PersonalInfoService) Update(ctx context.Context, req dto.UpdatePersonalInfoRequest) (*models.PersonalInfo, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	current, err := s.repo.GetOne(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, current.ID, req)
}
