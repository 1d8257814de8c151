package handlers

import (
	"context"

	"github.com/gomesdev1/portfolio-api/internal/models"
	"github.com/gomesdev1/portfolio-api/pkg/dto"
)

// PersonalInfoServiceInterface defines the methods used by handlers from PersonalInfoService
type PersonalInfoServiceInterface interface {
	Get(ctx context.Context) (*models.PersonalInfo, error)
	Update(ctx context.Context, req dto.UpdatePersonalInfoRequest) (*models.PersonalInfo, error)
}

// SkillServiceInterface defines the methods used by handlers from SkillService
type SkillServiceInterface interface {
	ListActive(ctx context.Context) ([]models.Skill, error)
	Create(ctx context.Context, req dto.CreateSkillRequest) (*models.Skill, error)
	Update(ctx context.Context, id string, req dto.UpdateSkillRequest) (*models.Skill, error)
	Delete(ctx context.Context, id string) error
}

// EducationServiceInterface defines the methods used by handlers from EducationService
type EducationServiceInterface interface {
	ListActive(ctx context.Context) ([]models.Education, error)
	Create(ctx context.Context, req dto.CreateEducationRequest) (*models.Education, error)
	Update(ctx context.Context, id string, req dto.UpdateEducationRequest) (*models.Education, error)
}

// ProjectServiceInterface defines the methods used by handlers from ProjectService
type ProjectServiceInterface interface {
	List(ctx context.Context) ([]models.Project, error)
	ListFeatured(ctx context.Context) ([]models.Project, error)
	Create(ctx context.Context, req dto.CreateProjectRequest) (*models.Project, error)
	Update(ctx context.Context, id string, req dto.UpdateProjectRequest) (*models.Project, error)
}

// GoalServiceInterface defines the methods used by handlers from GoalService
type GoalServiceInterface interface {
	ListActive(ctx context.Context) ([]models.Goal, error)
	Create(ctx context.Context, req dto.CreateGoalRequest) (*models.Goal, error)
	Update(ctx context.Context, id string, req dto.UpdateGoalRequest) (*models.Goal, error)
}

// LearningServiceInterface defines the methods used by handlers from LearningService
type LearningServiceInterface interface {
	ListActive(ctx context.Context) ([]models.LearningItem, error)
	Create(ctx context.Context, req dto.CreateLearningItemRequest) (*models.LearningItem, error)
	Update(ctx context.Context, id string, req dto.UpdateLearningItemRequest) (*models.LearningItem, error)
}

// PortfolioServiceInterface defines the methods used by handlers from PortfolioService
type PortfolioServiceInterface interface {
	Snapshot(ctx context.Context) (*models.Portfolio, error)
}

// HealthChecker is satisfied by database.DB
type HealthChecker interface {
	Ping(ctx context.Context) error
}
