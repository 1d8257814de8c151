package testutil

import (
	"context"

	"github.com/gomesdev1/portfolio-api/internal/models"
	"github.com/gomesdev1/portfolio-api/pkg/dto"
	"github.com/stretchr/testify/mock"
)

// MockPersonalInfoService mocks the PersonalInfoService
type MockPersonalInfoService struct {
	mock.Mock
}

func (m *MockPersonalInfoService) Get(ctx context.Context) (*models.PersonalInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PersonalInfo), args.Error(1)
}

func (m *MockPersonalInfoService) Update(ctx context.Context, req dto.UpdatePersonalInfoRequest) (*models.PersonalInfo, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PersonalInfo), args.Error(1)
}

// MockSkillService mocks the SkillService
type MockSkillService struct {
	mock.Mock
}

func (m *MockSkillService) ListActive(ctx context.Context) ([]models.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Skill), args.Error(1)
}

func (m *MockSkillService) Create(ctx context.Context, req dto.CreateSkillRequest) (*models.Skill, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *MockSkillService) Update(ctx context.Context, id string, req dto.UpdateSkillRequest) (*models.Skill, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *MockSkillService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEducationService mocks the EducationService
type MockEducationService struct {
	mock.Mock
}

func (m *MockEducationService) ListActive(ctx context.Context) ([]models.Education, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Education), args.Error(1)
}

func (m *MockEducationService) Create(ctx context.Context, req dto.CreateEducationRequest) (*models.Education, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Education), args.Error(1)
}

func (m *MockEducationService) Update(ctx context.Context, id string, req dto.UpdateEducationRequest) (*models.Education, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Education), args.Error(1)
}

// MockProjectService mocks the ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) List(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockProjectService) ListFeatured(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockProjectService) Create(ctx context.Context, req dto.CreateProjectRequest) (*models.Project, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, id string, req dto.UpdateProjectRequest) (*models.Project, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

// MockGoalService mocks the GoalService
type MockGoalService struct {
	mock.Mock
}

func (m *MockGoalService) ListActive(ctx context.Context) ([]models.Goal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Goal), args.Error(1)
}

func (m *MockGoalService) Create(ctx context.Context, req dto.CreateGoalRequest) (*models.Goal, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Goal), args.Error(1)
}

func (m *MockGoalService) Update(ctx context.Context, id string, req dto.UpdateGoalRequest) (*models.Goal, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Goal), args.Error(1)
}

// MockLearningService mocks the LearningService
type MockLearningService struct {
	mock.Mock
}

func (m *MockLearningService) ListActive(ctx context.Context) ([]models.LearningItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LearningItem), args.Error(1)
}

func (m *MockLearningService) Create(ctx context.Context, req dto.CreateLearningItemRequest) (*models.LearningItem, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LearningItem), args.Error(1)
}

func (m *MockLearningService) Update(ctx context.Context, id string, req dto.UpdateLearningItemRequest) (*models.LearningItem, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LearningItem), args.Error(1)
}

// MockPortfolioService mocks the PortfolioService
type MockPortfolioService struct {
	mock.Mock
}

func (m *MockPortfolioService) Snapshot(ctx context.Context) (*models.Portfolio, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Portfolio), args.Error(1)
}

// MockHealthChecker mocks the database ping
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
