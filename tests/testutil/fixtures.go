package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/gomesdev1/portfolio-api/internal/database"
	"github.com/gomesdev1/portfolio-api/internal/models"
	"github.com/gomesdev1/portfolio-api/internal/repository"
)

// Fixtures provides factory methods for creating test data. It writes through
// the repositories, so stored documents have the same shape the API produces.
type Fixtures struct {
	store   database.Store
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(store database.Store) *Fixtures {
	return &Fixtures{store: store}
}

// CreatePersonalInfo stores the singleton personal info document
func (f *Fixtures) CreatePersonalInfo(t *testing.T) *models.PersonalInfo {
	t.Helper()

	info := models.PersonalInfo{
		Name:        "Test Person",
		Title:       models.Text("Desenvolvedor", "Developer"),
		Subtitle:    models.Text("Estudante", "Student"),
		Description: models.Text("Descrição", "Description"),
		Location:    "Brazil",
		Status:      models.Text("Disponível", "Available"),
		Contact: models.ContactInfo{
			Email:    "test@example.com",
			LinkedIn: "https://linkedin.com/in/test",
			GitHub:   "https://github.com/test",
		},
	}

	repo := repository.New[models.PersonalInfo](f.store, database.PersonalInfoCollection)
	created, err := repo.Create(context.Background(), info)
	if err != nil {
		t.Fatalf("failed to create personal info: %v", err)
	}
	return created
}

// Option configures an entity before it is stored
type Option func(any)

// WithOrder sets the order field
func WithOrder(order int) Option {
	return func(v any) {
		switch e := v.(type) {
		case *models.Skill:
			e.Order = order
		case *models.Education:
			e.Order = order
		case *models.Project:
			e.Order = order
		case *models.Goal:
			e.Order = order
		case *models.LearningItem:
			e.Order = order
		}
	}
}

// Inactive clears is_active, hiding the entity from read endpoints
func Inactive() Option {
	return func(v any) {
		switch e := v.(type) {
		case *models.Skill:
			e.IsActive = false
		case *models.Education:
			e.IsActive = false
		case *models.Goal:
			e.IsActive = false
		case *models.LearningItem:
			e.IsActive = false
		}
	}
}

// Featured marks a project as featured
func Featured() Option {
	return func(v any) {
		if p, ok := v.(*models.Project); ok {
			p.Featured = true
		}
	}
}

// CreateSkill creates an active test skill
func (f *Fixtures) CreateSkill(t *testing.T, opts ...Option) *models.Skill {
	t.Helper()
	f.counter++

	skill := models.Skill{
		Category:     models.Text(fmt.Sprintf("Categoria %d", f.counter), fmt.Sprintf("Category %d", f.counter)),
		Technologies: []string{"Go", "MongoDB"},
		Order:        f.counter,
		IsActive:     true,
	}
	return create(t, f.store, database.SkillsCollection, &skill, opts)
}

// CreateEducation creates an active test education entry
func (f *Fixtures) CreateEducation(t *testing.T, opts ...Option) *models.Education {
	t.Helper()
	f.counter++

	education := models.Education{
		Institution: fmt.Sprintf("Institution %d", f.counter),
		Degree:      models.Text("Bacharelado", "Bachelor's"),
		Period:      "2024",
		Status:      models.Text("Em andamento", "In progress"),
		Order:       f.counter,
		IsActive:    true,
	}
	return create(t, f.store, database.EducationCollection, &education, opts)
}

// CreateProject creates a test project in development
func (f *Fixtures) CreateProject(t *testing.T, opts ...Option) *models.Project {
	t.Helper()
	f.counter++

	project := models.Project{
		Title:        models.Text(fmt.Sprintf("Projeto %d", f.counter), fmt.Sprintf("Project %d", f.counter)),
		Description:  models.Text("Descrição", "Description"),
		Technologies: []string{},
		Status:       models.ProjectStatusDevelopment,
		Order:        f.counter,
	}
	return create(t, f.store, database.ProjectsCollection, &project, opts)
}

// CreateGoal creates an active test goal
func (f *Fixtures) CreateGoal(t *testing.T, opts ...Option) *models.Goal {
	t.Helper()
	f.counter++

	goal := models.Goal{
		Goal:     models.Text(fmt.Sprintf("Meta %d", f.counter), fmt.Sprintf("Goal %d", f.counter)),
		Order:    f.counter,
		IsActive: true,
	}
	return create(t, f.store, database.GoalsCollection, &goal, opts)
}

// CreateLearningItem creates an active test learning item
func (f *Fixtures) CreateLearningItem(t *testing.T, opts ...Option) *models.LearningItem {
	t.Helper()
	f.counter++

	item := models.LearningItem{
		Item:     models.Text(fmt.Sprintf("Item %d", f.counter), fmt.Sprintf("Item %d", f.counter)),
		Order:    f.counter,
		IsActive: true,
	}
	return create(t, f.store, database.CurrentLearningCollection, &item, opts)
}

func create[T any](t *testing.T, store database.Store, name string, item *T, opts []Option) *T {
	t.Helper()

	for _, opt := range opts {
		opt(item)
	}

	created, err := repository.New[T](store, name).Create(context.Background(), *item)
	if err != nil {
		t.Fatalf("failed to create %s fixture: %v", name, err)
	}
	return created
}
