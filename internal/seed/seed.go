// Package seed clears the portfolio collections and writes a fixed dataset
// through the same repository Create path the API uses.
package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/gomesdev1/portfolio-api/internal/database"
	"github.com/gomesdev1/portfolio-api/internal/models"
	"github.com/gomesdev1/portfolio-api/internal/repository"
	"github.com/gomesdev1/portfolio-api/pkg/dto"
)

// Result reports what happened to one collection.
type Result struct {
	Collection string
	Cleared    int64
	Inserted   int
}

type clearer interface {
	Name() string
	Clear(ctx context.Context) (int64, error)
}

// Run empties every collection, then inserts data one document at a time.
func Run(ctx context.Context, store database.Store, data Dataset) ([]Result, error) {
	personalInfo := repository.New[models.PersonalInfo](store, database.PersonalInfoCollection)
	skills := repository.New[models.Skill](store, database.SkillsCollection)
	education := repository.New[models.Education](store, database.EducationCollection)
	projects := repository.New[models.Project](store, database.ProjectsCollection)
	goals := repository.New[models.Goal](store, database.GoalsCollection)
	learning := repository.New[models.LearningItem](store, database.CurrentLearningCollection)

	repos := []clearer{personalInfo, skills, education, projects, goals, learning}
	results := make([]Result, len(repos))
	for i, repo := range repos {
		n, err := repo.Clear(ctx)
		if err != nil {
			return nil, err
		}
		results[i] = Result{Collection: repo.Name(), Cleared: n}
		log.Printf("Cleared %s collection (%d documents)", repo.Name(), n)
	}

	if _, err := personalInfo.Create(ctx, data.PersonalInfo); err != nil {
		return nil, fmt.Errorf("failed to seed personal info: %w", err)
	}
	results[0].Inserted = 1

	var err error
	if results[1].Inserted, err = insertAll(ctx, skills, data.Skills, func(r dto.CreateSkillRequest) models.Skill { return r.ToSkill() }); err != nil {
		return nil, err
	}
	if results[2].Inserted, err = insertAll(ctx, education, data.Education, func(r dto.CreateEducationRequest) models.Education { return r.ToEducation() }); err != nil {
		return nil, err
	}
	if results[3].Inserted, err = insertAll(ctx, projects, data.Projects, func(r dto.CreateProjectRequest) models.Project { return r.ToProject() }); err != nil {
		return nil, err
	}
	if results[4].Inserted, err = insertAll(ctx, goals, data.Goals, func(r dto.CreateGoalRequest) models.Goal { return r.ToGoal() }); err != nil {
		return nil, err
	}
	if results[5].Inserted, err = insertAll(ctx, learning, data.CurrentLearning, func(r dto.CreateLearningItemRequest) models.LearningItem { return r.ToLearningItem() }); err != nil {
		return nil, err
	}

	for _, r := range results {
		log.Printf("Seeded %s: %d documents", r.Collection, r.Inserted)
	}
	return results, nil
}

func insertAll[R any, T any](ctx context.Context, repo *repository.Repository[T], reqs []R, convert func(R) T) (int, error) {
	for i, req := range reqs {
		if _, err := repo.Create(ctx, convert(req)); err != nil {
			return i, fmt.Errorf("failed to seed %s #%d: %w", repo.Name(), i+1, err)
		}
	}
	return len(reqs), nil
}
