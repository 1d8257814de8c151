package services

import (
	"context"

	"github.com/gomesdev1/portfolio-api/internal/models"
	"golang.org/x/sync/errgroup"
)

// PortfolioService assembles every collection into one snapshot.
type PortfolioService struct {
	personalInfo *PersonalInfoService
	skills       *SkillService
	education    *EducationService
	projects     *ProjectService
	goals        *GoalService
	learning     *LearningService
}

func NewPortfolioService(
	personalInfo *PersonalInfoService,
	skills *SkillService,
	education *EducationService,
	projects *ProjectService,
	goals *GoalService,
	learning *LearningService,
) *PortfolioService {
	return &PortfolioService{
		personalInfo: personalInfo,
		skills:       skills,
		education:    education,
		projects:     projects,
		goals:        goals,
		learning:     learning,
	}
}

// Snapshot reads the six collections concurrently. Any failure, including a
// missing personal info document, fails the whole snapshot. Concurrent writers
// may produce a combination that never existed at a single instant.
func (s *PortfolioService) Snapshot(ctx context.Context) (*models.Portfolio, error) {
	g, gCtx := errgroup.WithContext(ctx)

	// each goroutine owns one field of p
	var p models.Portfolio

	g.Go(func() error {
		info, err := s.personalInfo.Get(gCtx)
		if err != nil {
			return err
		}
		p.PersonalInfo = *info
		return nil
	})
	g.Go(func() (err error) {
		p.Skills, err = s.skills.ListActive(gCtx)
		return err
	})
	g.Go(func() (err error) {
		p.Education, err = s.education.ListActive(gCtx)
		return err
	})
	g.Go(func() (err error) {
		p.Projects, err = s.projects.List(gCtx)
		return err
	})
	g.Go(func() (err error) {
		p.Goals, err = s.goals.ListActive(gCtx)
		return err
	})
	g.Go(func() (err error) {
		p.CurrentLearning, err = s.learning.ListActive(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &p, nil
}
