package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/gomesdev1/portfolio-api/internal/database"
	"github.com/gomesdev1/portfolio-api/internal/models"
	"github.com/gomesdev1/portfolio-api/internal/repository"
	"github.com/gomesdev1/portfolio-api/internal/services"
	"github.com/gomesdev1/portfolio-api/pkg/dto"
	"github.com/gomesdev1/portfolio-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSkillService_Integration_CreateAndList(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewSkillService(tdb.DB)
	ctx := context.Background()

	for _, order := range []int{3, 1, 2} {
		_, err := svc.Create(ctx, dto.CreateSkillRequest{
			Category:     &models.BilingualText{PT: "Categoria", EN: "Category"},
			Technologies: []string{"Go"},
			Order:        order,
		})
		require.NoError(t, err)
	}

	skills, err := svc.ListActive(ctx)

	require.NoError(t, err)
	require.Len(t, skills, 3)
	assert.Equal(t, 1, skills[0].Order)
	assert.Equal(t, 2, skills[1].Order)
	assert.Equal(t, 3, skills[2].Order)
	for _, s := range skills {
		_, err := primitive.ObjectIDFromHex(s.ID)
		assert.NoError(t, err)
	}
}

func TestSkillService_Integration_EqualOrderKeepsInsertionOrder(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewSkillService(tdb.DB)

	first := fixtures.CreateSkill(t, testutil.WithOrder(1))
	second := fixtures.CreateSkill(t, testutil.WithOrder(1))

	skills, err := svc.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.Equal(t, first.ID, skills[0].ID)
	assert.Equal(t, second.ID, skills[1].ID)
}

func TestSkillService_Integration_PartialUpdate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewSkillService(tdb.DB)
	ctx := context.Background()

	skill := fixtures.CreateSkill(t, testutil.WithOrder(4))

	techs := []string{"HTML", "CSS", "JavaScript", "React"}
	updated, err := svc.Update(ctx, skill.ID, dto.UpdateSkillRequest{Technologies: &techs})

	require.NoError(t, err)
	assert.Equal(t, techs, updated.Technologies)
	assert.Equal(t, skill.Category, updated.Category)
	assert.Equal(t, 4, updated.Order)
	assert.True(t, skill.CreatedAt.Equal(updated.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(skill.UpdatedAt))
}

func TestSkillService_Integration_DeactivateHidesFromList(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewSkillService(tdb.DB)
	ctx := context.Background()

	skill := fixtures.CreateSkill(t)

	inactive := false
	_, err := svc.Update(ctx, skill.ID, dto.UpdateSkillRequest{IsActive: &inactive})
	require.NoError(t, err)

	skills, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, skills)

	count, err := tdb.DB.Database.Collection(database.SkillsCollection).CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSkillService_Integration_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewSkillService(tdb.DB)
	ctx := context.Background()

	skill := fixtures.CreateSkill(t)

	require.NoError(t, svc.Delete(ctx, skill.ID))

	err := svc.Delete(ctx, skill.ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	_, err = svc.Update(ctx, skill.ID, dto.UpdateSkillRequest{})
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestSkillService_Integration_InvalidID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewSkillService(tdb.DB)

	err := svc.Delete(context.Background(), "abc")

	assert.True(t, errors.Is(err, repository.ErrInvalidID))
}

func TestSkillService_Integration_CorruptDocument(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewSkillService(tdb.DB)
	ctx := context.Background()

	_, err := tdb.DB.Database.Collection(database.SkillsCollection).InsertOne(ctx, bson.M{
		"category":  bson.M{"pt": "Só português"},
		"order":     1,
		"is_active": true,
	})
	require.NoError(t, err)

	_, err = svc.ListActive(ctx)

	assert.True(t, errors.Is(err, repository.ErrValidation))
}
