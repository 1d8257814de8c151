package integration

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gomesdev1/portfolio-api/internal/handlers"
	"github.com/gomesdev1/portfolio-api/internal/repository"
	"github.com/gomesdev1/portfolio-api/internal/services"
	"github.com/gomesdev1/portfolio-api/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newPortfolioService(tdb *testutil.TestDB) *services.PortfolioService {
	return services.NewPortfolioService(
		services.NewPersonalInfoService(tdb.DB),
		services.NewSkillService(tdb.DB),
		services.NewEducationService(tdb.DB),
		services.NewProjectService(tdb.DB),
		services.NewGoalService(tdb.DB),
		services.NewLearningService(tdb.DB),
	)
}

func TestPortfolioService_Integration_Snapshot(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)

	info := fixtures.CreatePersonalInfo(t)
	fixtures.CreateSkill(t, testutil.WithOrder(2))
	fixtures.CreateSkill(t, testutil.WithOrder(1))
	fixtures.CreateSkill(t, testutil.Inactive())
	fixtures.CreateEducation(t)
	fixtures.CreateProject(t, testutil.Featured())
	fixtures.CreateGoal(t)
	fixtures.CreateLearningItem(t, testutil.Inactive())

	portfolio, err := newPortfolioService(tdb).Snapshot(context.Background())

	require.NoError(t, err)
	assert.Equal(t, info.ID, portfolio.PersonalInfo.ID)
	assert.Equal(t, info.Contact, portfolio.PersonalInfo.Contact)
	require.Len(t, portfolio.Skills, 2)
	assert.Equal(t, 1, portfolio.Skills[0].Order)
	assert.Len(t, portfolio.Education, 1)
	assert.Len(t, portfolio.Projects, 1)
	assert.Len(t, portfolio.Goals, 1)
	assert.NotNil(t, portfolio.CurrentLearning)
	assert.Empty(t, portfolio.CurrentLearning)
}

func TestPortfolioService_Integration_NotSeeded(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)

	_, err := newPortfolioService(tdb).Snapshot(context.Background())

	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestPortfolioHandler_Integration_Response(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	fixtures.CreatePersonalInfo(t)
	fixtures.CreateSkill(t)

	app := drift.New()
	app.Get("/api/portfolio", handlers.NewPortfolioHandler(newPortfolioService(tdb)).Get)
	app.Get("/api/health", handlers.NewHealthHandler(tdb.DB).Check)

	client := testutil.NewHTTPTestClient(t, app)

	health := client.GET("/api/health", nil)
	testutil.AssertStatus(t, health, http.StatusOK)
	testutil.AssertJSON(t, health, map[string]interface{}{"status": "healthy", "database": "connected"})

	rec := client.GET("/api/portfolio", nil)
	testutil.AssertStatus(t, rec, http.StatusOK)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			PersonalInfo map[string]any   `json:"personal_info"`
			Skills       []map[string]any `json:"skills"`
			Projects     []map[string]any `json:"projects"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	require.Len(t, response.Data.Skills, 1)

	id, ok := response.Data.Skills[0]["id"].(string)
	require.True(t, ok)
	_, err := primitive.ObjectIDFromHex(id)
	assert.NoError(t, err)
	assert.NotNil(t, response.Data.Projects)
}
