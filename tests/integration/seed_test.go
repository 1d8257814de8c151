package integration

import (
	"context"
	"testing"

	"github.com/gomesdev1/portfolio-api/internal/seed"
	"github.com/gomesdev1/portfolio-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_Integration_RunTwice(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	ctx := context.Background()

	_, err := seed.Run(ctx, tdb.DB, seed.Default())
	require.NoError(t, err)
	results, err := seed.Run(ctx, tdb.DB, seed.Default())
	require.NoError(t, err)
	assert.Equal(t, int64(4), results[1].Cleared)

	portfolio, err := newPortfolioService(tdb).Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pedro Gomes", portfolio.PersonalInfo.Name)
	assert.Len(t, portfolio.Skills, 4)
	assert.Len(t, portfolio.Education, 2)
	assert.Len(t, portfolio.Projects, 1)
	assert.Len(t, portfolio.Goals, 4)
	assert.Len(t, portfolio.CurrentLearning, 5)

	learning, err := services.NewLearningService(tdb.DB).ListActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Java course with Spring Boot", learning[0].Item.EN)
}
