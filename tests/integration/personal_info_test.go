package integration

import (
	"context"
	"testing"

	"github.com/gomesdev1/portfolio-api/internal/models"
	"github.com/gomesdev1/portfolio-api/internal/services"
	"github.com/gomesdev1/portfolio-api/pkg/dto"
	"github.com/gomesdev1/portfolio-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonalInfoService_Integration_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	seeded := testutil.NewFixtures(tdb.DB).CreatePersonalInfo(t)
	svc := services.NewPersonalInfoService(tdb.DB)
	ctx := context.Background()

	status := models.Text("Empregado", "Employed")
	updated, err := svc.Update(ctx, dto.UpdatePersonalInfoRequest{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, seeded.ID, updated.ID)
	assert.Equal(t, "Employed", updated.Status.EN)
	assert.Equal(t, seeded.Title, updated.Title)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Empregado", got.Status.PT)
}
