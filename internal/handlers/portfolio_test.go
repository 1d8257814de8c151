package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gomesdev1/portfolio-api/internal/models"
	"github.com/gomesdev1/portfolio-api/internal/repository"
	"github.com/gomesdev1/portfolio-api/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPortfolioHandler_Get_Success(t *testing.T) {
	mockPortfolioService := new(testutil.MockPortfolioService)
	handler := NewPortfolioHandler(mockPortfolioService)

	portfolio := &models.Portfolio{
		PersonalInfo:    models.PersonalInfo{ID: testID, Name: "Pedro Gomes"},
		Skills:          []models.Skill{{ID: testID, Order: 1, IsActive: true}},
		Education:       []models.Education{},
		Projects:        []models.Project{},
		Goals:           []models.Goal{},
		CurrentLearning: []models.LearningItem{},
	}
	mockPortfolioService.On("Snapshot", mock.Anything).Return(portfolio, nil)

	app := drift.New()
	app.Get("/portfolio", handler.Get)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/portfolio", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	data, ok := response["data"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"personal_info", "skills", "education", "projects", "goals", "current_learning"} {
		assert.Contains(t, data, key)
	}
	assert.Equal(t, []any{}, data["projects"])

	mockPortfolioService.AssertExpectations(t)
}

func TestPortfolioHandler_Get_NotSeeded(t *testing.T) {
	mockPortfolioService := new(testutil.MockPortfolioService)
	handler := NewPortfolioHandler(mockPortfolioService)
	mockPortfolioService.On("Snapshot", mock.Anything).Return(nil, fmt.Errorf("personal_info: %w", repository.ErrNotFound))

	app := drift.New()
	app.Get("/portfolio", handler.Get)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/portfolio", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "personal info not found")
}

func TestPortfolioHandler_Get_StoreFailure(t *testing.T) {
	mockPortfolioService := new(testutil.MockPortfolioService)
	handler := NewPortfolioHandler(mockPortfolioService)
	mockPortfolioService.On("Snapshot", mock.Anything).Return(nil, repository.ErrStoreUnavailable)

	app := drift.New()
	app.Get("/portfolio", handler.Get)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/portfolio", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "success")
}

func TestHealthHandler_Check(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{name: "connected", wantStatus: http.StatusOK, wantBody: `{"status":"healthy","database":"connected"}`},
		{name: "unreachable", pingErr: errors.New("no reachable servers"), wantStatus: http.StatusServiceUnavailable, wantBody: `{"status":"unhealthy","database":"disconnected"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := new(testutil.MockHealthChecker)
			checker.On("Ping", mock.Anything).Return(tt.pingErr)

			app := drift.New()
			app.Get("/health", NewHealthHandler(checker).Check)

			rec := httptest.NewRecorder()
			app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			checker.AssertExpectations(t)
		})
	}
}
