package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sanyaraj24/CrimeReporting/internal/models"
)

// stubStatsService returns canned aggregates so the controller can be
// exercised without a postgres pool.
type stubStatsService struct {
	stats *models.CrimeStats
	err   error
}

func (s *stubStatsService) CrimeStats(ctx context.Context) (*models.CrimeStats, error) {
	return s.stats, s.err
}

func newStatsServer(svc *stubStatsService) *echo.Echo {
	e := echo.New()
	NewStatsController(svc).Register(e.Group(""))
	return e
}

func TestCrimeStats_Success(t *testing.T) {
	e := newStatsServer(&stubStatsService{
		stats: &models.CrimeStats{
			TotalReports: 3,
			Districts: []models.LabelCount{
				{Label: "Downtown", Count: 2},
				{Label: "Uptown", Count: 1},
			},
			SeverityLevels: []models.LabelCount{
				{Label: models.SeverityMinor, Count: 3},
			},
		},
	})

	rec := doRequest(e, http.MethodGet, "/crime-stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.EqualValues(t, 3, data["total_reports"])

	districts := data["districts"].([]any)
	require.Len(t, districts, 2)
	assert.Equal(t, "Downtown", districts[0].(map[string]any)["label"])
	assert.EqualValues(t, 2, districts[0].(map[string]any)["count"])
}

func TestCrimeStats_StoreError(t *testing.T) {
	e := newStatsServer(&stubStatsService{err: errors.New("pool closed")})

	rec := doRequest(e, http.MethodGet, "/crime-stats", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Failed to compute crime stats", body["error"])
	assert.Equal(t, "pool closed", body["details"])
}
