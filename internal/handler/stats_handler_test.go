package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staff-attendance-backend/internal/clock"
	"staff-attendance-backend/internal/engine"
	"staff-attendance-backend/internal/model"
	"staff-attendance-backend/internal/repository"
)

func statsApp(t *testing.T, store repository.RecordStore) *fiber.App {
	t.Helper()
	clk := clock.NewManual(
		time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC),
		clock.TimeOfDay{Hour: 6}, clock.TimeOfDay{Hour: 18},
	)
	app := fiber.New()
	app.Get("/summary", NewStatsHandler(store, clk).GetSummary)
	return app
}

func TestGetSummaryFoldsWindow(t *testing.T) {
	store := repository.NewMemoryStore()
	seedDay(t, store, "2026-09-01", map[uint]model.AttendanceRecord{
		7: statusRecord(7, "2026-09-01", model.StatusPresent),
	})
	seedDay(t, store, "2026-09-02", map[uint]model.AttendanceRecord{
		7: statusRecord(7, "2026-09-02", model.StatusLate),
	})
	app := statsApp(t, store)

	resp, err := app.Test(httptest.NewRequest("GET", "/summary?from=2026-09-01&to=2026-09-02", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Summary engine.Summary `json:"summary"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, engine.Summary{Present: 1, Late: 1, Total: 2, Percentage: 50}, body.Summary)
}

func TestGetSummaryRejectsOversizedWindow(t *testing.T) {
	app := statsApp(t, repository.NewMemoryStore())

	resp, err := app.Test(httptest.NewRequest("GET", "/summary?from=0001-01-01&to=2026-09-01", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetSummaryRejectsInvertedWindow(t *testing.T) {
	app := statsApp(t, repository.NewMemoryStore())

	resp, err := app.Test(httptest.NewRequest("GET", "/summary?from=2026-09-02&to=2026-09-01", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
