package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"staff-attendance-backend/internal/engine"
	"staff-attendance-backend/internal/model"
)

func TestAggregateEmpty(t *testing.T) {
	got := engine.Aggregate(nil)
	assert.Equal(t, engine.Summary{}, got, "empty input must not divide by zero")
}

func TestAggregateCountsAndPercentage(t *testing.T) {
	records := []model.AttendanceRecord{
		{Status: model.StatusPresent},
		{Status: model.StatusAbsent},
		{Status: model.StatusAbsent},
	}

	got := engine.Aggregate(records)

	assert.Equal(t, engine.Summary{Present: 1, Late: 0, Absent: 2, Total: 3, Percentage: 33}, got)
}

func TestAggregateIgnoresUnclassified(t *testing.T) {
	records := []model.AttendanceRecord{
		{Status: model.StatusPresent},
		{Status: model.StatusNotRecorded},
		{Status: model.StatusLate},
	}

	got := engine.Aggregate(records)

	assert.Equal(t, 2, got.Total)
	assert.Equal(t, 50, got.Percentage)
}
