package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staff-attendance-backend/internal/clock"
	"staff-attendance-backend/internal/engine"
	"staff-attendance-backend/internal/model"
	"staff-attendance-backend/internal/repository"
)

func TestGateMarkPresentClassifiesAgainstThreshold(t *testing.T) {
	clk := clock.NewManual(schoolMorning(7, 45), windowOpen, windowClose)
	store := repository.NewMemoryStore()
	gate := engine.NewGate(clk, store, lateThreshold)

	rec, err := gate.MarkPresent(7, "ADM-0001")
	require.NoError(t, err)

	assert.Equal(t, model.StatusPresent, rec.Status)
	assert.Equal(t, model.OriginManual, rec.Origin)
	assert.Equal(t, "ADM-0001", rec.EntryBy)
	require.NotNil(t, rec.ArrivalTime)
	assert.Equal(t, "07:45", *rec.ArrivalTime)
	assert.NotEmpty(t, rec.Stamp.Digest)
}

func TestGateMarkAbsentRejectsUnknownType(t *testing.T) {
	clk := clock.NewManual(schoolMorning(9, 0), windowOpen, windowClose)
	gate := engine.NewGate(clk, repository.NewMemoryStore(), lateThreshold)

	_, err := gate.MarkAbsent(7, model.AbsentType("vacation"), "", "ADM-0001")
	require.Error(t, err)
}

func TestGateMarkAbsentHasNoArrival(t *testing.T) {
	clk := clock.NewManual(schoolMorning(9, 0), windowOpen, windowClose)
	store := repository.NewMemoryStore()
	gate := engine.NewGate(clk, store, lateThreshold)

	rec, err := gate.MarkAbsent(7, model.AbsentOfficialDuty, "district workshop", "ADM-0001")
	require.NoError(t, err)

	assert.Equal(t, model.StatusAbsent, rec.Status)
	assert.Nil(t, rec.ArrivalTime)
	assert.Equal(t, "district workshop", rec.Notes)

	day, err := store.ReadDay("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, rec, day[7])
}

func TestGateOverrideReplacesAutoRecordWhole(t *testing.T) {
	clk := clock.NewManual(schoolMorning(8, 30), windowOpen, windowClose)
	store := repository.NewMemoryStore()
	gate := engine.NewGate(clk, store, lateThreshold)
	sweeper := newSweeper(clk, store, roster(staffMember(7, "G")), nil)

	_, err := gate.RecordArrival(7)
	require.NoError(t, err)
	require.NoError(t, sweeper.RunCycle())

	day, _ := store.ReadDay("2026-09-01")
	require.Equal(t, model.StatusLate, day[7].Status)

	// Manual write supersedes the auto classification later the same day.
	rec, err := gate.MarkAbsent(7, model.AbsentSickLeave, "sent home ill", "ADM-0001")
	require.NoError(t, err)

	day, _ = store.ReadDay("2026-09-01")
	assert.Equal(t, rec, day[7])
	assert.Nil(t, day[7].ArrivalTime, "replacement is whole-record, no field merging")
}

func TestGateRecordArrivalRejectsDoubleCheckIn(t *testing.T) {
	clk := clock.NewManual(schoolMorning(7, 0), windowOpen, windowClose)
	store := repository.NewMemoryStore()
	gate := engine.NewGate(clk, store, lateThreshold)

	first, err := gate.RecordArrival(7)
	require.NoError(t, err)
	assert.Equal(t, model.StatusNotRecorded, first.Status, "classification waits for the sweep")

	clk.Advance(30 * time.Minute)
	_, err = gate.RecordArrival(7)
	require.Error(t, err)

	day, _ := store.ReadDay("2026-09-01")
	assert.Equal(t, first, day[7], "first arrival wins")
}
