package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staff-attendance-backend/internal/model"
)

func TestDayMapKeysSurviveEncoding(t *testing.T) {
	arrival := "07:55"
	in := map[uint]model.AttendanceRecord{
		12: {StaffID: 12, Date: "2026-09-01", ArrivalTime: &arrival, Status: model.StatusPresent, Origin: model.OriginAuto},
		7:  {StaffID: 7, Date: "2026-09-01", Status: model.StatusAbsent, AbsentType: model.AbsentUnauthorized, Origin: model.OriginAuto},
	}

	raw, err := encodeDay(in)
	require.NoError(t, err)
	out, err := decodeDay(raw)
	require.NoError(t, err)

	assert.Equal(t, in, out, "staff-ID keys must round-trip through the JSON column")
}

func TestDecodeDayEmpty(t *testing.T) {
	out, err := decodeDay(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMemoryStoreMissingDayIsEmptyMap(t *testing.T) {
	store := NewMemoryStore()

	day, err := store.ReadDay("2026-09-01")
	require.NoError(t, err, "a missing day is an empty map, never an error")
	assert.Empty(t, day)
}

func TestMemoryStoreCopiesOnReadAndWrite(t *testing.T) {
	store := NewMemoryStore()
	in := map[uint]model.AttendanceRecord{7: {StaffID: 7, Status: model.StatusLate}}
	require.NoError(t, store.WriteDay("2026-09-01", in))

	// Mutating the caller's map or the read result must not leak into the store.
	in[7] = model.AttendanceRecord{StaffID: 7, Status: model.StatusPresent}
	got, err := store.ReadDay("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, model.StatusLate, got[7].Status)

	got[7] = model.AttendanceRecord{StaffID: 7, Status: model.StatusAbsent}
	again, _ := store.ReadDay("2026-09-01")
	assert.Equal(t, model.StatusLate, again[7].Status)
}
