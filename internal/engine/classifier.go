// Package engine implements the attendance reconciliation engine: status
// classification, the periodic auto-marking sweep, the manual override gate,
// the appeal submission workflow and the statistics rollup.
package engine

import (
	"staff-attendance-backend/internal/clock"
	"staff-attendance-backend/internal/model"
)

// Classify maps an arrival time (nil when the staff member never arrived) and
// the configured late threshold to a status. Comparison is at minute
// granularity; arrival exactly on the threshold counts as present.
func Classify(arrival *clock.TimeOfDay, lateThreshold clock.TimeOfDay) model.AttendanceStatus {
	if arrival == nil {
		return model.StatusAbsent
	}
	if arrival.After(lateThreshold) {
		return model.StatusLate
	}
	return model.StatusPresent
}
