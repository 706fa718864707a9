package engine

import (
	"staff-attendance-backend/internal/model"
	"staff-attendance-backend/internal/stamp"
)

// FlagUntrusted checks each record's integrity digest and marks failures as
// untrusted on the returned copy. A failing stamp downgrades trust in the
// record but never drops it; flagged records are kept for audit.
func FlagUntrusted(day map[uint]model.AttendanceRecord) map[uint]model.AttendanceRecord {
	out := make(map[uint]model.AttendanceRecord, len(day))
	for id, rec := range day {
		if err := stamp.CheckDigest(rec.Stamp); err != nil {
			rec.Untrusted = true
		}
		out[id] = rec
	}
	return out
}
