package engine

import (
	"math"

	"staff-attendance-backend/internal/model"
)

// Summary is the fold of a set of attendance records over some window. Window
// selection (day/week/month/term) is the caller's job: filter first, then fold.
type Summary struct {
	Present    int `json:"present"`
	Late       int `json:"late"`
	Absent     int `json:"absent"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// Aggregate counts records by status. Percentage is present/total rounded to
// the nearest whole percent, and 0 for an empty input.
func Aggregate(records []model.AttendanceRecord) Summary {
	var s Summary
	for _, rec := range records {
		switch rec.Status {
		case model.StatusPresent:
			s.Present++
		case model.StatusLate:
			s.Late++
		case model.StatusAbsent:
			s.Absent++
		default:
			continue // not_recorded does not count toward the total
		}
		s.Total++
	}
	if s.Total > 0 {
		s.Percentage = int(math.Round(float64(s.Present) / float64(s.Total) * 100))
	}
	return s
}
