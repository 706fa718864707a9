package engine

import (
	"fmt"

	"staff-attendance-backend/internal/clock"
	"staff-attendance-backend/internal/model"
	"staff-attendance-backend/internal/repository"
	"staff-attendance-backend/internal/stamp"
)

// Gate is the manual override entry point. A privileged actor's write always
// wins: it replaces whatever is in the day map, and the sweep refuses to touch
// records whose origin is manual. The gate itself never needs to check origin.
// Capability checks belong to the caller (middleware); the gate trusts the
// actor identity it is given.
type Gate struct {
	clk           clock.Source
	store         repository.RecordStore
	lateThreshold clock.TimeOfDay
}

func NewGate(clk clock.Source, store repository.RecordStore, lateThreshold clock.TimeOfDay) *Gate {
	return &Gate{clk: clk, store: store, lateThreshold: lateThreshold}
}

// MarkPresent stamps the staff member's arrival as now and classifies it
// against the late threshold.
func (g *Gate) MarkPresent(staffID uint, actor string) (model.AttendanceRecord, error) {
	date := g.clk.Today()
	arrival := clock.TimeOfDayFrom(g.clk.Now())
	arrivalStr := arrival.String()

	rec := model.AttendanceRecord{
		StaffID:     staffID,
		Date:        date,
		ArrivalTime: &arrivalStr,
		Status:      Classify(&arrival, g.lateThreshold),
		Origin:      model.OriginManual,
		EntryBy:     actor,
		Stamp:       stamp.Issue(g.clk),
	}
	return rec, g.replace(date, rec)
}

// MarkAbsent records an absence with a typed reason. Absent records carry no
// arrival time.
func (g *Gate) MarkAbsent(staffID uint, absentType model.AbsentType, reason, actor string) (model.AttendanceRecord, error) {
	if !model.ValidAbsentType(absentType) {
		return model.AttendanceRecord{}, fmt.Errorf("unknown absent type %q", absentType)
	}

	rec := model.AttendanceRecord{
		StaffID:    staffID,
		Date:       g.clk.Today(),
		Status:     model.StatusAbsent,
		AbsentType: absentType,
		Origin:     model.OriginManual,
		Notes:      reason,
		EntryBy:    actor,
		Stamp:      stamp.Issue(g.clk),
	}
	return rec, g.replace(rec.Date, rec)
}

// RecordArrival is the self-service check-in path: it stores the arrival
// instant without classifying it, leaving classification to the sweep's next
// morning pass. An existing record for the day is left untouched.
func (g *Gate) RecordArrival(staffID uint) (model.AttendanceRecord, error) {
	date := g.clk.Today()
	day, err := g.store.ReadDay(date)
	if err != nil {
		return model.AttendanceRecord{}, err
	}
	if existing, ok := day[staffID]; ok {
		return existing, fmt.Errorf("attendance already recorded for staff %d on %s", staffID, date)
	}

	arrivalStr := clock.TimeOfDayFrom(g.clk.Now()).String()
	rec := model.AttendanceRecord{
		StaffID:     staffID,
		Date:        date,
		ArrivalTime: &arrivalStr,
		Status:      model.StatusNotRecorded,
		Origin:      model.OriginAuto,
		EntryBy:     fmt.Sprintf("staff:%d", staffID),
		Stamp:       stamp.Issue(g.clk),
	}
	day[staffID] = rec
	return rec, g.store.WriteDay(date, day)
}

// replace does a read-modify-write of the whole day map, swapping in the one
// record. Records are replaced whole, never merged field by field.
func (g *Gate) replace(date string, rec model.AttendanceRecord) error {
	day, err := g.store.ReadDay(date)
	if err != nil {
		return err
	}
	day[rec.StaffID] = rec
	return g.store.WriteDay(date, day)
}
