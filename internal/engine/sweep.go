package engine

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"staff-attendance-backend/internal/clock"
	"staff-attendance-backend/internal/model"
	"staff-attendance-backend/internal/repository"
	"staff-attendance-backend/internal/stamp"
)

// SweepIdentity is the EntryBy value on records the sweep writes.
const SweepIdentity = "auto-sweep"

const cutoffNote = "automatically marked absent at cutoff"

// StaffLister supplies the active roster the absence pass marks against.
type StaffLister interface {
	GetAllActive() ([]model.Staff, error)
}

// HolidayChecker suppresses the sweep on configured non-working dates.
type HolidayChecker interface {
	IsHoliday(date string) (bool, error)
}

// Sweeper is the auto-reconciliation sweep: a fixed-period procedure that
// classifies recorded arrivals and, once the cutoff passes, marks everyone
// without a record absent. Both passes are idempotent and neither ever
// overwrites a record whose origin is manual. That precedence rule is the
// engine's central correctness property.
//
// The sweeper is an explicitly constructed object with injected clock and
// store; the host application starts and stops it.
type Sweeper struct {
	clk      clock.Source
	store    repository.RecordStore
	staff    StaffLister
	holidays HolidayChecker // optional

	lateThreshold clock.TimeOfDay
	absentCutoff  clock.TimeOfDay
	interval      time.Duration

	log *logrus.Entry

	mu             sync.Mutex
	stop           chan struct{}
	lastCutoffDate string
}

func NewSweeper(
	clk clock.Source,
	store repository.RecordStore,
	staff StaffLister,
	holidays HolidayChecker,
	lateThreshold, absentCutoff clock.TimeOfDay,
	interval time.Duration,
) *Sweeper {
	return &Sweeper{
		clk:           clk,
		store:         store,
		staff:         staff,
		holidays:      holidays,
		lateThreshold: lateThreshold,
		absentCutoff:  absentCutoff,
		interval:      interval,
		log:           logrus.WithField("component", "sweep"),
	}
}

// Start launches the periodic sweep. A cycle that fails only logs; the next
// tick retries against whatever the store now holds.
func (s *Sweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return // already running
	}
	s.stop = make(chan struct{})

	go func(stop chan struct{}) {
		s.log.WithField("interval", s.interval).Info("sweep started")
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := s.RunCycle(); err != nil {
					s.log.WithError(err).Warn("sweep cycle failed, retrying next tick")
				}
			case <-stop:
				s.log.Info("sweep stopped")
				return
			}
		}
	}(s.stop)
}

// Stop clears the periodic timer. In-flight cycles run to completion.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}

// RunCycle executes one sweep iteration. Exported so tests (and operational
// tooling) can drive the sweep without the timer.
func (s *Sweeper) RunCycle() error {
	if !s.clk.IsSchoolDay() || !s.clk.IsWithinOperatingWindow() {
		return nil
	}
	date := s.clk.Today()
	if s.holidays != nil {
		holiday, err := s.holidays.IsHoliday(date)
		if err != nil {
			return err
		}
		if holiday {
			return nil
		}
	}

	if err := s.morningPass(date); err != nil {
		return err
	}

	now := clock.TimeOfDayFrom(s.clk.Now())
	if !now.Before(s.absentCutoff) {
		return s.cutoffPass(date)
	}
	return nil
}

// morningPass classifies every recorded arrival the classifier has not yet
// assigned a status. Manual records are skipped unconditionally.
func (s *Sweeper) morningPass(date string) error {
	day, err := s.store.ReadDay(date)
	if err != nil {
		return err
	}

	changed := false
	for id, rec := range day {
		if rec.Origin == model.OriginManual {
			continue
		}
		if rec.ArrivalTime == nil || rec.Status != model.StatusNotRecorded {
			continue
		}
		arrival, err := clock.ParseTimeOfDay(*rec.ArrivalTime)
		if err != nil {
			s.log.WithFields(logrus.Fields{"staff_id": id, "arrival": *rec.ArrivalTime}).
				Warn("unparseable arrival time, skipping")
			continue
		}

		rec.Status = Classify(&arrival, s.lateThreshold)
		rec.Origin = model.OriginAuto
		rec.EntryBy = SweepIdentity
		rec.Stamp = stamp.Issue(s.clk)
		day[id] = rec
		changed = true

		s.log.WithFields(logrus.Fields{
			"staff_id": id,
			"date":     date,
			"status":   rec.Status,
		}).Info("classified arrival")
	}

	if !changed {
		return nil
	}
	return s.store.WriteDay(date, day)
}

// cutoffPass marks every active staff member with no record for the day as
// absent (unauthorized). Guarded to fire at most once per day per process; the
// pass only fills missing records, so a restart replays it harmlessly.
func (s *Sweeper) cutoffPass(date string) error {
	s.mu.Lock()
	alreadyFired := s.lastCutoffDate == date
	s.mu.Unlock()
	if alreadyFired {
		return nil
	}

	roster, err := s.staff.GetAllActive()
	if err != nil {
		return err
	}
	day, err := s.store.ReadDay(date)
	if err != nil {
		return err
	}

	marked := 0
	for _, member := range roster {
		if _, ok := day[member.ID]; ok {
			continue
		}
		day[member.ID] = model.AttendanceRecord{
			StaffID:    member.ID,
			Date:       date,
			Status:     model.StatusAbsent,
			AbsentType: model.AbsentUnauthorized,
			Origin:     model.OriginAuto,
			Notes:      cutoffNote,
			EntryBy:    SweepIdentity,
			Stamp:      stamp.Issue(s.clk),
		}
		marked++
	}

	if marked > 0 {
		if err := s.store.WriteDay(date, day); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.lastCutoffDate = date
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"date": date, "marked": marked}).Info("absence cutoff pass done")
	return nil
}
