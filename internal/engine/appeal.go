package engine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"staff-attendance-backend/internal/clock"
	"staff-attendance-backend/internal/model"
	"staff-attendance-backend/internal/repository"
)

// ErrAppealNotApplicable is returned when the contested day is not a late or
// absent classification.
var ErrAppealNotApplicable = errors.New("appeal not applicable: record is not late or absent")

// Appeals handles staff contests of late/absent classifications. Only the
// submission contract lives here; review and resolution are a separate
// privileged flow that never routes back through the engine.
type Appeals struct {
	clk     clock.Source
	store   repository.RecordStore
	appeals repository.AppealRepository
}

func NewAppeals(clk clock.Source, store repository.RecordStore, appeals repository.AppealRepository) *Appeals {
	return &Appeals{clk: clk, store: store, appeals: appeals}
}

// Submit creates a pending appeal for the staff member's own record on the
// given date. The contested record must be classified late or absent.
func (a *Appeals) Submit(staffID uint, date string, category model.AppealCategory, reason string) (*model.Appeal, error) {
	if !model.ValidAppealCategory(category) {
		return nil, fmt.Errorf("unknown appeal category %q", category)
	}
	if date > a.clk.Today() {
		return nil, ErrAppealNotApplicable
	}

	day, err := a.store.ReadDay(date)
	if err != nil {
		return nil, err
	}
	rec, ok := day[staffID]
	if !ok || (rec.Status != model.StatusLate && rec.Status != model.StatusAbsent) {
		return nil, ErrAppealNotApplicable
	}

	appeal := &model.Appeal{
		Reference: uuid.NewString(),
		StaffID:   staffID,
		Date:      date,
		Category:  category,
		Reason:    reason,
		Status:    model.AppealPending,
	}
	if err := a.appeals.Create(appeal); err != nil {
		return nil, err
	}
	return appeal, nil
}
