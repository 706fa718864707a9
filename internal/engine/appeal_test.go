package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staff-attendance-backend/internal/clock"
	"staff-attendance-backend/internal/engine"
	"staff-attendance-backend/internal/model"
	"staff-attendance-backend/internal/repository"
)

type appealRepoStub struct {
	created []*model.Appeal
}

func (r *appealRepoStub) Create(appeal *model.Appeal) error {
	r.created = append(r.created, appeal)
	return nil
}
func (r *appealRepoStub) GetByStaffID(uint) ([]model.Appeal, error) { return nil, nil }
func (r *appealRepoStub) GetPending() ([]model.Appeal, error)       { return nil, nil }
func (r *appealRepoStub) GetByID(uint) (*model.Appeal, error)       { return nil, nil }
func (r *appealRepoStub) Update(*model.Appeal) error                { return nil }

func appealFixture(t *testing.T, status model.AttendanceStatus) (*engine.Appeals, *appealRepoStub) {
	t.Helper()
	clk := clock.NewManual(schoolMorning(11, 0), windowOpen, windowClose)
	store := repository.NewMemoryStore()
	require.NoError(t, store.WriteDay("2026-09-01", map[uint]model.AttendanceRecord{
		7: {StaffID: 7, Date: "2026-09-01", Status: status, Origin: model.OriginAuto},
	}))
	repo := &appealRepoStub{}
	return engine.NewAppeals(clk, store, repo), repo
}

func TestSubmitAppealForLateRecord(t *testing.T) {
	appeals, repo := appealFixture(t, model.StatusLate)

	appeal, err := appeals.Submit(7, "2026-09-01", model.AppealCategorySick, "was at the clinic")
	require.NoError(t, err)

	assert.Equal(t, model.AppealPending, appeal.Status)
	assert.NotEmpty(t, appeal.Reference)
	assert.Equal(t, uint(7), appeal.StaffID)
	require.Len(t, repo.created, 1)
}

func TestSubmitAppealForAbsentRecord(t *testing.T) {
	appeals, _ := appealFixture(t, model.StatusAbsent)

	appeal, err := appeals.Submit(7, "2026-09-01", model.AppealCategoryOther, "family matter")
	require.NoError(t, err)
	assert.Equal(t, model.AppealPending, appeal.Status)
}

func TestSubmitAppealRejectsPresentRecord(t *testing.T) {
	appeals, repo := appealFixture(t, model.StatusPresent)

	_, err := appeals.Submit(7, "2026-09-01", model.AppealCategorySick, "irrelevant")
	require.ErrorIs(t, err, engine.ErrAppealNotApplicable)
	assert.Empty(t, repo.created)
}

func TestSubmitAppealRejectsMissingRecord(t *testing.T) {
	appeals, _ := appealFixture(t, model.StatusLate)

	_, err := appeals.Submit(99, "2026-09-01", model.AppealCategorySick, "no record that day")
	require.ErrorIs(t, err, engine.ErrAppealNotApplicable)
}

func TestSubmitAppealRejectsUnknownCategory(t *testing.T) {
	appeals, _ := appealFixture(t, model.StatusLate)

	_, err := appeals.Submit(7, "2026-09-01", model.AppealCategory("grudge"), "")
	require.Error(t, err)
	require.NotErrorIs(t, err, engine.ErrAppealNotApplicable)
}
