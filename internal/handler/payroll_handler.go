package handler

import (
	"github.com/gofiber/fiber/v2"

	"staff-attendance-backend/internal/clock"
	"staff-attendance-backend/internal/model"
	"staff-attendance-backend/internal/repository"
)

// PayrollHandler exposes the read surface the payroll collaborator folds into
// salary deductions: raw late/absent counts for a month plus the configured
// per-incident amounts. The engine computes no money.
type PayrollHandler struct {
	store    repository.RecordStore
	settings repository.SettingsRepository
	clk      clock.Source
}

func NewPayrollHandler(store repository.RecordStore, settings repository.SettingsRepository, clk clock.Source) *PayrollHandler {
	return &PayrollHandler{store: store, settings: settings, clk: clk}
}

func (h *PayrollHandler) GetDeductions(c *fiber.Ctx) error {
	staffID := c.QueryInt("staff_id", 0)
	if staffID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "staff_id is required"})
	}
	month := c.QueryInt("month", int(h.clk.Now().Month()))
	year := c.QueryInt("year", h.clk.Now().Year())

	records, err := collectMonth(h.store, uint(staffID), month, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "attendance store unavailable"})
	}

	lateDays, absentDays := deductionDayCounts(records)

	settings, err := h.settings.GetDeductions()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read deduction settings"})
	}

	return c.JSON(fiber.Map{
		"staff_id": staffID,
		"month":    month,
		"year":     year,
		"data": fiber.Map{
			"late_days":          lateDays,
			"absent_days":        absentDays,
			"late_amount_each":   settings.LateAmount,
			"absent_amount_each": settings.AbsentAmount,
		},
	})
}

// deductionDayCounts tallies the chargeable days. Present and unclassified
// records never count.
func deductionDayCounts(records []model.AttendanceRecord) (lateDays, absentDays int) {
	for _, rec := range records {
		switch rec.Status {
		case model.StatusLate:
			lateDays++
		case model.StatusAbsent:
			absentDays++
		}
	}
	return lateDays, absentDays
}

type UpdateDeductionsRequest struct {
	LateAmount   int `json:"late_amount" validate:"min=0"`
	AbsentAmount int `json:"absent_amount" validate:"min=0"`
}

func (h *PayrollHandler) UpdateDeductions(c *fiber.Ctx) error {
	var req UpdateDeductionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	settings := &model.DeductionSettings{LateAmount: req.LateAmount, AbsentAmount: req.AbsentAmount}
	if err := h.settings.SaveDeductions(settings); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save deduction settings"})
	}

	return c.JSON(fiber.Map{
		"message": "deduction settings updated",
		"data":    settings,
	})
}
