package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"staff-attendance-backend/internal/clock"
	"staff-attendance-backend/internal/engine"
	"staff-attendance-backend/internal/model"
	"staff-attendance-backend/internal/repository"
)

type AttendanceHandler struct {
	gate  *engine.Gate
	store repository.RecordStore
	clk   clock.Source
}

func NewAttendanceHandler(gate *engine.Gate, store repository.RecordStore, clk clock.Source) *AttendanceHandler {
	return &AttendanceHandler{gate: gate, store: store, clk: clk}
}

// CheckIn records the caller's own arrival instant. Classification happens on
// the sweep's next morning pass.
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	staffID := uint(c.Locals("staff_id").(float64))

	if !h.clk.IsSchoolDay() || !h.clk.IsWithinOperatingWindow() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "check-in is only available during operating hours on school days"})
	}

	rec, err := h.gate.RecordArrival(staffID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "attendance store unavailable"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "check-in recorded",
		"data":    rec,
	})
}

type MarkPresentRequest struct {
	StaffID uint `json:"staff_id" validate:"required"`
}

// MarkPresent is the privileged override: arrival is stamped as now and
// classified immediately, origin manual.
func (h *AttendanceHandler) MarkPresent(c *fiber.Ctx) error {
	var req MarkPresentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rec, err := h.gate.MarkPresent(req.StaffID, actorIdentity(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to record attendance"})
	}

	return c.JSON(fiber.Map{
		"message": "marked present",
		"data":    rec,
	})
}

type MarkAbsentRequest struct {
	StaffID    uint   `json:"staff_id" validate:"required"`
	AbsentType string `json:"absent_type" validate:"required,oneof=unauthorized sick_leave official_duty family_emergency other"`
	Reason     string `json:"reason"`
}

func (h *AttendanceHandler) MarkAbsent(c *fiber.Ctx) error {
	var req MarkAbsentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rec, err := h.gate.MarkAbsent(req.StaffID, model.AbsentType(req.AbsentType), req.Reason, actorIdentity(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to record absence"})
	}

	return c.JSON(fiber.Map{
		"message": "marked absent",
		"data":    rec,
	})
}

// GetDay returns the full per-day map with integrity-failing records flagged.
func (h *AttendanceHandler) GetDay(c *fiber.Ctx) error {
	date := c.Query("date", h.clk.Today())
	if _, err := time.Parse(clock.DateLayout, date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
	}

	day, err := h.store.ReadDay(date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "attendance store unavailable"})
	}

	return c.JSON(fiber.Map{
		"date": date,
		"data": engine.FlagUntrusted(day),
	})
}

// GetHistory returns the caller's own records for a month.
func (h *AttendanceHandler) GetHistory(c *fiber.Ctx) error {
	staffID := uint(c.Locals("staff_id").(float64))
	month := c.QueryInt("month", int(h.clk.Now().Month()))
	year := c.QueryInt("year", h.clk.Now().Year())

	records, err := collectMonth(h.store, staffID, month, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "attendance store unavailable"})
	}

	return c.JSON(fiber.Map{
		"data":    records,
		"summary": engine.Aggregate(records),
	})
}

// collectMonth walks every date of the month through the day-keyed store and
// picks out one staff member's records.
func collectMonth(store repository.RecordStore, staffID uint, month, year int) ([]model.AttendanceRecord, error) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	var records []model.AttendanceRecord
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		day, err := store.ReadDay(d.Format(clock.DateLayout))
		if err != nil {
			return nil, err
		}
		if rec, ok := day[staffID]; ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

func actorIdentity(c *fiber.Ctx) string {
	if no, ok := c.Locals("employee_no").(string); ok && no != "" {
		return no
	}
	return fmt.Sprintf("staff:%v", c.Locals("staff_id"))
}
