package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"staff-attendance-backend/internal/clock"
	"staff-attendance-backend/internal/engine"
	"staff-attendance-backend/internal/model"
	"staff-attendance-backend/internal/repository"
)

// maxSummaryWindowDays bounds the per-day store reads a single summary request
// may fan out into.
const maxSummaryWindowDays = 366

type StatsHandler struct {
	store repository.RecordStore
	clk   clock.Source
}

func NewStatsHandler(store repository.RecordStore, clk clock.Source) *StatsHandler {
	return &StatsHandler{store: store, clk: clk}
}

// GetSummary folds records over an inclusive [from, to] date window. With
// staff_id it summarizes one person; without, the whole roster's records.
func (h *StatsHandler) GetSummary(c *fiber.Ctx) error {
	today := h.clk.Today()
	from := c.Query("from", today)
	to := c.Query("to", today)
	staffID := c.QueryInt("staff_id", 0)

	start, err := time.Parse(clock.DateLayout, from)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "from must be YYYY-MM-DD"})
	}
	end, err := time.Parse(clock.DateLayout, to)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "to must be YYYY-MM-DD"})
	}
	if end.Before(start) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "to precedes from"})
	}
	if end.Sub(start) > maxSummaryWindowDays*24*time.Hour {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "window exceeds one year"})
	}

	var records []model.AttendanceRecord
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day, err := h.store.ReadDay(d.Format(clock.DateLayout))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "attendance store unavailable"})
		}
		for id, rec := range day {
			if staffID != 0 && id != uint(staffID) {
				continue
			}
			records = append(records, rec)
		}
	}

	return c.JSON(fiber.Map{
		"from":    from,
		"to":      to,
		"summary": engine.Aggregate(records),
	})
}
