package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"staff-attendance-backend/internal/engine"
	"staff-attendance-backend/internal/model"
	"staff-attendance-backend/internal/repository"
)

type AppealHandler struct {
	appeals *engine.Appeals
	repo    repository.AppealRepository
}

func NewAppealHandler(appeals *engine.Appeals, repo repository.AppealRepository) *AppealHandler {
	return &AppealHandler{appeals: appeals, repo: repo}
}

type SubmitAppealRequest struct {
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Category string `json:"category" validate:"required,oneof=sick_leave official_duty family_emergency other"`
	Reason   string `json:"reason" validate:"required"`
}

func (h *AppealHandler) Submit(c *fiber.Ctx) error {
	staffID := uint(c.Locals("staff_id").(float64))

	var req SubmitAppealRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	appeal, err := h.appeals.Submit(staffID, req.Date, model.AppealCategory(req.Category), req.Reason)
	if err != nil {
		if errors.Is(err, engine.ErrAppealNotApplicable) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to submit appeal"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "appeal submitted",
		"data":    appeal,
	})
}

func (h *AppealHandler) GetMine(c *fiber.Ctx) error {
	staffID := uint(c.Locals("staff_id").(float64))

	list, err := h.repo.GetByStaffID(staffID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch appeals"})
	}
	return c.JSON(fiber.Map{"data": list})
}

// GetPending lists appeals awaiting review. Resolution happens elsewhere; this
// is the review queue only.
func (h *AppealHandler) GetPending(c *fiber.Ctx) error {
	list, err := h.repo.GetPending()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch appeals"})
	}
	return c.JSON(fiber.Map{"data": list})
}
