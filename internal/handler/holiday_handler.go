package handler

import (
	"github.com/gofiber/fiber/v2"

	"staff-attendance-backend/internal/model"
	"staff-attendance-backend/internal/repository"
)

type HolidayHandler struct {
	repo repository.HolidayRepository
}

func NewHolidayHandler(repo repository.HolidayRepository) *HolidayHandler {
	return &HolidayHandler{repo: repo}
}

func (h *HolidayHandler) GetAll(c *fiber.Ctx) error {
	holidays, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch holidays"})
	}
	return c.JSON(fiber.Map{"data": holidays})
}

type CreateHolidayRequest struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description"`
}

func (h *HolidayHandler) Create(c *fiber.Ctx) error {
	var req CreateHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	holiday := &model.Holiday{Date: req.Date, Description: req.Description}
	if err := h.repo.Create(holiday); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create holiday"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "holiday created",
		"data":    holiday,
	})
}

func (h *HolidayHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid holiday id"})
	}

	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete holiday"})
	}
	return c.JSON(fiber.Map{"message": "holiday deleted"})
}
