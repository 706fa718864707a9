package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"staff-attendance-backend/config"
	"staff-attendance-backend/internal/model"
	"staff-attendance-backend/internal/repository"
)

type StaffHandler struct {
	repo repository.StaffRepository
}

func NewStaffHandler(repo repository.StaffRepository) *StaffHandler {
	return &StaffHandler{repo: repo}
}

type LoginRequest struct {
	EmployeeNo string `json:"employee_no" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

func (h *StaffHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	staff, err := h.repo.FindByEmployeeNo(req.EmployeeNo)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid employee number or password"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid employee number or password"})
	}
	if !staff.IsActive {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "account is deactivated"})
	}

	token, err := generateToken(staff)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to issue token"})
	}

	return c.JSON(fiber.Map{
		"message": "login successful",
		"token":   token,
		"data": fiber.Map{
			"employee_no": staff.EmployeeNo,
			"name":        staff.Name,
			"role":        staff.Role,
			"department":  staff.Department,
		},
	})
}

func (h *StaffHandler) GetProfile(c *fiber.Ctx) error {
	staffID := uint(c.Locals("staff_id").(float64))

	staff, err := h.repo.FindByID(staffID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "staff member not found"})
	}

	return c.JSON(fiber.Map{"data": staff})
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

func (h *StaffHandler) ChangePassword(c *fiber.Ctx) error {
	staffID := uint(c.Locals("staff_id").(float64))

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	staff, err := h.repo.FindByID(staffID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "staff member not found"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(req.OldPassword)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "old password does not match"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to hash password"})
	}
	staff.Password = string(hashed)
	if err := h.repo.Update(staff); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update password"})
	}

	return c.JSON(fiber.Map{"message": "password updated"})
}

func generateToken(staff *model.Staff) (string, error) {
	claims := jwt.MapClaims{
		"staff_id":    staff.ID,
		"employee_no": staff.EmployeeNo,
		"role":        string(staff.Role),
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}
