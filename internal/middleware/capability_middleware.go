package middleware

import (
	"github.com/gofiber/fiber/v2"

	"staff-attendance-backend/internal/model"
)

// RequireOverride admits only roles with the attendance-override capability.
// The engine itself is role-agnostic; this is the single place the check runs.
func RequireOverride(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || !model.CanOverrideAttendance(model.StaffRole(role)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "attendance override not permitted for this role"})
	}
	return c.Next()
}

// RequireRole admits only the listed roles.
func RequireRole(allowed ...model.StaffRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if ok {
			for _, r := range allowed {
				if model.StaffRole(role) == r {
					return c.Next()
				}
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "access denied for this role"})
	}
}
