package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"staff-attendance-backend/internal/handler"
	"staff-attendance-backend/internal/middleware"
	"staff-attendance-backend/internal/repository"
)

func SetupStaffRoutes(app *fiber.App, db *gorm.DB) {
	staffRepo := repository.NewStaffRepository(db)
	hdl := handler.NewStaffHandler(staffRepo)

	api := app.Group("/api/staff")

	api.Post("/login", hdl.Login)
	api.Get("/profile", middleware.Auth, hdl.GetProfile)
	api.Post("/change-password", middleware.Auth, hdl.ChangePassword)
}
