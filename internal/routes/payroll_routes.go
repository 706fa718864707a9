package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"staff-attendance-backend/internal/clock"
	"staff-attendance-backend/internal/handler"
	"staff-attendance-backend/internal/middleware"
	"staff-attendance-backend/internal/model"
	"staff-attendance-backend/internal/repository"
)

func SetupPayrollRoutes(app *fiber.App, db *gorm.DB, clk clock.Source) {
	store := repository.NewRecordStore(db)
	settingsRepo := repository.NewSettingsRepository(db)
	hdl := handler.NewPayrollHandler(store, settingsRepo, clk)

	api := app.Group("/api/payroll", middleware.Auth, middleware.RequireRole(model.RoleAdmin, model.RoleBursar))

	api.Get("/deductions", hdl.GetDeductions)
	api.Put("/deductions", hdl.UpdateDeductions)
}
