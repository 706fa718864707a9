package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"staff-attendance-backend/internal/handler"
	"staff-attendance-backend/internal/middleware"
	"staff-attendance-backend/internal/model"
	"staff-attendance-backend/internal/repository"
)

func SetupHolidayRoutes(app *fiber.App, db *gorm.DB) {
	holidayRepo := repository.NewHolidayRepository(db)
	hdl := handler.NewHolidayHandler(holidayRepo)

	api := app.Group("/api/holidays", middleware.Auth)

	api.Get("/", hdl.GetAll)
	api.Post("/", middleware.RequireRole(model.RoleAdmin), hdl.Create)
	api.Delete("/:id", middleware.RequireRole(model.RoleAdmin), hdl.Delete)
}
