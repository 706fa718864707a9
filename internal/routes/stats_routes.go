package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"staff-attendance-backend/internal/clock"
	"staff-attendance-backend/internal/handler"
	"staff-attendance-backend/internal/middleware"
	"staff-attendance-backend/internal/repository"
)

func SetupStatsRoutes(app *fiber.App, db *gorm.DB, clk clock.Source) {
	store := repository.NewRecordStore(db)
	hdl := handler.NewStatsHandler(store, clk)

	api := app.Group("/api/stats", middleware.Auth)

	api.Get("/summary", hdl.GetSummary)
}
