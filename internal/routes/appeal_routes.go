package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"staff-attendance-backend/internal/clock"
	"staff-attendance-backend/internal/engine"
	"staff-attendance-backend/internal/handler"
	"staff-attendance-backend/internal/middleware"
	"staff-attendance-backend/internal/repository"
)

func SetupAppealRoutes(app *fiber.App, db *gorm.DB, clk clock.Source) {
	store := repository.NewRecordStore(db)
	appealRepo := repository.NewAppealRepository(db)
	svc := engine.NewAppeals(clk, store, appealRepo)
	hdl := handler.NewAppealHandler(svc, appealRepo)

	api := app.Group("/api/appeals", middleware.Auth)

	api.Post("/", hdl.Submit)
	api.Get("/mine", hdl.GetMine)
	api.Get("/pending", middleware.RequireOverride, hdl.GetPending)
}
