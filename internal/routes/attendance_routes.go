package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"staff-attendance-backend/config"
	"staff-attendance-backend/internal/clock"
	"staff-attendance-backend/internal/engine"
	"staff-attendance-backend/internal/handler"
	"staff-attendance-backend/internal/middleware"
	"staff-attendance-backend/internal/repository"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB, clk clock.Source, eng config.Engine) {
	store := repository.NewRecordStore(db)
	gate := engine.NewGate(clk, store, eng.LateThreshold)
	hdl := handler.NewAttendanceHandler(gate, store, clk)

	api := app.Group("/api/attendance", middleware.Auth)

	api.Post("/checkin", hdl.CheckIn)
	api.Get("/history", hdl.GetHistory)

	// privileged override gate
	api.Post("/mark-present", middleware.RequireOverride, hdl.MarkPresent)
	api.Post("/mark-absent", middleware.RequireOverride, hdl.MarkAbsent)
	api.Get("/day", middleware.RequireOverride, hdl.GetDay)
}
