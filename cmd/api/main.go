package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"staff-attendance-backend/config"
	"staff-attendance-backend/internal/clock"
	"staff-attendance-backend/internal/engine"
	"staff-attendance-backend/internal/repository"
	"staff-attendance-backend/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env not found, using system environment variables")
	}

	eng, err := config.LoadEngine()
	if err != nil {
		logrus.WithError(err).Fatal("invalid attendance threshold configuration")
	}

	config.ConnectDB()
	logrus.Info("database connected")

	clk := clock.NewSchoolClock(eng.TZOffsetMinutes, eng.OperatingOpen, eng.OperatingClose)

	// The sweep is an explicitly constructed object owned by this process:
	// started here, stopped on shutdown.
	sweeper := engine.NewSweeper(
		clk,
		repository.NewRecordStore(config.DB),
		repository.NewStaffRepository(config.DB),
		repository.NewHolidayRepository(config.DB),
		eng.LateThreshold,
		eng.AbsentCutoff,
		eng.SweepInterval,
	)
	sweeper.Start()

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New())

	routes.SetupStaffRoutes(app, config.DB)
	routes.SetupAttendanceRoutes(app, config.DB, clk, eng)
	routes.SetupAppealRoutes(app, config.DB, clk)
	routes.SetupStatsRoutes(app, config.DB, clk)
	routes.SetupHolidayRoutes(app, config.DB)
	routes.SetupPayrollRoutes(app, config.DB, clk)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		sweeper.Stop()
		_ = app.Shutdown()
	}()

	addr := ":" + config.GetEnv("APP_PORT", "3000")
	logrus.WithField("addr", addr).Info("server listening")
	if err := app.Listen(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
