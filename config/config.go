package config

import (
	"os"
	"strconv"
	"time"

	"staff-attendance-backend/internal/clock"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Engine holds the attendance engine thresholds. All clock values are
// institution-wide, never per-staff.
type Engine struct {
	LateThreshold  clock.TimeOfDay
	AbsentCutoff   clock.TimeOfDay
	OperatingOpen  clock.TimeOfDay
	OperatingClose clock.TimeOfDay

	TZOffsetMinutes int
	SweepInterval   time.Duration
}

// LoadEngine reads the engine thresholds from the environment. A malformed
// "HH:MM" value surfaces clock.ErrInvalidThreshold.
func LoadEngine() (Engine, error) {
	var (
		eng Engine
		err error
	)
	if eng.LateThreshold, err = clock.ParseTimeOfDay(GetEnv("LATE_THRESHOLD", "08:00")); err != nil {
		return Engine{}, err
	}
	if eng.AbsentCutoff, err = clock.ParseTimeOfDay(GetEnv("ABSENT_CUTOFF", "10:00")); err != nil {
		return Engine{}, err
	}
	if eng.OperatingOpen, err = clock.ParseTimeOfDay(GetEnv("OPERATING_OPEN", "06:00")); err != nil {
		return Engine{}, err
	}
	if eng.OperatingClose, err = clock.ParseTimeOfDay(GetEnv("OPERATING_CLOSE", "18:00")); err != nil {
		return Engine{}, err
	}

	eng.TZOffsetMinutes = GetEnvAsInt("TZ_OFFSET_MINUTES", 3*60) // EAT default
	eng.SweepInterval = time.Duration(GetEnvAsInt("SWEEP_INTERVAL_SECONDS", 60)) * time.Second
	return eng, nil
}

// JWTSecret returns the token signing key shared by the auth middleware and the
// login handler.
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "change-me-in-production"))
}
