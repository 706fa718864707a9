package clock

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidThreshold is returned when a configured "HH:MM" value cannot be parsed.
var ErrInvalidThreshold = errors.New("invalid time-of-day threshold")

// TimeOfDay is a wall-clock time at minute granularity ("HH:MM").
// Records and thresholds are always same-day, so there is no date component.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a "HH:MM" string (e.g. "08:00").
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidThreshold, s)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// TimeOfDayFrom extracts the minute-granularity time of day from an instant.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.Minutes() > other.Minutes()
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Minutes() < other.Minutes()
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
