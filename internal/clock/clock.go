package clock

import (
	"sync"
	"time"
)

const DateLayout = "2006-01-02"

// Source supplies the authoritative current instant in the school's time zone.
// The sweep, the override gate and the integrity stamp all read time through it
// so tests can inject a manual clock.
type Source interface {
	Now() time.Time
	Today() string
	IsSchoolDay() bool
	IsWithinOperatingWindow() bool
}

// SchoolClock pins a fixed UTC offset for the institution and applies a drift
// correction once Sync has been called with a trusted server instant. Before
// the first Sync it falls back to the device clock (lower trust).
type SchoolClock struct {
	loc   *time.Location
	open  TimeOfDay
	close TimeOfDay

	mu     sync.RWMutex
	drift  time.Duration
	synced bool
}

func NewSchoolClock(utcOffsetMinutes int, open, close TimeOfDay) *SchoolClock {
	return &SchoolClock{
		loc:   time.FixedZone("SCHOOL", utcOffsetMinutes*60),
		open:  open,
		close: close,
	}
}

// Sync records the difference between a trusted server instant and the device
// clock. Subsequent Now calls apply the correction.
func (c *SchoolClock) Sync(serverNow time.Time) {
	c.mu.Lock()
	c.drift = serverNow.Sub(time.Now())
	c.synced = true
	c.mu.Unlock()
}

// Synced reports whether a drift correction has been established.
func (c *SchoolClock) Synced() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.synced
}

func (c *SchoolClock) Now() time.Time {
	c.mu.RLock()
	drift := c.drift
	c.mu.RUnlock()
	return time.Now().Add(drift).In(c.loc)
}

func (c *SchoolClock) Today() string {
	return c.Now().Format(DateLayout)
}

func (c *SchoolClock) IsSchoolDay() bool {
	return isSchoolDay(c.Now())
}

func (c *SchoolClock) IsWithinOperatingWindow() bool {
	return withinWindow(TimeOfDayFrom(c.Now()), c.open, c.close)
}

func isSchoolDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return true
}

func withinWindow(now, open, close TimeOfDay) bool {
	return !now.Before(open) && !now.After(close)
}
