package clock

import "time"

// Manual is a settable Source used in tests to drive the sweep deterministically.
type Manual struct {
	Current time.Time
	Open    TimeOfDay
	Close   TimeOfDay
}

func NewManual(current time.Time, open, close TimeOfDay) *Manual {
	return &Manual{Current: current, Open: open, Close: close}
}

func (m *Manual) Now() time.Time { return m.Current }

func (m *Manual) Today() string { return m.Current.Format(DateLayout) }

func (m *Manual) IsSchoolDay() bool { return isSchoolDay(m.Current) }

func (m *Manual) IsWithinOperatingWindow() bool {
	return withinWindow(TimeOfDayFrom(m.Current), m.Open, m.Close)
}

// Set moves the clock to an absolute instant.
func (m *Manual) Set(t time.Time) { m.Current = t }

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) { m.Current = m.Current.Add(d) }
