package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"staff-attendance-backend/internal/clock"
	"staff-attendance-backend/internal/engine"
	"staff-attendance-backend/internal/model"
)

func TestClassify(t *testing.T) {
	threshold := clock.TimeOfDay{Hour: 8, Minute: 0}

	tests := []struct {
		name    string
		arrival *clock.TimeOfDay
		want    model.AttendanceStatus
	}{
		{"no arrival is absent", nil, model.StatusAbsent},
		{"early arrival is present", &clock.TimeOfDay{Hour: 7, Minute: 55}, model.StatusPresent},
		{"arrival exactly on threshold is present", &clock.TimeOfDay{Hour: 8, Minute: 0}, model.StatusPresent},
		{"one minute past threshold is late", &clock.TimeOfDay{Hour: 8, Minute: 1}, model.StatusLate},
		{"mid-morning arrival is late", &clock.TimeOfDay{Hour: 8, Minute: 30}, model.StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Classify(tt.arrival, threshold))
		})
	}
}
