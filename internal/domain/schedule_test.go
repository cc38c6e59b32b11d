package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_WindowFor(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	s := Schedule{StartHour: 9, EndHour: 17, DurationMinutes: 30, DefaultZone: time.UTC}

	t.Run("UTC window", func(t *testing.T) {
		day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		w := s.WindowFor(day, time.UTC)

		assert.Equal(t, time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), w.Start)
		assert.Equal(t, time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC), w.End)
	})

	t.Run("window anchored in another zone", func(t *testing.T) {
		day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		w := s.WindowFor(day, kolkata)

		// 09:00 IST is 03:30 UTC (+05:30 offset).
		assert.True(t, w.Start.Equal(time.Date(2024, 6, 1, 3, 30, 0, 0, time.UTC)))
		assert.True(t, w.End.Equal(time.Date(2024, 6, 1, 11, 30, 0, 0, time.UTC)))
	})

	t.Run("only the calendar date of day is used", func(t *testing.T) {
		morning := time.Date(2024, 6, 1, 4, 12, 53, 0, time.UTC)
		midnight := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

		assert.Equal(t, s.WindowFor(midnight, time.UTC), s.WindowFor(morning, time.UTC))
	})
}

func TestWorkingWindow_Contains(t *testing.T) {
	s := Schedule{StartHour: 9, EndHour: 17, DurationMinutes: 30, DefaultZone: time.UTC}
	w := s.WindowFor(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"window start", time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), true},
		{"mid window", time.Date(2024, 6, 1, 13, 30, 0, 0, time.UTC), true},
		{"just before window end", time.Date(2024, 6, 1, 16, 59, 0, 0, time.UTC), true},
		{"window end is exclusive", time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC), false},
		{"before window start", time.Date(2024, 6, 1, 8, 45, 0, 0, time.UTC), false},
		{"after window end", time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Contains(tt.t))
		})
	}
}

func TestSchedule_SlotStep(t *testing.T) {
	s := Schedule{DurationMinutes: 45}
	assert.Equal(t, 45*time.Minute, s.SlotStep())
}

func TestFormatDisplayTime(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	instant := time.Date(2024, 6, 1, 3, 30, 0, 0, time.UTC)

	assert.Equal(t, "01/06/2024, 03:30", FormatDisplayTime(instant, time.UTC))
	assert.Equal(t, "01/06/2024, 09:00", FormatDisplayTime(instant, kolkata))
}
