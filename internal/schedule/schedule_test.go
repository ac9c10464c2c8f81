package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		weekday  time.Weekday
		expected time.Time
	}{
		{
			name:     "midweek resolves to previous Monday",
			now:      time.Date(2024, 5, 16, 14, 30, 0, 0, time.UTC), // Thursday
			weekday:  time.Monday,
			expected: time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "on the boundary weekday stays today",
			now:      time.Date(2024, 5, 13, 9, 0, 0, 0, time.UTC), // Monday
			weekday:  time.Monday,
			expected: time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "boundary weekday at exactly midnight stays today",
			now:      time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC),
			weekday:  time.Monday,
			expected: time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Sunday wraps back to previous Monday",
			now:      time.Date(2024, 5, 19, 23, 59, 0, 0, time.UTC), // Sunday
			weekday:  time.Monday,
			expected: time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Sunday-start week on a Wednesday",
			now:      time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC), // Wednesday
			weekday:  time.Sunday,
			expected: time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "week start across a month boundary",
			now:      time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), // Wednesday
			weekday:  time.Monday,
			expected: time.Date(2024, 4, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeekStart(tt.now, tt.weekday))
		})
	}
}

func TestDayStart(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	assert.NoError(t, err)

	now := time.Date(2024, 5, 16, 23, 45, 12, 500, loc)
	got := DayStart(now)
	assert.Equal(t, time.Date(2024, 5, 16, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestWeekEnd(t *testing.T) {
	start := time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC)
	expected := time.Date(2024, 5, 19, 23, 59, 59, 999000000, time.UTC)
	assert.Equal(t, expected, WeekEnd(start))
}

func TestMonthStart(t *testing.T) {
	now := time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), MonthStart(now))
}

func TestRoundHours(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{0, 0},
		{0.8049999, 0.8},
		{0.875, 0.88},
		{1.1, 1.1},
		{2.999, 3.0},
		{0.333333, 0.33},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, RoundHours(tt.in), 1e-9)
	}
}
