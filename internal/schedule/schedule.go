// Package schedule computes the day, week and month boundaries used by
// aggregation and quota evaluation. All boundaries are calendar midnights in
// the location carried by the input time; callers pick one location and use
// it consistently.
package schedule

import (
	"math"
	"time"
)

// DayStart returns midnight of now's calendar day.
func DayStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// WeekStart returns the most recent occurrence of weekStart at 00:00. When
// now already falls on weekStart the boundary is today's midnight.
func WeekStart(now time.Time, weekStart time.Weekday) time.Time {
	diff := int(now.Weekday()) - int(weekStart)
	if diff < 0 {
		diff += 7
	}
	return DayStart(now).AddDate(0, 0, -diff)
}

// WeekEnd returns the last instant of the week beginning at weekStart,
// 23:59:59.999 on its sixth day. Stored inside strike records only.
func WeekEnd(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 6).
		Add(23*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond)
}

// MonthStart returns midnight of the first day of now's month.
func MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// Epoch is the open lower bound for all-time aggregation.
func Epoch() time.Time {
	return time.Unix(0, 0).UTC()
}

// RoundHours rounds an hour total to two decimal places.
func RoundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}
