package domain

import "time"

// Period identifies a leaderboard window.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodAllTime Period = "alltime"
)

// ValidPeriod reports whether p is a recognized leaderboard period.
func ValidPeriod(p Period) bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodAllTime:
		return true
	}
	return false
}

// StaffStats attaches rollups to a staff member for roster and quota views.
type StaffStats struct {
	StaffMember
	DailyHours       float64
	WeeklyHours      float64
	AllTimeHours     float64
	QuotaMet         bool
	LastActive       *time.Time
	StrikeCount      int
	DemotionEligible bool
}

// DashboardStats is the summary card data for the dashboard header.
type DashboardStats struct {
	TotalStaff     int
	QuotaMet       int
	AvgWeeklyHours float64
	ActiveToday    int
}

// LeaderboardEntry is one ranked row for a period. WeeklyChange is the delta
// against the immediately preceding equivalent window.
type LeaderboardEntry struct {
	StaffMember
	TotalHours   float64
	WeeklyChange float64
	Position     int
}

// DailyActivity is one bucket of the current week's activity series.
type DailyActivity struct {
	Date       string
	TotalHours float64
}

// QuotaCompletion partitions the roster by current-week quota compliance.
type QuotaCompletion struct {
	Completed  []StaffStats
	Incomplete []StaffStats
}
