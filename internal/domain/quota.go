package domain

import "time"

// DefaultStrikeReason is applied when a strike is issued without one.
const DefaultStrikeReason = "Failed to meet weekly quota"

// QuotaSettings is the process-wide singleton controlling quota evaluation.
// Replacing it applies retroactively to all aggregation; no historical
// snapshots are kept.
type QuotaSettings struct {
	ID                string
	WeeklyRequirement float64
	WeekStart         time.Weekday
	UpdatedAt         time.Time
}

// QuotaStrike is one disciplinary mark issued for a week window. Strikes are
// never physically deleted; removal flips Active to false, one way, with no
// reactivation path. Only active strikes count toward demotion eligibility.
type QuotaStrike struct {
	ID        string
	StaffID   string
	WeekStart time.Time
	WeekEnd   time.Time
	Reason    string
	GivenBy   string
	GivenAt   time.Time
	Active    bool
}
