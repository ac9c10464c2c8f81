package domain

import "time"

// Session actions recorded against time entries.
const (
	ActionJoin   = "join"
	ActionLeave  = "leave"
	ActionUpdate = "update"

	// ManualAdjustmentPrefix tags synthetic entries created by admins; the
	// free-text reason follows the prefix.
	ManualAdjustmentPrefix = "manual_adjustment: "
)

// TimeEntry is one immutable record of tracked activity. Duration is the
// hour contribution summed by aggregation; it is never recomputed from
// SessionStart/SessionEnd after creation. Join events carry zero duration.
type TimeEntry struct {
	ID           string
	StaffID      string
	SessionStart time.Time
	SessionEnd   *time.Time
	Duration     float64
	Action       string
	CreatedAt    time.Time
}
