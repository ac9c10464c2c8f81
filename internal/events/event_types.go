package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSessionRecorded       EventType = "session_recorded"
	EventTimeAdjusted          EventType = "time_adjusted"
	EventStrikeIssued          EventType = "strike_issued"
	EventStrikeRevoked         EventType = "strike_revoked"
	EventStaffDemoted          EventType = "staff_demoted"
	EventQuotaSettingsUpdated  EventType = "quota_settings_updated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	StaffID   string      `json:"staff_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SessionRecordedPayload payload.
type SessionRecordedPayload struct {
	Action   string  `json:"action"`
	Duration float64 `json:"duration"`
}

// TimeAdjustedPayload payload.
type TimeAdjustedPayload struct {
	Hours  float64 `json:"hours"`
	Reason string  `json:"reason"`
}

// StrikeIssuedPayload payload.
type StrikeIssuedPayload struct {
	StrikeID string `json:"strike_id"`
	Reason   string `json:"reason"`
	GivenBy  string `json:"given_by"`
}

// StrikeRevokedPayload payload.
type StrikeRevokedPayload struct {
	StrikeID string `json:"strike_id"`
}

// StaffDemotedPayload payload.
type StaffDemotedPayload struct {
	OldRank int `json:"old_rank"`
	NewRank int `json:"new_rank"`
}

// QuotaSettingsUpdatedPayload payload.
type QuotaSettingsUpdatedPayload struct {
	WeeklyRequirement float64 `json:"weekly_requirement"`
	WeekStart         int     `json:"week_start"`
}
