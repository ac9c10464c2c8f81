package dto

import "time"

// TrackTimeRequest is the game-server webhook payload. SessionTime is in
// seconds and converts to hours on ingestion.
type TrackTimeRequest struct {
	UserID      string  `json:"userId"`
	Username    string  `json:"username"`
	Rank        int     `json:"rank"`
	SessionTime float64 `json:"sessionTime"`
	Action      string  `json:"action"`
}

// AdjustTimeRequest is a manual hour adjustment.
type AdjustTimeRequest struct {
	Hours  *float64 `json:"hours"`
	Reason string   `json:"reason"`
}

// TimeEntryResponse is one session log row.
type TimeEntryResponse struct {
	ID           string     `json:"id"`
	StaffID      string     `json:"staffId"`
	SessionStart time.Time  `json:"sessionStart"`
	SessionEnd   *time.Time `json:"sessionEnd"`
	Duration     float64    `json:"duration"`
	Action       string     `json:"action"`
	CreatedAt    time.Time  `json:"createdAt"`
}
