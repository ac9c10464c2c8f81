package dto

import "time"

// QuotaSettingsRequest replaces the singleton settings.
type QuotaSettingsRequest struct {
	WeeklyRequirement *float64 `json:"weeklyRequirement"`
	WeekStart         *int     `json:"weekStart"`
}

// QuotaSettingsResponse is the singleton settings payload.
type QuotaSettingsResponse struct {
	ID                string    `json:"id"`
	WeeklyRequirement float64   `json:"weeklyRequirement"`
	WeekStart         int       `json:"weekStart"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// StrikeRequest issues a single strike.
type StrikeRequest struct {
	Reason string `json:"reason"`
}

// StrikeResponse is one strike record.
type StrikeResponse struct {
	ID        string    `json:"id"`
	StaffID   string    `json:"staffId"`
	WeekStart time.Time `json:"weekStart"`
	WeekEnd   time.Time `json:"weekEnd"`
	Reason    string    `json:"reason"`
	GivenBy   string    `json:"givenBy"`
	GivenAt   time.Time `json:"givenAt"`
	Active    bool      `json:"active"`
}

// MassStrikeRequest issues strikes to a set of staff ids.
type MassStrikeRequest struct {
	StaffIDs []string `json:"staffIds"`
	Reason   string   `json:"reason"`
}

// MassStrikeResponse reports the best-effort batch result.
type MassStrikeResponse struct {
	Message      string `json:"message"`
	SuccessCount int    `json:"successCount"`
	TotalCount   int    `json:"totalCount"`
}
