package dto

import "time"

// StaffResponse is the base staff payload.
type StaffResponse struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	Username string    `json:"username"`
	Rank     int       `json:"rank"`
	RankName string    `json:"rankName"`
	JoinedAt time.Time `json:"joinedAt"`
}

// StaffStatsResponse attaches rollups for roster and quota views.
type StaffStatsResponse struct {
	StaffResponse
	DailyHours       float64    `json:"dailyHours"`
	WeeklyHours      float64    `json:"weeklyHours"`
	AllTimeHours     float64    `json:"allTimeHours"`
	QuotaMet         bool       `json:"quotaMet"`
	LastActive       *time.Time `json:"lastActive"`
	QuotaStrikes     int        `json:"quotaStrikes"`
	DemotionEligible bool       `json:"demotionEligible"`
}

// StaffDetailResponse is the single-member view with the session log.
type StaffDetailResponse struct {
	StaffResponse
	TimeEntries []TimeEntryResponse `json:"timeEntries"`
}

// StaffEditRequest carries partial roster edits.
type StaffEditRequest struct {
	Username *string `json:"username"`
	Rank     *int    `json:"rank"`
	RankName *string `json:"rankName"`
}

// SyncResponse reports a roster sync.
type SyncResponse struct {
	Message     string          `json:"message"`
	SyncedCount int             `json:"syncedCount"`
	Staff       []StaffResponse `json:"staff"`
}

// DashboardStatsResponse is the summary card payload.
type DashboardStatsResponse struct {
	TotalStaff     int     `json:"totalStaff"`
	QuotaMet       int     `json:"quotaMet"`
	AvgWeeklyHours float64 `json:"avgWeeklyHours"`
	ActiveToday    int     `json:"activeToday"`
}

// LeaderboardEntryResponse is one ranked row.
type LeaderboardEntryResponse struct {
	StaffResponse
	TotalHours   float64 `json:"totalHours"`
	WeeklyChange float64 `json:"weeklyChange"`
	Position     int     `json:"position"`
}

// DailyActivityResponse is one bucket of the weekly series.
type DailyActivityResponse struct {
	Date       string  `json:"date"`
	TotalHours float64 `json:"totalHours"`
}

// QuotaCompletionResponse partitions the roster by compliance.
type QuotaCompletionResponse struct {
	Completed  []StaffStatsResponse `json:"completed"`
	Incomplete []StaffStatsResponse `json:"incomplete"`
}

// AvatarResponse carries a resolved headshot URL.
type AvatarResponse struct {
	ImageURL string `json:"imageUrl"`
}
