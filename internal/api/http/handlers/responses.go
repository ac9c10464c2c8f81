package handlers

import (
	"github.com/spec-kit/attendance-service/internal/api/dto"
	"github.com/spec-kit/attendance-service/internal/domain"
)

func staffResponse(staff *domain.StaffMember) dto.StaffResponse {
	return dto.StaffResponse{
		ID:       staff.ID,
		UserID:   staff.UserID,
		Username: staff.Username,
		Rank:     staff.Rank,
		RankName: staff.RankName,
		JoinedAt: staff.JoinedAt,
	}
}

func staffStatsResponse(stats *domain.StaffStats) dto.StaffStatsResponse {
	return dto.StaffStatsResponse{
		StaffResponse:    staffResponse(&stats.StaffMember),
		DailyHours:       stats.DailyHours,
		WeeklyHours:      stats.WeeklyHours,
		AllTimeHours:     stats.AllTimeHours,
		QuotaMet:         stats.QuotaMet,
		LastActive:       stats.LastActive,
		QuotaStrikes:     stats.StrikeCount,
		DemotionEligible: stats.DemotionEligible,
	}
}

func staffStatsResponses(stats []domain.StaffStats) []dto.StaffStatsResponse {
	resp := make([]dto.StaffStatsResponse, 0, len(stats))
	for i := range stats {
		resp = append(resp, staffStatsResponse(&stats[i]))
	}
	return resp
}

func timeEntryResponse(entry *domain.TimeEntry) dto.TimeEntryResponse {
	return dto.TimeEntryResponse{
		ID:           entry.ID,
		StaffID:      entry.StaffID,
		SessionStart: entry.SessionStart,
		SessionEnd:   entry.SessionEnd,
		Duration:     entry.Duration,
		Action:       entry.Action,
		CreatedAt:    entry.CreatedAt,
	}
}

func strikeResponse(strike *domain.QuotaStrike) dto.StrikeResponse {
	return dto.StrikeResponse{
		ID:        strike.ID,
		StaffID:   strike.StaffID,
		WeekStart: strike.WeekStart,
		WeekEnd:   strike.WeekEnd,
		Reason:    strike.Reason,
		GivenBy:   strike.GivenBy,
		GivenAt:   strike.GivenAt,
		Active:    strike.Active,
	}
}

func quotaSettingsResponse(settings *domain.QuotaSettings) dto.QuotaSettingsResponse {
	return dto.QuotaSettingsResponse{
		ID:                settings.ID,
		WeeklyRequirement: settings.WeeklyRequirement,
		WeekStart:         int(settings.WeekStart),
		UpdatedAt:         settings.UpdatedAt,
	}
}
