package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/api/dto"
	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/service"
)

// LeaderboardHandler serves period rankings.
type LeaderboardHandler struct {
	leaderboard *service.LeaderboardService
}

// NewLeaderboardHandler constructs handler.
func NewLeaderboardHandler(leaderboard *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard}
}

// Get handles GET /api/leaderboard/:period.
func (h *LeaderboardHandler) Get(c *fiber.Ctx) error {
	entries, err := h.leaderboard.Leaderboard(c.Context(), domain.Period(c.Params("period")))
	if err != nil {
		return err
	}

	resp := make([]dto.LeaderboardEntryResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, dto.LeaderboardEntryResponse{
			StaffResponse: staffResponse(&entries[i].StaffMember),
			TotalHours:    entries[i].TotalHours,
			WeeklyChange:  entries[i].WeeklyChange,
			Position:      entries[i].Position,
		})
	}
	return c.JSON(resp)
}
