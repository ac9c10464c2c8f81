package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/api/dto"
	"github.com/spec-kit/attendance-service/internal/service"
)

// DashboardHandler serves the dashboard summary and activity chart.
type DashboardHandler struct {
	aggregation *service.AggregationService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(aggregation *service.AggregationService) *DashboardHandler {
	return &DashboardHandler{aggregation: aggregation}
}

// Stats handles GET /api/dashboard/stats.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.aggregation.DashboardStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.DashboardStatsResponse{
		TotalStaff:     stats.TotalStaff,
		QuotaMet:       stats.QuotaMet,
		AvgWeeklyHours: stats.AvgWeeklyHours,
		ActiveToday:    stats.ActiveToday,
	})
}

// WeeklyActivity handles GET /api/weekly-activity.
func (h *DashboardHandler) WeeklyActivity(c *fiber.Ctx) error {
	activity, err := h.aggregation.WeeklyActivity(c.Context())
	if err != nil {
		return err
	}
	resp := make([]dto.DailyActivityResponse, 0, len(activity))
	for _, day := range activity {
		resp = append(resp, dto.DailyActivityResponse{
			Date:       day.Date,
			TotalHours: day.TotalHours,
		})
	}
	return c.JSON(resp)
}
