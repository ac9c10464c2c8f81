package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/api/dto"
	"github.com/spec-kit/attendance-service/internal/service"
)

// StaffHandler exposes roster endpoints.
type StaffHandler struct {
	roster      *service.RosterService
	aggregation *service.AggregationService
	tracking    *service.TrackingService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(roster *service.RosterService, aggregation *service.AggregationService, tracking *service.TrackingService) *StaffHandler {
	return &StaffHandler{roster: roster, aggregation: aggregation, tracking: tracking}
}

// List handles GET /api/staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	roster, err := h.aggregation.RosterStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(staffStatsResponses(roster))
}

// Get handles GET /api/staff/:id.
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	staff, err := h.roster.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	entries, err := h.tracking.EntriesForStaff(c.Context(), staff.ID)
	if err != nil {
		return err
	}

	resp := dto.StaffDetailResponse{
		StaffResponse: staffResponse(staff),
		TimeEntries:   make([]dto.TimeEntryResponse, 0, len(entries)),
	}
	for i := range entries {
		resp.TimeEntries = append(resp.TimeEntries, timeEntryResponse(&entries[i]))
	}
	return c.JSON(resp)
}

// Edit handles PATCH /api/staff/:id.
func (h *StaffHandler) Edit(c *fiber.Ctx) error {
	var req dto.StaffEditRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	staff, err := h.roster.Edit(c.Context(), c.Params("id"), service.StaffEdit{
		Username: req.Username,
		Rank:     req.Rank,
		RankName: req.RankName,
	})
	if err != nil {
		return err
	}
	return c.JSON(staffResponse(staff))
}

// Demote handles POST /api/staff/:id/demote.
func (h *StaffHandler) Demote(c *fiber.Ctx) error {
	staff, err := h.roster.Demote(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Staff member demoted successfully",
		"staff":   staffResponse(staff),
	})
}

// Sync handles POST /api/sync-staff.
func (h *StaffHandler) Sync(c *fiber.Ctx) error {
	synced, err := h.roster.Sync(c.Context())
	if err != nil {
		return err
	}

	resp := dto.SyncResponse{
		Message:     "Staff synced successfully",
		SyncedCount: len(synced),
		Staff:       make([]dto.StaffResponse, 0, len(synced)),
	}
	for i := range synced {
		resp.Staff = append(resp.Staff, staffResponse(&synced[i]))
	}
	return c.JSON(resp)
}
