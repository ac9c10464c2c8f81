package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/api/dto"
	"github.com/spec-kit/attendance-service/internal/service"
)

// TrackingHandler ingests session events and manual adjustments.
type TrackingHandler struct {
	tracking *service.TrackingService
}

// NewTrackingHandler constructs handler.
func NewTrackingHandler(tracking *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{tracking: tracking}
}

// TrackTime handles POST /api/track-time, the game-server webhook.
func (h *TrackingHandler) TrackTime(c *fiber.Ctx) error {
	var req dto.TrackTimeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.UserID == "" || req.Username == "" || req.Action == "" {
		return fiber.NewError(http.StatusBadRequest, "missing required fields")
	}

	entry, err := h.tracking.RecordSession(c.Context(), req.UserID, req.Username, req.Rank, req.SessionTime, req.Action)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Time tracked successfully",
		"entry":   timeEntryResponse(entry),
	})
}

// AdjustTime handles POST /api/staff/:id/adjust-time.
func (h *TrackingHandler) AdjustTime(c *fiber.Ctx) error {
	var req dto.AdjustTimeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Hours == nil {
		return fiber.NewError(http.StatusBadRequest, "hours must be a number")
	}

	entry, err := h.tracking.AdjustTime(c.Context(), c.Params("id"), *req.Hours, req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Time adjusted successfully",
		"entry":   timeEntryResponse(entry),
	})
}
