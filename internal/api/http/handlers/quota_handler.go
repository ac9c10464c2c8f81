package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/api/dto"
	"github.com/spec-kit/attendance-service/internal/service"
)

// QuotaHandler serves quota settings and completion status.
type QuotaHandler struct {
	quota *service.QuotaService
}

// NewQuotaHandler constructs handler.
func NewQuotaHandler(quota *service.QuotaService) *QuotaHandler {
	return &QuotaHandler{quota: quota}
}

// GetSettings handles GET /api/quota-settings.
func (h *QuotaHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.quota.Settings(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(quotaSettingsResponse(settings))
}

// UpdateSettings handles PUT /api/quota-settings. Missing fields keep their
// current values.
func (h *QuotaHandler) UpdateSettings(c *fiber.Ctx) error {
	var req dto.QuotaSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	current, err := h.quota.Settings(c.Context())
	if err != nil {
		return err
	}

	requirement := current.WeeklyRequirement
	if req.WeeklyRequirement != nil {
		requirement = *req.WeeklyRequirement
	}
	weekStart := current.WeekStart
	if req.WeekStart != nil {
		weekStart = time.Weekday(*req.WeekStart)
	}

	settings, err := h.quota.UpdateSettings(c.Context(), requirement, weekStart)
	if err != nil {
		return err
	}
	return c.JSON(quotaSettingsResponse(settings))
}

// Completion handles GET /api/quota-status.
func (h *QuotaHandler) Completion(c *fiber.Ctx) error {
	completion, err := h.quota.Completion(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.QuotaCompletionResponse{
		Completed:  staffStatsResponses(completion.Completed),
		Incomplete: staffStatsResponses(completion.Incomplete),
	})
}
