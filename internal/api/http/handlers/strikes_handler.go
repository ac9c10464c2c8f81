package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/api/dto"
	"github.com/spec-kit/attendance-service/internal/auth"
	"github.com/spec-kit/attendance-service/internal/service"
)

// StrikesHandler exposes the strike ledger.
type StrikesHandler struct {
	strikes *service.StrikeService
}

// NewStrikesHandler constructs handler.
func NewStrikesHandler(strikes *service.StrikeService) *StrikesHandler {
	return &StrikesHandler{strikes: strikes}
}

// List handles GET /api/staff/:id/strikes.
func (h *StrikesHandler) List(c *fiber.Ctx) error {
	strikes, err := h.strikes.ListActive(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	resp := make([]dto.StrikeResponse, 0, len(strikes))
	for i := range strikes {
		resp = append(resp, strikeResponse(&strikes[i]))
	}
	return c.JSON(resp)
}

// Create handles POST /api/staff/:id/strikes.
func (h *StrikesHandler) Create(c *fiber.Ctx) error {
	var req dto.StrikeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Reason == "" {
		return fiber.NewError(http.StatusBadRequest, "strike reason is required")
	}

	strike, err := h.strikes.Issue(c.Context(), c.Params("id"), req.Reason, issuerName(c))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(strikeResponse(strike))
}

// Delete handles DELETE /api/strikes/:id.
func (h *StrikesHandler) Delete(c *fiber.Ctx) error {
	if err := h.strikes.Revoke(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Strike removed successfully"})
}

// Mass handles POST /api/mass-strike.
func (h *StrikesHandler) Mass(c *fiber.Ctx) error {
	var req dto.MassStrikeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.StaffIDs == nil || req.Reason == "" {
		return fiber.NewError(http.StatusBadRequest, "staffIds and reason are required")
	}

	result, err := h.strikes.MassStrike(c.Context(), req.StaffIDs, req.Reason, issuerName(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.MassStrikeResponse{
		Message:      "Mass strike completed",
		SuccessCount: result.SuccessCount,
		TotalCount:   result.TotalCount,
	})
}

func issuerName(c *fiber.Ctx) string {
	if principal, ok := auth.PrincipalFromContext(c); ok && principal.Admin != nil {
		return principal.Admin.Name
	}
	return "Admin"
}
