package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/api/dto"
	"github.com/spec-kit/attendance-service/internal/roblox"
)

// AvatarHandler proxies headshot lookups so the frontend never talks to the
// Roblox thumbnail API directly.
type AvatarHandler struct {
	roblox *roblox.Client
}

// NewAvatarHandler constructs handler.
func NewAvatarHandler(client *roblox.Client) *AvatarHandler {
	return &AvatarHandler{roblox: client}
}

// Get handles GET /api/avatar/:userId.
func (h *AvatarHandler) Get(c *fiber.Ctx) error {
	return c.JSON(dto.AvatarResponse{
		ImageURL: h.roblox.AvatarURL(c.Context(), c.Params("userId")),
	})
}
