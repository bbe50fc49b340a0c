package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/cardprofiles/internal/profiles"
)

// RegisterProfileRoutes wires payment profile endpoints.
func RegisterProfileRoutes(r fiber.Router, h *profiles.Handler) {
	r.Post("/profiles", h.Create)
	r.Put("/profiles/:customerCode", h.Update)
}
