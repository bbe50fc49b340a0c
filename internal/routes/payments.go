package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/cardprofiles/internal/payments"
)

// RegisterPaymentRoutes wires the charge endpoint behind the rate limiter.
func RegisterPaymentRoutes(r fiber.Router, h *payments.Handler, rateLimiter fiber.Handler) {
	if rateLimiter != nil {
		r.Post("/profiles/:customerCode/purchases", rateLimiter, h.Purchase)
		return
	}
	r.Post("/profiles/:customerCode/purchases", h.Purchase)
}
