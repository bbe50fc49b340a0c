package profiles

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes HTTP endpoints for payment profiles.
type Handler struct {
	service *Service
}

// NewHandler constructs a profile handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create registers a new profile with the provider.
func (h *Handler) Create(c *fiber.Ctx) error {
	return h.store(c, "", http.StatusCreated)
}

// Update modifies the profile named by the customerCode path parameter.
func (h *Handler) Update(c *fiber.Ctx) error {
	code := c.Params("customerCode")
	if code == "" {
		return fiber.NewError(http.StatusBadRequest, "customer code is required")
	}
	return h.store(c, code, http.StatusOK)
}

func (h *Handler) store(c *fiber.Ctx, customerCode string, okStatus int) error {
	var req StoreProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Store(c.UserContext(), req.toInput(customerCode))
	if err != nil {
		switch {
		case errors.Is(err, ErrCardRequired), errors.Is(err, ErrInvalidCard):
			return fiber.NewError(http.StatusBadRequest, err.Error())
		default:
			return fiber.NewError(http.StatusBadGateway, err.Error())
		}
	}

	status := okStatus
	if !result.Approved {
		status = http.StatusPaymentRequired
	}
	return c.Status(status).JSON(toResponse(result))
}

func toResponse(result ProfileResult) ProfileResponse {
	return ProfileResponse{
		CustomerCode: result.CustomerCode,
		Approved:     result.Approved,
		Message:      result.Message,
		TestMode:     result.TestMode,
	}
}
