package payments

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/cardprofiles/internal/beanstream"
)

// Handler exposes payment endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a payment handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type purchaseRequest struct {
	Amount int64 `json:"amount"`
}

type purchaseResponse struct {
	Approved      bool                  `json:"approved"`
	Message       string                `json:"message"`
	Authorization string                `json:"authorization,omitempty"`
	CVVResult     string                `json:"cvv_result,omitempty"`
	AVSResult     *beanstream.AVSResult `json:"avs_result,omitempty"`
	TestMode      bool                  `json:"test_mode"`
}

// Purchase charges the profile named by the customerCode path parameter.
func (h *Handler) Purchase(c *fiber.Ctx) error {
	var req purchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	res, err := h.service.Charge(c.UserContext(), ChargeInput{
		CustomerCode: c.Params("customerCode"),
		Amount:       req.Amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrCustomerCodeRequired):
			return fiber.NewError(http.StatusBadRequest, err.Error())
		default:
			return fiber.NewError(http.StatusBadGateway, err.Error())
		}
	}

	status := http.StatusCreated
	if !res.Approved {
		status = http.StatusPaymentRequired
	}
	return c.Status(status).JSON(purchaseResponse{
		Approved:      res.Approved,
		Message:       res.Message,
		Authorization: res.Authorization,
		CVVResult:     res.CVVResult,
		AVSResult:     res.AVSResult,
		TestMode:      res.TestMode,
	})
}
