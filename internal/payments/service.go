package payments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/congo-pay/cardprofiles/internal/beanstream"
	"github.com/congo-pay/cardprofiles/internal/metrics"
	"github.com/congo-pay/cardprofiles/internal/notification"
)

var (
	// ErrInvalidAmount indicates a non-positive charge amount.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrCustomerCodeRequired indicates the profile to charge was not named.
	ErrCustomerCodeRequired = errors.New("customer code is required")
)

// Service charges stored payment profiles.
type Service struct {
	gateway  Gateway
	notifier notification.Notifier
	logger   *slog.Logger
}

// NewService constructs a payment service. notifier and logger may be nil.
func NewService(gateway Gateway, notifier notification.Notifier, logger *slog.Logger) *Service {
	return &Service{gateway: gateway, notifier: notifier, logger: logger}
}

// ChargeInput names the profile and the amount in cents.
type ChargeInput struct {
	CustomerCode string
	Amount       int64
}

// ChargeResult is the normalized outcome of a charge.
type ChargeResult struct {
	Approved      bool
	Message       string
	Authorization string
	CVVResult     string
	AVSResult     *beanstream.AVSResult
	TestMode      bool
	CompletedAt   time.Time
}

// Charge bills the stored profile. A decline is reported through Approved.
func (s *Service) Charge(ctx context.Context, input ChargeInput) (ChargeResult, error) {
	if input.Amount <= 0 {
		return ChargeResult{}, ErrInvalidAmount
	}
	if input.CustomerCode == "" {
		return ChargeResult{}, ErrCustomerCodeRequired
	}

	start := time.Now()
	res, err := s.gateway.Purchase(ctx, input.Amount, input.CustomerCode)
	metrics.ObserveGatewayCall("purchase", start, res.Success, err)
	if err != nil {
		return ChargeResult{}, fmt.Errorf("purchase: %w", err)
	}

	outcome := ChargeResult{
		Approved:      res.Success,
		Message:       res.Message,
		Authorization: res.Authorization,
		CVVResult:     res.CVVResult,
		AVSResult:     res.AVSResult,
		TestMode:      res.TestMode,
		CompletedAt:   time.Now().UTC(),
	}

	if s.logger != nil {
		s.logger.Info("purchase completed",
			slog.String("customer_code", input.CustomerCode),
			slog.Int64("amount", input.Amount),
			slog.Bool("approved", outcome.Approved),
			slog.String("authorization", outcome.Authorization),
		)
	}

	if !outcome.Approved && s.notifier != nil {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:         notification.KindPurchaseDeclined,
			CustomerCode: input.CustomerCode,
			Body:         fmt.Sprintf("charge of %s declined: %s", beanstream.FormatAmount(input.Amount), outcome.Message),
		})
	}

	return outcome, nil
}
