package profiles

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/congo-pay/cardprofiles/internal/beanstream"
	"github.com/congo-pay/cardprofiles/internal/metrics"
)

var (
	// ErrCardRequired indicates a new profile was requested without card data.
	ErrCardRequired = errors.New("card is required to create a profile")
	// ErrInvalidCard wraps card validation failures.
	ErrInvalidCard = errors.New("invalid card")
)

// Service stores payment profiles with the provider.
type Service struct {
	gateway Gateway
	logger  *slog.Logger
}

// NewService constructs a profile service.
func NewService(gateway Gateway, logger *slog.Logger) (*Service, error) {
	if gateway == nil {
		return nil, fmt.Errorf("gateway is required")
	}
	return &Service{gateway: gateway, logger: logger}, nil
}

// StoreInput captures a profile create or update. An empty CustomerCode creates.
type StoreInput struct {
	CustomerCode string
	Card         *beanstream.CreditCard
	Order        *beanstream.Order
	Custom       *beanstream.Custom
}

// ProfileResult is the outcome of a profile request.
type ProfileResult struct {
	CustomerCode string
	Created      bool
	Approved     bool
	Message      string
	TestMode     bool
	CompletedAt  time.Time
}

// Store validates the card, if any, and creates or updates the profile.
// A provider rejection is reported through Approved, not as an error.
func (s *Service) Store(ctx context.Context, input StoreInput) (ProfileResult, error) {
	create := input.CustomerCode == ""
	if create && input.Card == nil {
		return ProfileResult{}, ErrCardRequired
	}
	var card *beanstream.CreditCard
	if input.Card != nil {
		c := *input.Card
		c.Number = strings.ReplaceAll(c.Number, " ", "")
		if err := validateCard(c); err != nil {
			return ProfileResult{}, err
		}
		card = &c
	}

	opts := beanstream.ProfileOptions{
		CustomerCode: input.CustomerCode,
		Order:        input.Order,
		Custom:       input.Custom,
	}

	operation := "profile_update"
	start := time.Now()
	var (
		res beanstream.Result
		err error
	)
	if create {
		operation = "profile_create"
		res, err = s.gateway.CreateProfile(ctx, card, opts)
	} else {
		res, err = s.gateway.UpdateProfile(ctx, input.CustomerCode, card, opts)
	}
	metrics.ObserveGatewayCall(operation, start, res.Success, err)
	if err != nil {
		return ProfileResult{}, fmt.Errorf("%s: %w", operation, err)
	}

	code := input.CustomerCode
	if returned := res.CustomerCode(); returned != "" {
		code = returned
	}

	if s.logger != nil {
		s.logger.Info("profile stored",
			slog.String("operation", operation),
			slog.String("customer_code", code),
			slog.Bool("approved", res.Success),
			slog.Bool("test_mode", res.TestMode),
		)
	}

	return ProfileResult{
		CustomerCode: code,
		Created:      create,
		Approved:     res.Success,
		Message:      res.Message,
		TestMode:     res.TestMode,
		CompletedAt:  time.Now().UTC(),
	}, nil
}

func validateCard(card beanstream.CreditCard) error {
	if err := validateCardNumber(card.Number); err != nil {
		return err
	}
	if card.Month < 1 || card.Month > 12 {
		return fmt.Errorf("%w: expiry month must be 1..12", ErrInvalidCard)
	}
	if card.Year < 0 {
		return fmt.Errorf("%w: expiry year must not be negative", ErrInvalidCard)
	}
	return nil
}

func validateCardNumber(digits string) error {
	if len(digits) < 12 || len(digits) > 19 {
		return fmt.Errorf("%w: card number must be between 12 and 19 digits", ErrInvalidCard)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: card number must be numeric", ErrInvalidCard)
		}
	}
	return nil
}
