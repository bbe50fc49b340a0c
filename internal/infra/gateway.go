package infra

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/congo-pay/cardprofiles/internal/beanstream"
	"github.com/congo-pay/cardprofiles/internal/config"
)

// NewGatewayClient builds the provider client from configuration. Missing
// credentials are fatal here, before any request is attempted.
func NewGatewayClient(cfg config.Gateway, logger *slog.Logger) (*beanstream.Client, error) {
	client, err := beanstream.New(beanstream.Config{
		Credentials: beanstream.Credentials{
			MerchantID: cfg.MerchantID,
			Passcode:   cfg.Passcode,
			Username:   cfg.Username,
			Password:   cfg.Password,
		},
		TestMode:    cfg.TestMode,
		ProfileURL:  cfg.ProfileURL,
		PurchaseURL: cfg.PurchaseURL,
		HTTPClient:  &http.Client{Timeout: cfg.Timeout},
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build gateway client: %w", err)
	}
	return client, nil
}
