// Package beanstream is a client for the Beanstream payment profile and
// transaction scripts. Requests are form-encoded POSTs, replies are
// form-encoded key/value bodies.
package beanstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
)

const (
	// DefaultProfileURL is the payment profile endpoint.
	DefaultProfileURL = "https://www.beanstream.com/scripts/payment_profile.asp"
	// DefaultPurchaseURL is the transaction processing endpoint.
	DefaultPurchaseURL = "https://www.beanstream.com/scripts/process_transaction.asp"

	responseFormat = "QS"
	serviceVersion = "1.1"
	requestType    = "BACKEND"
	formMIME       = "application/x-www-form-urlencoded"
)

var (
	// ErrMissingCredentials is returned by New when a merchant credential is blank.
	ErrMissingCredentials = errors.New("missing gateway credentials")

	// ErrInvalidOperation indicates a profile operation other than new or update.
	ErrInvalidOperation = errors.New("invalid profile operation")
)

// Credentials identify the merchant on every request.
type Credentials struct {
	MerchantID string `validate:"required"`
	Passcode   string `validate:"required"`
	Username   string `validate:"required"`
	Password   string `validate:"required"`
}

// Config configures a Client.
type Config struct {
	Credentials Credentials
	// TestMode is copied onto every Result.
	TestMode    bool
	ProfileURL  string
	PurchaseURL string
	// HTTPClient supplies timeouts and TLS settings.
	HTTPClient  *http.Client
	Logger      *slog.Logger
}

// StatusError is returned when the provider answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gateway status=%d body=%s", e.StatusCode, e.Body)
}

// Client talks to the provider. It holds no mutable state and is safe for
// concurrent use.
type Client struct {
	creds       Credentials
	testMode    bool
	profileURL  string
	purchaseURL string
	http        *resty.Client
	logger      *slog.Logger
}

var validate = validator.New()

// New validates the credentials and builds a Client.
func New(cfg Config) (*Client, error) {
	if err := validate.Struct(cfg.Credentials); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			missing := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				missing = append(missing, fe.Field())
			}
			return nil, fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
		}
		return nil, fmt.Errorf("validate credentials: %w", err)
	}

	rc := resty.New()
	if cfg.HTTPClient != nil {
		rc = resty.NewWithClient(cfg.HTTPClient)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		creds:       cfg.Credentials,
		testMode:    cfg.TestMode,
		profileURL:  orDefault(cfg.ProfileURL, DefaultProfileURL),
		purchaseURL: orDefault(cfg.PurchaseURL, DefaultPurchaseURL),
		http:        rc,
		logger:      logger.With(slog.String("component", "beanstream")),
	}, nil
}

// TestMode reports whether the client was configured against a test account.
func (c *Client) TestMode() bool {
	return c.testMode
}

// post sends the encoded fields and decodes the reply. Declines are not
// errors; only transport failures and non-2xx statuses are.
func (c *Client) post(ctx context.Context, endpoint string, fields *Fields) (Response, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", formMIME).
		SetBody(fields.Encode()).
		Post(endpoint)
	if err != nil {
		return Response{}, fmt.Errorf("post %s: %w", endpoint, err)
	}
	if !resp.IsSuccess() {
		return Response{}, &StatusError{
			StatusCode: resp.StatusCode(),
			Body:       strings.TrimSpace(resp.String()),
		}
	}

	return ParseResponse(strings.TrimSpace(resp.String())), nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
