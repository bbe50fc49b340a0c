package notification

import (
	"context"
	"log/slog"
)

const (
	// KindPurchaseDeclined is sent when the provider refuses a charge against a profile.
	KindPurchaseDeclined = "purchase_declined"
)

// Message describes a notification payload.
type Message struct {
	Kind         string
	CustomerCode string
	Body         string
}

// Notifier delivers notifications to downstream systems.
type Notifier interface {
	Send(ctx context.Context, message Message) error
}

// LoggerNotifier writes notifications to the structured logger.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Send writes the message to the structured logger.
func (n *LoggerNotifier) Send(ctx context.Context, message Message) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.InfoContext(ctx, "notification",
		slog.String("kind", message.Kind),
		slog.String("customer_code", message.CustomerCode),
		slog.String("body", message.Body),
	)
	return nil
}
