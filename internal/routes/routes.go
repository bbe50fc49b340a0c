package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/congo-pay/cardprofiles/internal/config"
	"github.com/congo-pay/cardprofiles/internal/middleware"
	"github.com/congo-pay/cardprofiles/internal/notification"
	"github.com/congo-pay/cardprofiles/internal/payments"
	"github.com/congo-pay/cardprofiles/internal/profiles"
)

// Gateway is everything the HTTP surface needs from the provider client.
type Gateway interface {
	profiles.Gateway
	payments.Gateway
}

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg     config.Config
	Gateway Gateway
	Cache   *redis.Client
	Logger  *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	if d.Gateway == nil {
		return fmt.Errorf("gateway client is required")
	}
	if !d.Cfg.IsDev() && d.Cfg.APITokenHash == "" {
		return fmt.Errorf("api token hash is required when APP_ENV=%s", d.Cfg.AppEnv)
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))

	RegisterHealthRoutes(app, d)
	RegisterMetricsRoutes(app)

	profileSvc, err := profiles.NewService(d.Gateway, d.Logger)
	if err != nil {
		return err
	}
	notifier := notification.NewLoggerNotifier(d.Logger)
	paymentSvc := payments.NewService(d.Gateway, notifier, d.Logger)

	profileHandler := profiles.NewHandler(profileSvc)
	paymentHandler := payments.NewHandler(paymentSvc)

	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": middleware.RequestIDFromContext(c.UserContext()),
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	protected := api.Group("", middleware.APIToken(d.Cfg.APITokenHash))
	RegisterProfileRoutes(protected, profileHandler)
	rateLimiter := middleware.PurchaseRateLimit(d.Cache, d.Cfg.PurchaseRateLimit, d.Logger)
	RegisterPaymentRoutes(protected, paymentHandler, rateLimiter)

	return nil
}
