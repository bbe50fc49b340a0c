package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppName           = "CardProfiles"
	defaultAppEnv            = "development"
	defaultPort              = "8080"
	defaultLogLevel          = "info"
	defaultLogFormat         = "json"
	defaultShutdownDelay     = 10 * time.Second
	defaultGatewayTimeout    = 30 * time.Second
	defaultPurchaseRateLimit = 10
	shutdownSecondsEnvVar    = "SHUTDOWN_TIMEOUT_SECONDS"
	shutdownDurationEnvVar   = "SHUTDOWN_TIMEOUT"
	gatewayTimeoutEnvVar     = "GATEWAY_TIMEOUT"
	purchaseRateLimitEnvVar  = "PURCHASE_RATE_LIMIT"
	testModeEnvVar           = "BEANSTREAM_TEST_MODE"
)

// Gateway holds the provider account and endpoints.
type Gateway struct {
	MerchantID  string
	Passcode    string
	Username    string
	Password    string
	TestMode    bool
	ProfileURL  string
	PurchaseURL string
	Timeout     time.Duration
}

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName           string
	AppEnv            string
	Port              string
	LogLevel          string
	LogFormat         string
	RedisURL          string
	APITokenHash      string
	PurchaseRateLimit int
	ShutdownPeriod    time.Duration
	Gateway           Gateway
}

// Load reads an optional .env file, then the environment, and populates a Config.
// Gateway credentials are checked when the gateway client is built.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		AppName:           getEnv("APP_NAME", defaultAppName),
		AppEnv:            getEnv("APP_ENV", defaultAppEnv),
		Port:              getEnv("PORT", defaultPort),
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		LogFormat:         strings.ToLower(getEnv("LOG_FORMAT", defaultLogFormat)),
		RedisURL:          os.Getenv("REDIS_URL"),
		APITokenHash:      os.Getenv("API_TOKEN_HASH"),
		PurchaseRateLimit: defaultPurchaseRateLimit,
		ShutdownPeriod:    defaultShutdownDelay,
		Gateway: Gateway{
			MerchantID:  os.Getenv("BEANSTREAM_MERCHANT_ID"),
			Passcode:    os.Getenv("BEANSTREAM_PASSCODE"),
			Username:    os.Getenv("BEANSTREAM_USERNAME"),
			Password:    os.Getenv("BEANSTREAM_PASSWORD"),
			ProfileURL:  os.Getenv("BEANSTREAM_PROFILE_URL"),
			PurchaseURL: os.Getenv("BEANSTREAM_PURCHASE_URL"),
			Timeout:     defaultGatewayTimeout,
		},
	}

	if v := os.Getenv(shutdownSecondsEnvVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownSecondsEnvVar, err)
		}
		cfg.ShutdownPeriod = time.Duration(seconds) * time.Second
	} else if v := os.Getenv(shutdownDurationEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownDurationEnvVar, err)
		}
		cfg.ShutdownPeriod = d
	}

	if v := os.Getenv(gatewayTimeoutEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", gatewayTimeoutEnvVar, err)
		}
		cfg.Gateway.Timeout = d
	}

	if v := os.Getenv(testModeEnvVar); v != "" {
		testMode, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", testModeEnvVar, err)
		}
		cfg.Gateway.TestMode = testMode
	}

	if v := os.Getenv(purchaseRateLimitEnvVar); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", purchaseRateLimitEnvVar, err)
		}
		cfg.PurchaseRateLimit = limit
	}

	if !cfg.IsDev() && cfg.APITokenHash == "" {
		return Config{}, fmt.Errorf("API_TOKEN_HASH must be set when APP_ENV=%s", cfg.AppEnv)
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// IsDev reports whether the app runs in a local/development environment.
func (c Config) IsDev() bool {
	switch strings.ToLower(c.AppEnv) {
	case "dev", "development", "local", "test":
		return true
	default:
		return false
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
