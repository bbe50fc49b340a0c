package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const purchaseRateKeyPrefix = "rl:purchase:"

// PurchaseRateLimit caps charges per customer code per minute using Redis.
// Without Redis, or on Redis errors, requests pass through.
func PurchaseRateLimit(cache *redis.Client, maxPerMin int, logger *slog.Logger) fiber.Handler {
	if maxPerMin <= 0 {
		maxPerMin = 10
	}
	return func(c *fiber.Ctx) error {
		if cache == nil {
			return c.Next()
		}
		code := c.Params("customerCode")
		if code == "" {
			return c.Next()
		}

		ctx := c.UserContext()
		key := purchaseRateKeyPrefix + code
		cnt, err := cache.Incr(ctx, key).Result()
		if err != nil {
			if logger != nil {
				logger.Warn("purchase rate limit unavailable", slog.String("customer_code", code), slog.Any("error", err))
			}
			return c.Next()
		}
		if cnt == 1 {
			cache.Expire(ctx, key, time.Minute)
		}
		if cnt > int64(maxPerMin) {
			return fiber.NewError(http.StatusTooManyRequests, "too many purchases for this profile, try again later")
		}
		return c.Next()
	}
}
