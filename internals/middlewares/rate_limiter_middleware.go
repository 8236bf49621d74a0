package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func limiterConfig(max int, window time.Duration, msg string) limiter.Config {
	cfg := limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": msg,
			})
		},
	}
	// shared counters across instances when REDIS_URL is set
	if s := RedisLimiterStorage(); s != nil {
		cfg.Storage = s
	}
	return cfg
}

// Global limiter: all regular endpoints
func GlobalRateLimiter() fiber.Handler {
	return limiter.New(limiterConfig(100, 1*time.Minute,
		"Too many requests. Please try again later."))
}

// Stricter limiter for the login route
func LoginRateLimiter() fiber.Handler {
	return limiter.New(limiterConfig(5, 1*time.Minute,
		"Too many login attempts. Try again in a minute."))
}

// Stricter limiter for the register route
func RegisterRateLimiter() fiber.Handler {
	return limiter.New(limiterConfig(3, 5*time.Minute,
		"Too many registration attempts. Please wait a few minutes."))
}
