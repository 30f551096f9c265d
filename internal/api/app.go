package api

import (
	"slices"
	"strings"

	"github.com/Behyna/safetycheck/internal/config"
	"github.com/Behyna/safetycheck/internal/constants"
	errmiddleware "github.com/Behyna/safetycheck/internal/error"
	"github.com/Behyna/safetycheck/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func NewApp(config *config.Config, logger *zap.Logger, m *metrics.Metrics) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               config.API.ServiceName,
		ErrorHandler:          errmiddleware.ErrorHandler(logger),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	app.Use(cors.New(corsConfig(config.API.CORSOrigins)))

	return app
}

// NewSMSLimiter limits requests per client IP. A nil storage keeps the
// counters in process memory.
func NewSMSLimiter(config *config.Config, storage fiber.Storage, m *metrics.Metrics, logger *zap.Logger) fiber.Handler {
	if !config.RateLimit.Enable {
		logger.Warn("SMS rate limiting disabled")
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	return limiter.New(limiter.Config{
		Max:        config.RateLimit.Max,
		Expiration: config.RateLimit.Window,
		Storage:    storage,
		LimitReached: func(c *fiber.Ctx) error {
			m.RecordRateLimited()
			logger.Warn("SMS rate limit reached", zap.String("ip", c.IP()), zap.String("path", c.Path()))
			return fiber.NewError(fiber.StatusTooManyRequests, constants.ErrMsgRateLimited)
		},
	})
}

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 || slices.Contains(origins, "*") {
		return cors.Config{AllowOrigins: "*"}
	}

	return cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowCredentials: true,
	}
}
