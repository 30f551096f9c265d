package main

import (
	"context"
	"time"

	"github.com/Behyna/safetycheck/internal/alert"
	"github.com/Behyna/safetycheck/internal/api"
	v1 "github.com/Behyna/safetycheck/internal/api/v1"
	"github.com/Behyna/safetycheck/internal/api/validator"
	"github.com/Behyna/safetycheck/internal/config"
	"github.com/Behyna/safetycheck/internal/metrics"
	"github.com/Behyna/safetycheck/internal/ratelimit"
	"github.com/Behyna/safetycheck/internal/service"
	"github.com/Behyna/safetycheck/pkg/httpclient"
	"github.com/Behyna/safetycheck/pkg/smsprovider"
	playground "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const systemMetricsInterval = 15 * time.Second

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			NewRegisterer,
			NewGatherer,
			metrics.NewMetrics,
			metrics.NewSystemCollector,

			NewSMSProvider,
			NewComposer,
			service.NewProviderService,
			service.NewEmergencyService,

			playground.New,
			validator.NewXValidator,
			NewRateLimitStorage,
			api.NewApp,
			api.NewHandler,
			api.NewSMSLimiter,
			v1.NewHandler,
		),
		fx.Invoke(startCollector, startServer),
	).Run()
}

func startServer(app *fiber.App, handler *api.Handler, v1Handler *v1.Handler, smsLimiter fiber.Handler,
	cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, v1Handler, smsLimiter)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			logger.Info("SafetyCheck API listening",
				zap.String("port", cfg.API.Port),
				zap.Bool("providerConfigured", cfg.Provider.Username != "" && cfg.Provider.APIKey != ""))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

func startCollector(collector *metrics.SystemCollector, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			collector.Start(systemMetricsInterval)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			collector.Stop()
			return nil
		},
	})
}

func NewRegisterer() prometheus.Registerer {
	return prometheus.DefaultRegisterer
}

func NewGatherer() prometheus.Gatherer {
	return prometheus.DefaultGatherer
}

func NewSMSProvider(cfg *config.Config) smsprovider.Provider {
	client := httpclient.NewHTTPClient(httpclient.Config{Timeout: cfg.Provider.Timeout})
	return smsprovider.NewClickSend(cfg.Provider, client)
}

func NewComposer() service.AlertComposer {
	return alert.NewComposer(time.Now)
}

func NewRateLimitStorage(cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) (fiber.Storage, error) {
	storage, err := ratelimit.NewStorage(cfg.Redis, logger)
	if err != nil || storage == nil {
		return storage, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}
