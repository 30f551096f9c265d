package api

import (
	"time"

	"github.com/Behyna/safetycheck/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// Handler serves the unversioned operational endpoints.
type Handler struct {
	logger      *zap.Logger
	serviceName string
	metrics     fiber.Handler
}

func NewHandler(logger *zap.Logger, config *config.Config, gatherer prometheus.Gatherer) *Handler {
	return &Handler{
		logger:      logger,
		serviceName: config.API.ServiceName,
		metrics:     adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})),
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Service:   h.serviceName,
	})
}

func (h *Handler) Metrics(c *fiber.Ctx) error {
	return h.metrics(c)
}
