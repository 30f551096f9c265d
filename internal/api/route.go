package api

import (
	v1 "github.com/Behyna/safetycheck/internal/api/v1"
	"github.com/gofiber/fiber/v2"
)

const prefixSMS = "/api/sms"

func SetupRoutes(app *fiber.App, handler *Handler, v1Handler *v1.Handler, smsLimiter fiber.Handler) {
	app.Get("/ping", handler.Pong)
	app.Get("/metrics", handler.Metrics)
	app.Get("/api/health", handler.Health)

	sms := app.Group(prefixSMS, smsLimiter)
	sms.Post("/test", v1Handler.TestSMS)
	sms.Post("/emergency", v1Handler.Emergency)
}
