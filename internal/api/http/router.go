package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func RegisterHTTPEndpoints(f *fiber.App, appName, webhookToken string, receivers []SignalReceiver, l *logrus.Logger) {
	m := NewMiddleware(f, appName, webhookToken)
	m.useMetrics()

	h := NewHandler(f, receivers, l)

	router := f.Group("api")
	router.Get("/healthcheck", h.HealthCheck)
	router.Post("/signals", m.checkWebhookToken, h.Signals)
}
