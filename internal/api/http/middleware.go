package http

import (
	"crypto/subtle"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
)

type Middleware struct {
	appName      string
	webhookToken string
	fiber        *fiber.App
}

func NewMiddleware(fiber *fiber.App, appName, webhookToken string) *Middleware {
	return &Middleware{
		appName:      appName,
		webhookToken: webhookToken,
		fiber:        fiber,
	}
}

func (m *Middleware) useMetrics() {
	prometheus := fiberprometheus.New(m.appName)
	prometheus.RegisterAt(m.fiber, "/metrics")
	m.fiber.Use(prometheus.Middleware)
}

// checkWebhookToken guards the signal intake with a shared secret header.
func (m *Middleware) checkWebhookToken(c *fiber.Ctx) error {
	token := c.Get("X-Webhook-Token")

	if subtle.ConstantTimeCompare([]byte(token), []byte(m.webhookToken)) != 1 {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	return c.Next()
}
