package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"tradebot/models"
)

// SignalReceiver is one account's intake for webhook trade signals.
type SignalReceiver interface {
	Submit(signals []models.TradeSignal)
}

type Handler struct {
	fiber     *fiber.App
	receivers []SignalReceiver
	logger    *logrus.Logger
}

func NewHandler(f *fiber.App, receivers []SignalReceiver, l *logrus.Logger) *Handler {
	return &Handler{
		fiber:     f,
		receivers: receivers,
		logger:    l,
	}
}

func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	body := struct {
		Status bool `json:"status"`
	}{
		Status: true,
	}

	if err := c.JSON(body); err != nil {
		return err
	}

	return nil
}

// Signals fans an incoming batch of trade signals out to every registered
// account. Signal generation itself lives outside this process.
func (h *Handler) Signals(c *fiber.Ctx) error {
	var signals []models.TradeSignal

	if err := c.BodyParser(&signals); err != nil {
		h.logger.WithError(err).Error("parse signal payload")
		return c.SendStatus(fiber.StatusBadRequest)
	}

	for _, signal := range signals {
		if signal.Symbol == "" || signal.Side == "" || signal.Strategy == "" || signal.AssetType == "" {
			return c.SendStatus(fiber.StatusUnprocessableEntity)
		}
	}

	for _, receiver := range h.receivers {
		receiver.Submit(signals)
	}

	return c.SendStatus(fiber.StatusAccepted)
}
