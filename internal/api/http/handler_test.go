package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tradebot/models"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type captureReceiver struct {
	got []models.TradeSignal
}

func (r *captureReceiver) Submit(signals []models.TradeSignal) {
	r.got = append(r.got, signals...)
}

// each test app gets a distinct service name; fiberprometheus registers its
// collectors in the default registry and duplicate names panic
var testAppSeq int

func newTestApp(receivers ...SignalReceiver) *fiber.App {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	testAppSeq++

	app := fiber.New()
	RegisterHTTPEndpoints(app, fmt.Sprintf("tradebot-test-%d", testAppSeq), "secret", receivers, logger)

	return app
}

func signalsRequest(body, token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/signals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Webhook-Token", token)
	}

	return req
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/healthcheck", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSignalsFanOut(t *testing.T) {
	first := &captureReceiver{}
	second := &captureReceiver{}
	app := newTestApp(first, second)

	body := `[{"symbol":"SPY","side":"BUY","strategy":"EMA_CROSS","asset_type":"EQUITY"}]`

	resp, err := app.Test(signalsRequest(body, "secret"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	assert.Len(t, first.got, 1)
	assert.Len(t, second.got, 1)
	assert.Equal(t, "SPY", first.got[0].Symbol)
	assert.Equal(t, "BUY", first.got[0].Side)
}

func TestSignalsRejectsBadToken(t *testing.T) {
	receiver := &captureReceiver{}
	app := newTestApp(receiver)

	body := `[{"symbol":"SPY","side":"BUY","strategy":"EMA_CROSS","asset_type":"EQUITY"}]`

	resp, err := app.Test(signalsRequest(body, "wrong"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, receiver.got)

	resp, err = app.Test(signalsRequest(body, ""))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSignalsRejectsMalformedBody(t *testing.T) {
	receiver := &captureReceiver{}
	app := newTestApp(receiver)

	resp, err := app.Test(signalsRequest(`{"not":"an array"`, "secret"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, receiver.got)
}

func TestSignalsRejectsIncompleteSignal(t *testing.T) {
	receiver := &captureReceiver{}
	app := newTestApp(receiver)

	body := `[{"symbol":"SPY","side":"BUY"}]`

	resp, err := app.Test(signalsRequest(body, "secret"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Empty(t, receiver.got)
}
