package controllers

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"tradebot/internal/usecasees/structs"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	accountsUrlPath   = "/trader/v1/accounts"
	marketDataUrlPath = "/marketdata/v1/quotes"
)

// OrderRejectedError carries the broker's reported error text for a
// declined order. Rejections are terminal, never retried.
type OrderRejectedError struct {
	Message string
}

func (e *OrderRejectedError) Error() string {
	return fmt.Sprintf("order rejected: %s", e.Message)
}

// BrokerController is the gateway to the brokerage REST API: order
// placement, order status, quotes and the account summary.
type BrokerController struct {
	client      ClientCtrl
	token       TokenCtrl
	url         string
	accountHash string
	logger      *logrus.Logger
}

func NewBrokerController(
	client ClientCtrl,
	token TokenCtrl,
	url string,
	accountHash string,
	logger *logrus.Logger,
) *BrokerController {
	return &BrokerController{
		client:      client,
		token:       token,
		url:         url,
		accountHash: accountHash,
		logger:      logger,
	}
}

func (c *BrokerController) CheckTokenValidity() bool {
	return c.token.CheckValidity()
}

// PlaceOrder submits the order and returns the broker order id, read from
// the Location response header. Any non-2xx response is a rejection.
func (c *BrokerController) PlaceOrder(order *structs.BrokerOrder) (int64, error) {
	baseURL, err := url.Parse(c.url)
	if err != nil {
		return 0, err
	}

	baseURL.Path = path.Join(accountsUrlPath, c.accountHash, "orders")

	body, err := json.Marshal(order)
	if err != nil {
		return 0, err
	}

	resp, err := c.client.Do(http.MethodPost, baseURL, body, true)
	if err != nil {
		return 0, err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respErr, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return 0, err
		}

		var errMsg ErrStruct
		if err := json.Unmarshal(respErr, &errMsg); err != nil || errMsg.Error == "" {
			errMsg.Error = "Unknown error"
		}

		return 0, &OrderRejectedError{Message: errMsg.Error}
	}

	location := resp.Header.Get("Location")

	parts := strings.Split(location, "/")
	orderID, err := strconv.ParseInt(strings.TrimSpace(parts[len(parts)-1]), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse order id from location %q", location)
	}

	return orderID, nil
}

func (c *BrokerController) GetOrder(orderID int64) (*structs.BrokerOrder, error) {
	baseURL, err := url.Parse(c.url)
	if err != nil {
		return nil, err
	}

	baseURL.Path = path.Join(accountsUrlPath, c.accountHash, "orders", fmt.Sprintf("%d", orderID))

	body, err := c.client.Send(http.MethodGet, baseURL, nil, true)
	if err != nil {
		return nil, err
	}

	var out structs.BrokerOrder

	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *BrokerController) CancelOrder(orderID int64) error {
	baseURL, err := url.Parse(c.url)
	if err != nil {
		return err
	}

	baseURL.Path = path.Join(accountsUrlPath, c.accountHash, "orders", fmt.Sprintf("%d", orderID))

	if _, err := c.client.Send(http.MethodDelete, baseURL, nil, true); err != nil {
		return err
	}

	return nil
}

func (c *BrokerController) GetQuote(symbol string) (*structs.Quote, error) {
	baseURL, err := url.Parse(c.url)
	if err != nil {
		return nil, err
	}

	baseURL.Path = path.Join(marketDataUrlPath)

	q := baseURL.Query()
	q.Set("symbols", symbol)
	baseURL.RawQuery = q.Encode()

	body, err := c.client.Send(http.MethodGet, baseURL, nil, true)
	if err != nil {
		return nil, err
	}

	var out structs.QuoteResponse

	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}

	entry, ok := out[symbol]
	if !ok {
		return nil, errors.Errorf("no quote returned for %s", symbol)
	}

	return &entry.Quote, nil
}

func (c *BrokerController) GetAccount() (*structs.AccountSummary, error) {
	baseURL, err := url.Parse(c.url)
	if err != nil {
		return nil, err
	}

	baseURL.Path = path.Join(accountsUrlPath, c.accountHash)

	body, err := c.client.Send(http.MethodGet, baseURL, nil, true)
	if err != nil {
		return nil, err
	}

	var out structs.AccountSummary

	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
