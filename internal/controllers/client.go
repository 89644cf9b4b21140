package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type ClientController struct {
	client *http.Client
	token  TokenCtrl
	logger *logrus.Logger
}

func NewClientController(
	client *http.Client,
	token TokenCtrl,
	logger *logrus.Logger,
) *ClientController {
	return &ClientController{
		client: client,
		token:  token,
		logger: logger,
	}
}

// ErrNotFound maps any broker 404. The resource depends on the endpoint:
// an order for the order routes, an instrument or account elsewhere.
var ErrNotFound = errors.New("resource not found")

type ErrStruct struct {
	Error string `json:"error"`
}

// Do performs the request and returns the raw response. Order placement
// reads the new order id from the Location header, so it needs Do; everyone
// else goes through Send.
func (c *ClientController) Do(method string, url *url.URL, body []byte, useAuth bool) (*http.Response, error) {
	req, err := http.NewRequest(method, url.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", "application/json")
	if useAuth {
		req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", c.token.AccessToken()))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *ClientController) Send(method string, url *url.URL, body []byte, useAuth bool) ([]byte, error) {
	resp, err := c.Do(method, url, body, useAuth)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respErr, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		var errMsg ErrStruct
		if err := json.Unmarshal(respErr, &errMsg); err == nil && errMsg.Error != "" {
			return nil, errors.Errorf("statusCode %d; %s", resp.StatusCode, errMsg.Error)
		}

		return nil, errors.Errorf("statusCode %d; resp %s;", resp.StatusCode, respErr)
	}

	out, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return out, nil
}
