package controllers

import (
	"net/http"
	"net/url"
	"time"

	"tradebot/internal/usecasees/structs"
)

//go:generate mockery --case=snake --name=ClientCtrl
//go:generate mockery --case=snake --name=TokenCtrl
//go:generate mockery --case=snake --name=TgmCtrl
//go:generate mockery --case=snake --name=BrokerCtrl

type ClientCtrl interface {
	Do(method string, url *url.URL, body []byte, useAuth bool) (*http.Response, error)
	Send(method string, url *url.URL, body []byte, useAuth bool) ([]byte, error)
}

type TokenCtrl interface {
	Set(token string, ttl time.Duration)
	AccessToken() string
	CheckValidity() bool
}

type TgmCtrl interface {
	Send(text string) error
}

type BrokerCtrl interface {
	CheckTokenValidity() bool
	PlaceOrder(order *structs.BrokerOrder) (int64, error)
	GetOrder(orderID int64) (*structs.BrokerOrder, error)
	CancelOrder(orderID int64) error
	GetQuote(symbol string) (*structs.Quote, error)
	GetAccount() (*structs.AccountSummary, error)
}
