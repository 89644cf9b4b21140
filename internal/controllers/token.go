package controllers

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// TokenController holds the broker access token. Refresh itself happens
// outside this process; the external refresher pushes new tokens in through
// Set. Validity is checked immediately before every network operation.
type TokenController struct {
	mu        sync.RWMutex
	token     string
	expiresAt time.Time
	logger    *logrus.Logger
}

func NewTokenController(token string, ttl time.Duration, logger *logrus.Logger) *TokenController {
	return &TokenController{
		token:     token,
		expiresAt: time.Now().Add(ttl),
		logger:    logger,
	}
}

func (c *TokenController) Set(token string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
	c.expiresAt = time.Now().Add(ttl)
}

func (c *TokenController) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.token
}

func (c *TokenController) CheckValidity() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.token == "" {
		c.logger.Error("broker access token is empty")
		return false
	}

	if !time.Now().Before(c.expiresAt) {
		c.logger.Error("broker access token expired")
		return false
	}

	return true
}
