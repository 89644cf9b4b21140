package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const appName = "tradebot"

type Config struct {
	LogLevel string

	TelegramApiToken string
	TelegramChatID   string

	TraderName string

	BrokerUrl         string
	BrokerAccessToken string
	BrokerTokenTTLSec int

	TakeProfitPct float64
	StopLossPct   float64

	HTTPAddr     string
	WebhookToken string

	LokiHost string

	Accounts []AccountConfig

	Mongo *Mongo
	DB    *DB
}

// AccountConfig is one trading account: the public account id, the opaque
// hash the broker's order endpoints are keyed by, and Live or Paper mode.
type AccountConfig struct {
	ID   string
	Hash string
	Mode string
}

type Mongo struct {
	Host     string
	User     string
	Password string
	DBName   string
}

type DB struct {
	Host     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

var ErrEnvNotFound = errors.New("err env not found")

func (a *App) loadConfig(confFileName string) error {
	var cfg Config
	var mongoCfg Mongo
	var db DB

	err := godotenv.Load(confFileName)
	if err != nil {
		return err
	}

	cfg.LogLevel = os.Getenv("LOG_LEVEL")
	cfg.LokiHost = os.Getenv("LOKI_HOST")

	if cfg.TelegramApiToken, err = cfg.set("TELEGRAM_API_TOKEN"); err != nil {
		return err
	}

	if cfg.TelegramChatID, err = cfg.set("TELEGRAM_CHAT_ID"); err != nil {
		return err
	}

	if cfg.TraderName, err = cfg.set("TRADER_NAME"); err != nil {
		return err
	}

	if cfg.BrokerUrl, err = cfg.set("BROKER_URL"); err != nil {
		return err
	}

	if cfg.BrokerAccessToken, err = cfg.set("BROKER_ACCESS_TOKEN"); err != nil {
		return err
	}

	ttl, err := cfg.set("BROKER_TOKEN_TTL_SEC")
	if err != nil {
		return err
	}
	if cfg.BrokerTokenTTLSec, err = strconv.Atoi(ttl); err != nil {
		return err
	}

	takeProfit, err := cfg.set("TAKE_PROFIT_PERCENTAGE")
	if err != nil {
		return err
	}
	if cfg.TakeProfitPct, err = strconv.ParseFloat(takeProfit, 64); err != nil {
		return err
	}

	stopLoss, err := cfg.set("STOP_LOSS_PERCENTAGE")
	if err != nil {
		return err
	}
	if cfg.StopLossPct, err = strconv.ParseFloat(stopLoss, 64); err != nil {
		return err
	}

	if cfg.HTTPAddr, err = cfg.set("HTTP_ADDR"); err != nil {
		return err
	}

	if cfg.WebhookToken, err = cfg.set("WEBHOOK_TOKEN"); err != nil {
		return err
	}

	accounts, err := cfg.set("ACCOUNTS")
	if err != nil {
		return err
	}
	if cfg.Accounts, err = parseAccounts(accounts); err != nil {
		return err
	}

	if mongoCfg.Host, err = cfg.set("MONGO_HOST"); err != nil {
		return err
	}

	if mongoCfg.User, err = cfg.set("MONGO_USER"); err != nil {
		return err
	}

	if mongoCfg.Password, err = cfg.set("MONGO_PASSWORD"); err != nil {
		return err
	}

	if mongoCfg.DBName, err = cfg.set("MONGO_DBNAME"); err != nil {
		return err
	}

	if db.Host, err = cfg.set("PG_HOST"); err != nil {
		return err
	}

	if db.User, err = cfg.set("PG_USER"); err != nil {
		return err
	}

	if db.Password, err = cfg.set("PG_PASSWORD"); err != nil {
		return err
	}

	if db.DBName, err = cfg.set("PG_DBNAME"); err != nil {
		return err
	}

	if db.SSLMode, err = cfg.set("PG_SSL_MODE"); err != nil {
		return err
	}

	cfg.Mongo = &mongoCfg
	cfg.DB = &db

	a.Config = &cfg

	return nil
}

// parseAccounts splits ACCOUNTS entries of the form id:hash:mode.
func parseAccounts(raw string) ([]AccountConfig, error) {
	var out []AccountConfig

	for _, entry := range strings.Split(raw, ",") {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("bad account entry %q", entry)
		}

		if parts[2] != "Live" && parts[2] != "Paper" {
			return nil, fmt.Errorf("bad account mode %q", parts[2])
		}

		out = append(out, AccountConfig{
			ID:   parts[0],
			Hash: parts[1],
			Mode: parts[2],
		})
	}

	if len(out) == 0 {
		return nil, errors.New("no accounts configured")
	}

	return out, nil
}

func (m *Mongo) DSN() string {
	return fmt.Sprintf("mongodb://%s", m.Host)
}

func (d *DB) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode)
}

func (c *Config) set(key string) (string, error) {
	if os.Getenv(key) == "" {
		return "", ErrEnvNotFound
	}

	return os.Getenv(key), nil
}
