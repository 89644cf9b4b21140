package postgres

import (
	"tradebot/models"
)

//go:generate mockery --case=snake --name=HistoryRepo

type HistoryRepo interface {
	StoreBalance(m *models.BalanceSnapshot) error
	HasBalanceFor(trader, accountID, date string) (bool, error)
	StoreProfitLoss(m *models.ProfitLossSnapshot) error
	HasProfitLossFor(trader, accountID, date string) (bool, error)
}
