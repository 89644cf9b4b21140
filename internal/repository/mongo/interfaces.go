package mongo

import (
	"tradebot/models"
)

//go:generate mockery --case=snake --name=QueueRepo
//go:generate mockery --case=snake --name=OpenPositionsRepo
//go:generate mockery --case=snake --name=ClosedPositionsRepo
//go:generate mockery --case=snake --name=AuditRepo
//go:generate mockery --case=snake --name=StrategiesRepo
//go:generate mockery --case=snake --name=ForbiddenRepo
//go:generate mockery --case=snake --name=UsersRepo

// FindOne methods return (nil, nil) when no document matches.

type QueueRepo interface {
	Find(trader, accountID string) ([]models.QueuedOrder, error)
	FindOne(trader, symbol, strategy, accountID string) (*models.QueuedOrder, error)
	Upsert(order *models.QueuedOrder) error
	SetStatus(trader, symbol, strategy, accountID, status string) error
	Delete(trader, symbol, strategy, accountID string) (int64, error)
}

type OpenPositionsRepo interface {
	Find(trader, accountID string) ([]models.OpenPosition, error)
	FindByOrderType(trader, accountID, orderType string) ([]models.OpenPosition, error)
	FindByAssetType(trader, accountID, assetType string) ([]models.OpenPosition, error)
	FindOne(trader, symbol, strategy, accountID string) (*models.OpenPosition, error)
	Insert(position *models.OpenPosition) error
	SetChildStatus(trader, symbol, strategy, accountID, childID, status string) error
	Delete(trader, symbol, strategy, accountID string) (int64, error)
}

type ClosedPositionsRepo interface {
	Find(trader, accountID string) ([]models.ClosedPosition, error)
	Insert(position *models.ClosedPosition) error
}

type AuditRepo interface {
	Insert(record *models.AuditRecord) error
}

type StrategiesRepo interface {
	FindOne(strategy, accountID string) (*models.StrategyConfig, error)
	InsertIfAbsent(cfg *models.StrategyConfig) error
	UpdatePositionSizeAll(accountID string, size float64) (int64, error)
}

type ForbiddenRepo interface {
	Exists(symbol, accountID string) (bool, error)
}

type UsersRepo interface {
	FindOne(trader, accountID string) (*models.Account, error)
	SetLiquidationValue(trader, accountID string, value float64) error
}
