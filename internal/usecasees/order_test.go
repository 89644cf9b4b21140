package usecasees

import (
	"testing"
	"time"

	"tradebot/internal/controllers"
	ctrlMocks "tradebot/internal/controllers/mocks"
	mongoMocks "tradebot/internal/repository/mongo/mocks"
	"tradebot/internal/usecasees/structs"
	"tradebot/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type orderMocks struct {
	broker *ctrlMocks.BrokerCtrl
	tgm    *ctrlMocks.TgmCtrl

	queueRepo      *mongoMocks.QueueRepo
	openRepo       *mongoMocks.OpenPositionsRepo
	closedRepo     *mongoMocks.ClosedPositionsRepo
	rejectedRepo   *mongoMocks.AuditRepo
	canceledRepo   *mongoMocks.AuditRepo
	strategiesRepo *mongoMocks.StrategiesRepo
	forbiddenRepo  *mongoMocks.ForbiddenRepo
	usersRepo      *mongoMocks.UsersRepo
}

func newOrderMocks() *orderMocks {
	return &orderMocks{
		broker:         &ctrlMocks.BrokerCtrl{},
		tgm:            &ctrlMocks.TgmCtrl{},
		queueRepo:      &mongoMocks.QueueRepo{},
		openRepo:       &mongoMocks.OpenPositionsRepo{},
		closedRepo:     &mongoMocks.ClosedPositionsRepo{},
		rejectedRepo:   &mongoMocks.AuditRepo{},
		canceledRepo:   &mongoMocks.AuditRepo{},
		strategiesRepo: &mongoMocks.StrategiesRepo{},
		forbiddenRepo:  &mongoMocks.ForbiddenRepo{},
		usersRepo:      &mongoMocks.UsersRepo{},
	}
}

func (m *orderMocks) useCase(liveTrader bool) *orderUseCase {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	builder := NewOrderBuilder(m.broker, "TestTrader", "acc-1", 1.1, 0.9, logger)

	return NewOrderUseCase(
		m.broker,
		m.tgm,
		builder,
		m.queueRepo,
		m.openRepo,
		m.closedRepo,
		m.rejectedRepo,
		m.canceledRepo,
		m.strategiesRepo,
		m.forbiddenRepo,
		m.usersRepo,
		"TestTrader",
		"acc-1",
		liveTrader,
		nil,
		logger,
	)
}

func activeStrategy(orderType string) *models.StrategyConfig {
	return &models.StrategyConfig{
		Strategy:     "EMA_CROSS",
		AccountID:    "acc-1",
		Active:       true,
		OrderType:    orderType,
		AssetType:    ASSET_EQUITY,
		PositionSize: 1000,
		PositionType: POSITION_LONG,
	}
}

func buySignal() models.TradeSignal {
	return models.TradeSignal{
		Symbol:    "SPY",
		Side:      SIDE_BUY,
		Strategy:  "EMA_CROSS",
		AssetType: ASSET_EQUITY,
	}
}

func TestSidePairings(t *testing.T) {
	assert.True(t, isOpeningPair(SIDE_BUY, POSITION_LONG))
	assert.True(t, isOpeningPair(SIDE_SELL, POSITION_SHORT))
	assert.True(t, isOpeningPair(SIDE_BUY_TO_OPEN, POSITION_LONG))
	assert.True(t, isOpeningPair(SIDE_SELL_TO_OPEN, POSITION_SHORT))
	assert.False(t, isOpeningPair(SIDE_BUY, POSITION_SHORT))
	assert.False(t, isOpeningPair(SIDE_SELL, POSITION_LONG))

	assert.True(t, isClosingPair(SIDE_SELL, POSITION_LONG))
	assert.True(t, isClosingPair(SIDE_BUY, POSITION_SHORT))
	assert.True(t, isClosingPair(SIDE_SELL_TO_CLOSE, POSITION_LONG))
	assert.True(t, isClosingPair(SIDE_BUY_TO_CLOSE, POSITION_SHORT))
	assert.False(t, isClosingPair(SIDE_SELL, POSITION_SHORT))
	assert.False(t, isClosingPair(SIDE_BUY_TO_CLOSE, POSITION_LONG))
}

func TestProcessSignalSkipsWhenAlreadyQueued(t *testing.T) {
	m := newOrderMocks()
	m.queueRepo.On("FindOne", "TestTrader", "SPY", "EMA_CROSS", "acc-1").
		Return(&models.QueuedOrder{Symbol: "SPY"}, nil)

	u := m.useCase(false)

	assert.NoError(t, u.processSignal(buySignal()))

	m.strategiesRepo.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
	m.broker.AssertNotCalled(t, "PlaceOrder", mock.Anything)
}

func TestProcessSignalForbiddenSymbol(t *testing.T) {
	m := newOrderMocks()
	m.queueRepo.On("FindOne", "TestTrader", "SPY", "EMA_CROSS", "acc-1").Return(nil, nil)
	m.strategiesRepo.On("FindOne", "EMA_CROSS", "acc-1").Return(activeStrategy(ORDER_TYPE_STANDARD), nil)
	m.openRepo.On("FindOne", "TestTrader", "SPY", "EMA_CROSS", "acc-1").Return(nil, nil)
	m.forbiddenRepo.On("Exists", "SPY", "acc-1").Return(true, nil)

	u := m.useCase(false)

	assert.NoError(t, u.processSignal(buySignal()))

	m.broker.AssertNotCalled(t, "GetQuote", mock.Anything)
	m.queueRepo.AssertNotCalled(t, "Upsert", mock.Anything)
}

func TestProcessSignalAutoCreatesStrategy(t *testing.T) {
	m := newOrderMocks()
	m.queueRepo.On("FindOne", "TestTrader", "SPY", "EMA_CROSS", "acc-1").Return(nil, nil)

	m.strategiesRepo.On("FindOne", "EMA_CROSS", "acc-1").Return(nil, nil).Once()
	m.strategiesRepo.On("InsertIfAbsent", mock.MatchedBy(func(cfg *models.StrategyConfig) bool {
		return cfg.Strategy == "EMA_CROSS" &&
			cfg.Active &&
			cfg.OrderType == ORDER_TYPE_STANDARD &&
			cfg.PositionSize == defaultPositionSize &&
			cfg.PositionType == POSITION_LONG
	})).Return(nil)
	m.strategiesRepo.On("FindOne", "EMA_CROSS", "acc-1").Return(activeStrategy(ORDER_TYPE_STANDARD), nil)

	m.openRepo.On("FindOne", "TestTrader", "SPY", "EMA_CROSS", "acc-1").Return(nil, nil)
	m.forbiddenRepo.On("Exists", "SPY", "acc-1").Return(false, nil)

	m.broker.On("CheckTokenValidity").Return(true)
	m.broker.On("GetQuote", "SPY").Return(&structs.Quote{BidPrice: 99.5, AskPrice: 100.0}, nil)

	m.queueRepo.On("Upsert", mock.AnythingOfType("*models.QueuedOrder")).Return(nil)

	u := m.useCase(false)

	assert.NoError(t, u.processSignal(buySignal()))

	m.strategiesRepo.AssertExpectations(t)
	m.queueRepo.AssertExpectations(t)
}

func TestSendOrderPaperGetsNegativeOrderID(t *testing.T) {
	m := newOrderMocks()
	m.broker.On("CheckTokenValidity").Return(true)
	m.broker.On("GetQuote", "SPY").Return(&structs.Quote{BidPrice: 99.5, AskPrice: 100.0}, nil)

	var stored *models.QueuedOrder
	m.queueRepo.On("Upsert", mock.AnythingOfType("*models.QueuedOrder")).
		Run(func(args mock.Arguments) {
			stored = args.Get(0).(*models.QueuedOrder)
		}).
		Return(nil)

	u := m.useCase(false)

	assert.NoError(t, u.sendOrder(buySignal(), activeStrategy(ORDER_TYPE_STANDARD), DIRECTION_OPEN, nil))

	assert.NotNil(t, stored)
	assert.Less(t, stored.OrderID, int64(0))
	assert.Equal(t, MODE_PAPER, stored.AccountMode)
	assert.Equal(t, STATUS_QUEUED, stored.OrderStatus)

	m.broker.AssertNotCalled(t, "PlaceOrder", mock.Anything)
}

func TestSendOrderLiveRejected(t *testing.T) {
	m := newOrderMocks()
	m.broker.On("CheckTokenValidity").Return(true)
	m.broker.On("GetQuote", "SPY").Return(&structs.Quote{BidPrice: 99.5, AskPrice: 100.0}, nil)
	m.broker.On("PlaceOrder", mock.AnythingOfType("*structs.BrokerOrder")).
		Return(int64(0), &controllers.OrderRejectedError{Message: "insufficient buying power"})

	m.rejectedRepo.On("Insert", mock.MatchedBy(func(r *models.AuditRecord) bool {
		return r.Symbol == "SPY" && r.OrderStatus == STATUS_REJECTED
	})).Return(nil)

	u := m.useCase(true)

	assert.NoError(t, u.sendOrder(buySignal(), activeStrategy(ORDER_TYPE_STANDARD), DIRECTION_OPEN, nil))

	m.rejectedRepo.AssertExpectations(t)
	m.queueRepo.AssertNotCalled(t, "Upsert", mock.Anything)
}

func TestSendOrderLiveSubmitted(t *testing.T) {
	m := newOrderMocks()
	m.broker.On("CheckTokenValidity").Return(true)
	m.broker.On("GetQuote", "SPY").Return(&structs.Quote{BidPrice: 99.5, AskPrice: 100.0}, nil)
	m.broker.On("PlaceOrder", mock.AnythingOfType("*structs.BrokerOrder")).Return(int64(987654321), nil)

	var stored *models.QueuedOrder
	m.queueRepo.On("Upsert", mock.AnythingOfType("*models.QueuedOrder")).
		Run(func(args mock.Arguments) {
			stored = args.Get(0).(*models.QueuedOrder)
		}).
		Return(nil)

	u := m.useCase(true)

	assert.NoError(t, u.sendOrder(buySignal(), activeStrategy(ORDER_TYPE_STANDARD), DIRECTION_OPEN, nil))

	assert.NotNil(t, stored)
	assert.Equal(t, int64(987654321), stored.OrderID)
	assert.Equal(t, MODE_LIVE, stored.AccountMode)
}

func queuedOpen() models.QueuedOrder {
	return models.QueuedOrder{
		Trader:       "TestTrader",
		AccountID:    "acc-1",
		Symbol:       "SPY",
		Strategy:     "EMA_CROSS",
		Side:         SIDE_BUY,
		AssetType:    ASSET_EQUITY,
		OrderID:      987654321,
		OrderType:    ORDER_TYPE_STANDARD,
		OrderStatus:  STATUS_QUEUED,
		Direction:    DIRECTION_OPEN,
		AccountMode:  MODE_LIVE,
		Qty:          10,
		PositionSize: 1000,
		PositionType: POSITION_LONG,
		EntryPrice:   100.0,
		EntryDate:    time.Now(),
		Date:         time.Now(),
	}
}

func TestUpdateStatusFilledOpen(t *testing.T) {
	m := newOrderMocks()
	m.broker.On("CheckTokenValidity").Return(true)

	queued := queuedOpen()
	m.queueRepo.On("Find", "TestTrader", "acc-1").Return([]models.QueuedOrder{queued}, nil)

	m.broker.On("GetOrder", int64(987654321)).Return(&structs.BrokerOrder{
		OrderID:  987654321,
		Status:   STATUS_FILLED,
		Quantity: 10,
		OrderActivityCollection: []structs.OrderActivity{
			{ExecutionLegs: []structs.ExecutionLeg{{Price: 100.25, Quantity: 10}}},
		},
	}, nil)

	var inserted *models.OpenPosition
	m.openRepo.On("Insert", mock.AnythingOfType("*models.OpenPosition")).
		Run(func(args mock.Arguments) {
			inserted = args.Get(0).(*models.OpenPosition)
		}).
		Return(nil)

	m.queueRepo.On("Delete", "TestTrader", "SPY", "EMA_CROSS", "acc-1").Return(int64(1), nil)
	m.tgm.On("Send", mock.AnythingOfType("string")).Return(nil)

	u := m.useCase(true)
	u.UpdateStatus()

	assert.NotNil(t, inserted)
	assert.Equal(t, 100.25, inserted.EntryPrice)
	assert.Equal(t, 10, inserted.Qty)
	assert.Equal(t, INTEGRITY_RELIABLE, inserted.DataIntegrity)

	m.queueRepo.AssertExpectations(t)
	m.tgm.AssertExpectations(t)
}

func TestUpdateStatusFilledClose(t *testing.T) {
	m := newOrderMocks()
	m.broker.On("CheckTokenValidity").Return(true)

	queued := queuedOpen()
	queued.Direction = DIRECTION_CLOSE
	queued.ExitPrice = 105.0
	queued.ExitDate = time.Now()
	m.queueRepo.On("Find", "TestTrader", "acc-1").Return([]models.QueuedOrder{queued}, nil)

	m.broker.On("GetOrder", int64(987654321)).Return(&structs.BrokerOrder{
		OrderID: 987654321,
		Status:  STATUS_FILLED,
	}, nil)

	open := &models.OpenPosition{
		Trader:     "TestTrader",
		AccountID:  "acc-1",
		Symbol:     "SPY",
		Strategy:   "EMA_CROSS",
		Qty:        10,
		EntryPrice: 95.0,
		EntryDate:  time.Now().Add(-48 * time.Hour),
	}
	m.openRepo.On("FindOne", "TestTrader", "SPY", "EMA_CROSS", "acc-1").Return(open, nil)

	var closed *models.ClosedPosition
	m.closedRepo.On("Insert", mock.AnythingOfType("*models.ClosedPosition")).
		Run(func(args mock.Arguments) {
			closed = args.Get(0).(*models.ClosedPosition)
		}).
		Return(nil)

	m.openRepo.On("Delete", "TestTrader", "SPY", "EMA_CROSS", "acc-1").Return(int64(1), nil)
	m.queueRepo.On("Delete", "TestTrader", "SPY", "EMA_CROSS", "acc-1").Return(int64(1), nil)
	m.tgm.On("Send", mock.AnythingOfType("string")).Return(nil)

	u := m.useCase(true)
	u.UpdateStatus()

	assert.NotNil(t, closed)
	// entry comes from the open position, not the queued snapshot
	assert.Equal(t, 95.0, closed.EntryPrice)
	// no execution detail, so the exit falls back to the queued exit price
	assert.Equal(t, 105.0, closed.ExitPrice)
	assert.Equal(t, 10, closed.Qty)

	m.openRepo.AssertExpectations(t)
	m.queueRepo.AssertExpectations(t)
}

func TestUpdateStatusOrphanLiveOrderAssumed(t *testing.T) {
	m := newOrderMocks()
	m.broker.On("CheckTokenValidity").Return(true)

	queued := queuedOpen()
	m.queueRepo.On("Find", "TestTrader", "acc-1").Return([]models.QueuedOrder{queued}, nil)
	m.broker.On("GetOrder", int64(987654321)).Return(nil, controllers.ErrNotFound)

	var inserted *models.OpenPosition
	m.openRepo.On("Insert", mock.AnythingOfType("*models.OpenPosition")).
		Run(func(args mock.Arguments) {
			inserted = args.Get(0).(*models.OpenPosition)
		}).
		Return(nil)

	m.queueRepo.On("Delete", "TestTrader", "SPY", "EMA_CROSS", "acc-1").Return(int64(1), nil)
	m.tgm.On("Send", mock.AnythingOfType("string")).Return(nil)

	u := m.useCase(true)
	u.UpdateStatus()

	assert.NotNil(t, inserted)
	assert.Equal(t, INTEGRITY_ASSUMED, inserted.DataIntegrity)
	// snapshot price, no broker confirmation exists
	assert.Equal(t, 100.0, inserted.EntryPrice)
}

func TestUpdateStatusWorkingOnlyUpdatesChangedStatus(t *testing.T) {
	m := newOrderMocks()
	m.broker.On("CheckTokenValidity").Return(true)

	queued := queuedOpen()
	m.queueRepo.On("Find", "TestTrader", "acc-1").Return([]models.QueuedOrder{queued}, nil)
	m.broker.On("GetOrder", int64(987654321)).Return(&structs.BrokerOrder{
		OrderID: 987654321,
		Status:  "WORKING",
	}, nil)

	m.queueRepo.On("SetStatus", "TestTrader", "SPY", "EMA_CROSS", "acc-1", "WORKING").Return(nil)

	u := m.useCase(true)
	u.UpdateStatus()

	m.queueRepo.AssertExpectations(t)
	m.openRepo.AssertNotCalled(t, "Insert", mock.Anything)
}

func TestUpdateStatusUnchangedStatusIsIdempotent(t *testing.T) {
	m := newOrderMocks()
	m.broker.On("CheckTokenValidity").Return(true)

	queued := queuedOpen()
	queued.OrderStatus = "WORKING"
	m.queueRepo.On("Find", "TestTrader", "acc-1").Return([]models.QueuedOrder{queued}, nil)
	m.broker.On("GetOrder", int64(987654321)).Return(&structs.BrokerOrder{
		OrderID: 987654321,
		Status:  "WORKING",
	}, nil)

	u := m.useCase(true)
	u.UpdateStatus()
	u.UpdateStatus()

	m.queueRepo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.queueRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.openRepo.AssertNotCalled(t, "Insert", mock.Anything)
	m.closedRepo.AssertNotCalled(t, "Insert", mock.Anything)
	m.rejectedRepo.AssertNotCalled(t, "Insert", mock.Anything)
	m.canceledRepo.AssertNotCalled(t, "Insert", mock.Anything)
}

func TestUpdateStatusSkipsOrdersWithoutID(t *testing.T) {
	m := newOrderMocks()
	m.broker.On("CheckTokenValidity").Return(true)

	queued := queuedOpen()
	queued.OrderID = 0
	m.queueRepo.On("Find", "TestTrader", "acc-1").Return([]models.QueuedOrder{queued}, nil)

	u := m.useCase(true)
	u.UpdateStatus()

	m.broker.AssertNotCalled(t, "GetOrder", mock.Anything)
	m.openRepo.AssertNotCalled(t, "Insert", mock.Anything)
	m.queueRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatusCanceled(t *testing.T) {
	m := newOrderMocks()
	m.broker.On("CheckTokenValidity").Return(true)

	queued := queuedOpen()
	m.queueRepo.On("Find", "TestTrader", "acc-1").Return([]models.QueuedOrder{queued}, nil)
	m.broker.On("GetOrder", int64(987654321)).Return(&structs.BrokerOrder{
		OrderID: 987654321,
		Status:  STATUS_CANCELED,
	}, nil)

	m.queueRepo.On("Delete", "TestTrader", "SPY", "EMA_CROSS", "acc-1").Return(int64(1), nil)
	m.canceledRepo.On("Insert", mock.MatchedBy(func(r *models.AuditRecord) bool {
		return r.Symbol == "SPY" && r.OrderStatus == STATUS_CANCELED
	})).Return(nil)

	u := m.useCase(true)
	u.UpdateStatus()

	m.canceledRepo.AssertExpectations(t)
	m.rejectedRepo.AssertNotCalled(t, "Insert", mock.Anything)
}

func TestExtractOCOChildren(t *testing.T) {
	spec := &structs.BrokerOrder{
		OrderID: 111,
		Status:  STATUS_FILLED,
		ChildOrderStrategies: []structs.BrokerOrder{
			{
				OrderStrategyType: structs.StrategyTypeOCO,
				ChildOrderStrategies: []structs.BrokerOrder{
					{
						OrderID:   222,
						Status:    "WORKING",
						OrderType: structs.OrderTypeLimit,
						Price:     110.0,
						OrderLegCollection: []structs.OrderLeg{
							{Instruction: SIDE_SELL},
						},
					},
					{
						OrderID:   333,
						Status:    "WORKING",
						OrderType: structs.OrderTypeStop,
						StopPrice: 90.0,
						OrderLegCollection: []structs.OrderLeg{
							{Instruction: SIDE_SELL},
						},
					},
				},
			},
		},
	}

	children := extractOCOChildren(spec)
	assert.Len(t, children, 2)

	takeProfit := children["222"]
	assert.Equal(t, EXIT_TAKE_PROFIT, takeProfit.ExitType)
	assert.Equal(t, 110.0, takeProfit.ExitPrice)
	assert.Equal(t, SIDE_SELL, takeProfit.Side)

	stopLoss := children["333"]
	assert.Equal(t, EXIT_STOP_LOSS, stopLoss.ExitType)
	assert.Equal(t, 90.0, stopLoss.ExitPrice)
}
