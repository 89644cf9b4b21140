package usecasees

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"tradebot/internal/controllers"
	"tradebot/internal/repository/mongo"
	"tradebot/internal/usecasees/structs"
	"tradebot/models"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	SIDE_BUY           = "BUY"
	SIDE_SELL          = "SELL"
	SIDE_BUY_TO_OPEN   = "BUY_TO_OPEN"
	SIDE_SELL_TO_OPEN  = "SELL_TO_OPEN"
	SIDE_BUY_TO_CLOSE  = "BUY_TO_CLOSE"
	SIDE_SELL_TO_CLOSE = "SELL_TO_CLOSE"

	ASSET_EQUITY = "EQUITY"
	ASSET_OPTION = "OPTION"

	DIRECTION_OPEN  = "OPEN POSITION"
	DIRECTION_CLOSE = "CLOSE POSITION"

	POSITION_LONG  = "LONG"
	POSITION_SHORT = "SHORT"

	ORDER_TYPE_STANDARD = "STANDARD"
	ORDER_TYPE_OCO      = "OCO"

	STATUS_QUEUED   = "QUEUED"
	STATUS_FILLED   = "FILLED"
	STATUS_CANCELED = "CANCELED"
	STATUS_REJECTED = "REJECTED"

	MODE_LIVE  = "Live"
	MODE_PAPER = "Paper"

	INTEGRITY_RELIABLE = "Reliable"
	INTEGRITY_ASSUMED  = "Assumed"

	EXIT_STOP_LOSS   = "STOP LOSS"
	EXIT_TAKE_PROFIT = "TAKE PROFIT"

	defaultPositionSize = 500
)

// orderUseCase drives the order lifecycle for one account: decide, submit,
// queue, poll, resolve. It holds no durable state of its own; every decision
// re-reads the store, so a restart is always safe.
type orderUseCase struct {
	broker  controllers.BrokerCtrl
	tgm     controllers.TgmCtrl
	builder *OrderBuilder

	queueRepo      mongo.QueueRepo
	openRepo       mongo.OpenPositionsRepo
	closedRepo     mongo.ClosedPositionsRepo
	rejectedRepo   mongo.AuditRepo
	canceledRepo   mongo.AuditRepo
	strategiesRepo mongo.StrategiesRepo
	forbiddenRepo  mongo.ForbiddenRepo
	usersRepo      mongo.UsersRepo

	trader     string
	accountID  string
	liveTrader bool
	sessionID  string

	metrics map[structs.MetricConst]prometheus.Counter

	// symbols already alerted on for a missing order id, reset once the id
	// shows up
	noIDs []string

	rnd *rand.Rand

	logger *logrus.Logger
}

func NewOrderUseCase(
	broker controllers.BrokerCtrl,
	tgm controllers.TgmCtrl,
	builder *OrderBuilder,
	queueRepo mongo.QueueRepo,
	openRepo mongo.OpenPositionsRepo,
	closedRepo mongo.ClosedPositionsRepo,
	rejectedRepo mongo.AuditRepo,
	canceledRepo mongo.AuditRepo,
	strategiesRepo mongo.StrategiesRepo,
	forbiddenRepo mongo.ForbiddenRepo,
	usersRepo mongo.UsersRepo,
	trader string,
	accountID string,
	liveTrader bool,
	metrics map[structs.MetricConst]prometheus.Counter,
	logger *logrus.Logger,
) *orderUseCase {
	return &orderUseCase{
		broker:         broker,
		tgm:            tgm,
		builder:        builder,
		queueRepo:      queueRepo,
		openRepo:       openRepo,
		closedRepo:     closedRepo,
		rejectedRepo:   rejectedRepo,
		canceledRepo:   canceledRepo,
		strategiesRepo: strategiesRepo,
		forbiddenRepo:  forbiddenRepo,
		usersRepo:      usersRepo,
		trader:         trader,
		accountID:      accountID,
		liveTrader:     liveTrader,
		sessionID:      uuid.NewString(),
		metrics:        metrics,
		rnd:            rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:         logger,
	}
}

func isOpeningPair(side, positionType string) bool {
	switch {
	case side == SIDE_BUY && positionType == POSITION_LONG,
		side == SIDE_SELL && positionType == POSITION_SHORT,
		side == SIDE_SELL_TO_OPEN && positionType == POSITION_SHORT,
		side == SIDE_BUY_TO_OPEN && positionType == POSITION_LONG:
		return true
	}

	return false
}

func isClosingPair(side, positionType string) bool {
	switch {
	case side == SIDE_BUY && positionType == POSITION_SHORT,
		side == SIDE_SELL && positionType == POSITION_LONG,
		side == SIDE_SELL_TO_CLOSE && positionType == POSITION_LONG,
		side == SIDE_BUY_TO_CLOSE && positionType == POSITION_SHORT:
		return true
	}

	return false
}

// RunTrader polls queued orders, then decides each incoming signal. One call
// per cycle; all work is sequential, so no concurrent submission for the
// same key is possible.
func (u *orderUseCase) RunTrader(signals []models.TradeSignal) {
	if !u.broker.CheckTokenValidity() {
		u.logger.Error("token validity check failed in RunTrader, aborting trader run")
		return
	}

	u.UpdateStatus()

	for _, signal := range signals {
		if err := u.processSignal(signal); err != nil {
			u.logger.
				WithError(err).
				WithField("symbol", signal.Symbol).
				WithField("strategy", signal.Strategy).
				Error("process signal")
		}
	}
}

func (u *orderUseCase) processSignal(signal models.TradeSignal) error {
	queued, err := u.queueRepo.FindOne(u.trader, signal.Symbol, signal.Strategy, u.accountID)
	if err != nil {
		return err
	}

	// a queued order for this key means a submission is already in flight
	if queued != nil {
		return nil
	}

	cfg, err := u.strategiesRepo.FindOne(signal.Strategy, u.accountID)
	if err != nil {
		return err
	}

	if cfg == nil {
		if err := u.addNewStrategy(signal.Strategy, signal.AssetType); err != nil {
			return err
		}

		if cfg, err = u.strategiesRepo.FindOne(signal.Strategy, u.accountID); err != nil {
			return err
		}
		if cfg == nil {
			return fmt.Errorf("strategy %s missing after insert", signal.Strategy)
		}
	}

	open, err := u.openRepo.FindOne(u.trader, signal.Symbol, signal.Strategy, u.accountID)
	if err != nil {
		return err
	}

	var direction string

	if open != nil {
		if !isClosingPair(signal.Side, cfg.PositionType) {
			return nil
		}
		direction = DIRECTION_CLOSE
	} else {
		forbidden, err := u.forbiddenRepo.Exists(signal.Symbol, u.accountID)
		if err != nil {
			return err
		}
		if forbidden {
			return nil
		}

		if !isOpeningPair(signal.Side, cfg.PositionType) {
			return nil
		}
		direction = DIRECTION_OPEN
	}

	return u.sendOrder(signal, cfg, direction, open)
}

func (u *orderUseCase) sendOrder(
	signal models.TradeSignal,
	cfg *models.StrategyConfig,
	direction string,
	open *models.OpenPosition,
) error {
	if !u.broker.CheckTokenValidity() {
		u.logger.Error("token validity check failed in sendOrder, aborting order placement")
		return nil
	}

	var (
		order  *structs.BrokerOrder
		queued *models.QueuedOrder
		err    error
	)

	switch cfg.OrderType {
	case ORDER_TYPE_STANDARD:
		order, queued, err = u.builder.Standard(signal, cfg, direction, open)
	case ORDER_TYPE_OCO:
		order, queued, err = u.builder.OCO(signal, cfg, direction, open)
	default:
		return fmt.Errorf("unknown order type %s", cfg.OrderType)
	}

	if errors.Is(err, ErrOrderSkipped) {
		return nil
	}
	if err != nil {
		return err
	}

	if u.liveTrader {
		orderID, err := u.broker.PlaceOrder(order)

		var rejected *controllers.OrderRejectedError
		if errors.As(err, &rejected) {
			u.incMetric(structs.MetricOrderRejected)
			u.logger.Infof("%s rejected for %s - reason: %s", signal.Symbol, u.trader, rejected.Message)

			if err := u.rejectedRepo.Insert(&models.AuditRecord{
				Symbol:      signal.Symbol,
				OrderType:   signal.Side,
				OrderStatus: STATUS_REJECTED,
				Strategy:    signal.Strategy,
				Trader:      u.trader,
				AccountID:   u.accountID,
				Date:        time.Now(),
			}); err != nil {
				u.logger.WithError(err).Error("insert rejected audit record")
			}

			return nil
		}
		if err != nil {
			return err
		}

		queued.OrderID = orderID
		queued.AccountMode = MODE_LIVE
	} else {
		queued.OrderID = u.paperOrderID()
		queued.AccountMode = MODE_PAPER
	}

	queued.OrderStatus = STATUS_QUEUED

	if err := u.queueOrder(queued); err != nil {
		return err
	}

	u.incMetric(structs.MetricOrderPlaced)
	u.logger.Infof("%s trade: %s order for symbol %s", queued.AccountMode, signal.Side, signal.Symbol)

	return nil
}

// paperOrderID synthesizes a strictly negative order id so paper trades can
// never collide with real broker ids, which are always positive.
func (u *orderUseCase) paperOrderID() int64 {
	return -1 * (u.rnd.Int63n(900_000_000) + 100_000_000)
}

func (u *orderUseCase) queueOrder(order *models.QueuedOrder) error {
	return u.queueRepo.Upsert(order)
}

// UpdateStatus polls the broker for every queued order of the account that
// carries an order id and advances each one through the lifecycle.
func (u *orderUseCase) UpdateStatus() {
	if !u.broker.CheckTokenValidity() {
		u.logger.Error("token validity check failed in UpdateStatus, aborting status update")
		return
	}

	queuedOrders, err := u.queueRepo.Find(u.trader, u.accountID)
	if err != nil {
		u.logger.WithError(err).Error("read queue")
		return
	}

	for i := range queuedOrders {
		queueOrder := queuedOrders[i]

		// no order id yet; killQueueOrder owns alerting on these
		if queueOrder.OrderID == 0 {
			continue
		}

		spec, err := u.broker.GetOrder(queueOrder.OrderID)

		if errors.Is(err, controllers.ErrNotFound) {
			// Live: assume the order was filled or removed outside our
			// view; the resolved position carries a lowered integrity
			// marker since the fill price is the queued snapshot, not a
			// broker confirmation. Paper orders never reach the broker, so
			// the snapshot is the truth.
			integrity := INTEGRITY_ASSUMED
			if !u.liveTrader {
				integrity = INTEGRITY_RELIABLE
			}

			u.logger.Warnf("order id %d not found, moving %s %s order to %s",
				queueOrder.OrderID, queueOrder.Symbol, queueOrder.OrderType, queueOrder.Direction)

			u.pushOrder(&queueOrder, nil, integrity)
			continue
		}
		if err != nil {
			u.logger.
				WithError(err).
				WithField("order_id", queueOrder.OrderID).
				Error("get order status")
			continue
		}

		if spec.OrderID != queueOrder.OrderID {
			continue
		}

		switch spec.Status {
		case STATUS_FILLED:
			if queueOrder.OrderType == ORDER_TYPE_OCO {
				queueOrder.ChildOrders = extractOCOChildren(spec)
			}
			u.pushOrder(&queueOrder, spec, INTEGRITY_RELIABLE)

		case STATUS_CANCELED, STATUS_REJECTED:
			if _, err := u.queueRepo.Delete(queueOrder.Trader, queueOrder.Symbol, queueOrder.Strategy, queueOrder.AccountID); err != nil {
				u.logger.WithError(err).Error("delete queued order")
			}

			u.auditTerminal(queueOrder.Symbol, queueOrder.OrderType, queueOrder.Strategy, spec.Status)
			u.logger.Infof("%s order for %s", spec.Status, queueOrder.Symbol)

		default:
			if queueOrder.OrderStatus != spec.Status {
				if err := u.queueRepo.SetStatus(queueOrder.Trader, queueOrder.Symbol, queueOrder.Strategy, queueOrder.AccountID, spec.Status); err != nil {
					u.logger.WithError(err).Error("update queued order status")
				}
			}
		}
	}
}

func (u *orderUseCase) auditTerminal(symbol, orderType, strategy, status string) {
	record := &models.AuditRecord{
		Symbol:      symbol,
		OrderType:   orderType,
		OrderStatus: status,
		Strategy:    strategy,
		Trader:      u.trader,
		AccountID:   u.accountID,
		Date:        time.Now(),
	}

	repo := u.canceledRepo
	metric := structs.MetricOrderCanceled
	if status == STATUS_REJECTED {
		repo = u.rejectedRepo
		metric = structs.MetricOrderRejected
	}

	u.incMetric(metric)

	if err := repo.Insert(record); err != nil {
		u.logger.WithError(err).Errorf("insert %s audit record", status)
	}
}

// resolveFill prefers the broker's reported execution leg; the queued
// snapshot covers the orphan and paper cases where no execution detail
// exists.
func resolveFill(queued *models.QueuedOrder, spec *structs.BrokerOrder) (float64, int) {
	if spec != nil && len(spec.OrderActivityCollection) > 0 && len(spec.OrderActivityCollection[0].ExecutionLegs) > 0 {
		price := spec.OrderActivityCollection[0].ExecutionLegs[0].Price

		shares := int(spec.Quantity)
		if shares == 0 {
			shares = queued.Qty
		}

		return roundPrice(price), shares
	}

	price := queued.EntryPrice
	if queued.Direction == DIRECTION_CLOSE {
		price = queued.ExitPrice
	}

	return roundPrice(price), queued.Qty
}

// pushOrder resolves a filled order into an open or closed position record.
// The queue entry is removed and the notification sent unconditionally; a
// raced store write never blocks the cleanup.
func (u *orderUseCase) pushOrder(queued *models.QueuedOrder, spec *structs.BrokerOrder, integrity string) {
	price, shares := resolveFill(queued, spec)
	now := time.Now()

	var message string

	switch queued.Direction {
	case DIRECTION_OPEN:
		position := &models.OpenPosition{
			Trader:        queued.Trader,
			AccountID:     queued.AccountID,
			Symbol:        queued.Symbol,
			Strategy:      queued.Strategy,
			Side:          queued.Side,
			AssetType:     queued.AssetType,
			OrderType:     queued.OrderType,
			AccountMode:   queued.AccountMode,
			DataIntegrity: integrity,
			Qty:           shares,
			PositionSize:  queued.PositionSize,
			PositionType:  queued.PositionType,
			EntryPrice:    price,
			EntryDate:     now,
			PreSymbol:     queued.PreSymbol,
			ExpDate:       queued.ExpDate,
			OptionType:    queued.OptionType,
			ChildOrders:   queued.ChildOrders,
		}

		u.insertWithRetry(func() error { return u.openRepo.Insert(position) }, queued.Symbol)

		message = fmt.Sprintf(
			">>>>\nSide: %s\nSymbol: %s\nQty: %d\nPrice: $%v\nStrategy: %s\nAsset Type: %s\nDate: %s\nTrader: %s\nAccount Mode: %s",
			queued.Side, queued.Symbol, shares, price, queued.Strategy, queued.AssetType,
			now.Format(time.RFC822), queued.Trader, queued.AccountMode,
		)

	case DIRECTION_CLOSE:
		position, err := u.openRepo.FindOne(queued.Trader, queued.Symbol, queued.Strategy, queued.AccountID)
		if err != nil {
			u.logger.WithError(err).Errorf("read open position for %s", queued.Symbol)
		}

		qty := queued.Qty
		entryPrice := queued.EntryPrice
		entryDate := queued.EntryDate
		if position != nil {
			qty = position.Qty
			entryPrice = position.EntryPrice
			entryDate = position.EntryDate
		}

		closed := &models.ClosedPosition{
			Trader:        queued.Trader,
			AccountID:     queued.AccountID,
			Symbol:        queued.Symbol,
			Strategy:      queued.Strategy,
			Side:          queued.Side,
			AssetType:     queued.AssetType,
			OrderType:     queued.OrderType,
			AccountMode:   queued.AccountMode,
			DataIntegrity: integrity,
			Qty:           qty,
			PositionSize:  queued.PositionSize,
			PositionType:  queued.PositionType,
			EntryPrice:    entryPrice,
			EntryDate:     entryDate,
			ExitPrice:     price,
			ExitDate:      now,
			PreSymbol:     queued.PreSymbol,
			ExpDate:       queued.ExpDate,
			OptionType:    queued.OptionType,
		}

		u.insertWithRetry(func() error { return u.closedRepo.Insert(closed) }, queued.Symbol)

		removed, err := u.openRepo.Delete(queued.Trader, queued.Symbol, queued.Strategy, queued.AccountID)
		if err != nil {
			u.logger.WithError(err).Errorf("delete open position for %s", queued.Symbol)
		}
		if err == nil && removed == 0 {
			// a concurrent reconciliation pass may have raced the delete;
			// retry once so a duplicate open position cannot linger
			u.logger.Errorf("initial fail of deleting open position for symbol %s - %s", queued.Symbol, u.trader)

			if _, err := u.openRepo.Delete(queued.Trader, queued.Symbol, queued.Strategy, queued.AccountID); err != nil {
				u.logger.WithError(err).Errorf("retry delete open position for %s", queued.Symbol)
			}
		}

		message = fmt.Sprintf(
			"____\nSide: %s\nSymbol: %s\nQty: %d\nEntry Price: $%v\nEntry Date: %s\nExit Price: $%v\nExit Date: %s\nStrategy: %s\nAsset Type: %s\nTrader: %s\nAccount Mode: %s",
			queued.Side, queued.Symbol, qty, entryPrice, entryDate.Format(time.RFC822),
			price, now.Format(time.RFC822), queued.Strategy, queued.AssetType, queued.Trader, queued.AccountMode,
		)
	}

	u.incMetric(structs.MetricOrderFilled)

	target := "open"
	if queued.Direction == DIRECTION_CLOSE {
		target = "closed"
	}
	u.logger.Infof("pushing %s order for %s to %s positions", queued.Side, queued.Symbol, target)

	if _, err := u.queueRepo.Delete(queued.Trader, queued.Symbol, queued.Strategy, queued.AccountID); err != nil {
		u.logger.WithError(err).Errorf("delete queued order for %s", queued.Symbol)
	}

	if err := u.tgm.Send(message); err != nil {
		u.logger.WithError(err).Error("send fill notification")
	}
}

func (u *orderUseCase) insertWithRetry(insert func() error, symbol string) {
	if err := insert(); err != nil {
		u.logger.WithError(err).Errorf("initial fail of inserting position for symbol %s", symbol)

		if err := insert(); err != nil {
			u.logger.WithError(err).Errorf("retry fail of inserting position for symbol %s", symbol)
		}
	}
}

// extractOCOChildren pulls the bracket's child order ids and fill-relevant
// metadata out of the broker's nested child structure. This map is the only
// way to later tell which bracket leg actually executed.
func extractOCOChildren(spec *structs.BrokerOrder) map[string]models.ChildOrder {
	children := map[string]models.ChildOrder{}

	if len(spec.ChildOrderStrategies) == 0 {
		return children
	}

	for _, child := range spec.ChildOrderStrategies[0].ChildOrderStrategies {
		exitPrice := child.Price
		exitType := EXIT_TAKE_PROFIT
		if child.StopPrice > 0 {
			exitPrice = child.StopPrice
			exitType = EXIT_STOP_LOSS
		}

		var side string
		if len(child.OrderLegCollection) > 0 {
			side = child.OrderLegCollection[0].Instruction
		}

		children[strconv.FormatInt(child.OrderID, 10)] = models.ChildOrder{
			Side:        side,
			ExitPrice:   exitPrice,
			ExitType:    exitType,
			OrderStatus: child.Status,
		}
	}

	return children
}

func (u *orderUseCase) addNewStrategy(strategy, assetType string) error {
	return u.strategiesRepo.InsertIfAbsent(&models.StrategyConfig{
		Strategy:     strategy,
		AccountID:    u.accountID,
		Active:       true,
		OrderType:    ORDER_TYPE_STANDARD,
		AssetType:    assetType,
		PositionSize: defaultPositionSize,
		PositionType: POSITION_LONG,
	})
}

func (u *orderUseCase) incMetric(metric structs.MetricConst) {
	if u.metrics == nil {
		return
	}

	if counter, ok := u.metrics[metric]; ok {
		counter.Inc()
	}
}
