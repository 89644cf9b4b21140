package usecasees

import (
	"math"
	"strconv"
	"time"

	"tradebot/internal/repository/postgres"
	"tradebot/models"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Dynamic position size: every strategy's budget tracks 10% of the account
// liquidation value. The balance recompute task is the only writer.
const positionSizePercent = 10

const signalBuffer = 256

// tasksUseCase drives one account's polling loop: drain webhook signals, run
// the trader, reconcile brackets, recompute balance, reap stale queue
// entries. Daily jobs run on a cron in Eastern time.
type tasksUseCase struct {
	order       *orderUseCase
	historyRepo postgres.HistoryRepo

	cron    *cron.Cron
	signals chan models.TradeSignal
	quit    chan struct{}

	loc *time.Location

	logger *logrus.Logger
}

func NewTasksUseCase(
	order *orderUseCase,
	historyRepo postgres.HistoryRepo,
	logger *logrus.Logger,
) (*tasksUseCase, error) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return nil, err
	}

	return &tasksUseCase{
		order:       order,
		historyRepo: historyRepo,
		cron:        cron.New(cron.WithLocation(loc)),
		signals:     make(chan models.TradeSignal, signalBuffer),
		quit:        make(chan struct{}),
		loc:         loc,
		logger:      logger,
	}, nil
}

// Submit hands webhook signals to the polling loop. Signals cross into the
// loop through the channel so all decisions stay on one goroutine.
func (u *tasksUseCase) Submit(signals []models.TradeSignal) {
	for _, signal := range signals {
		select {
		case u.signals <- signal:
		default:
			u.logger.
				WithField("symbol", signal.Symbol).
				Error("signal buffer full, dropping signal")
		}
	}
}

func (u *tasksUseCase) Run() error {
	if _, err := u.cron.AddFunc("55 23 * * *", u.endOfDay); err != nil {
		return err
	}

	if _, err := u.cron.AddFunc("30 9 * * 1-5", u.sellOptionsAtExpiration); err != nil {
		return err
	}

	u.cron.Start()

	u.logger.Infof("starting tasks for %s (%s)", u.order.trader, u.order.accountID)

	go u.loop()

	return nil
}

func (u *tasksUseCase) Stop() {
	close(u.quit)
	u.cron.Stop()
}

func (u *tasksUseCase) loop() {
	timer := time.NewTimer(selectSleep(time.Now().In(u.loc)))
	defer timer.Stop()

	for {
		select {
		case <-u.quit:
			u.logger.Warnf("tasks stopped for account %s", u.order.accountID)
			return
		case <-timer.C:
			u.cycle()
			timer.Reset(selectSleep(time.Now().In(u.loc)))
		}
	}
}

func (u *tasksUseCase) cycle() {
	u.order.RunTrader(u.drainSignals())
	u.checkOCOTriggers()
	u.checkOCOPaperTriggers()
	u.updateAccountBalance()
	u.killQueueOrder()
}

func (u *tasksUseCase) drainSignals() []models.TradeSignal {
	var out []models.TradeSignal

	for {
		select {
		case signal := <-u.signals:
			out = append(out, signal)
		default:
			return out
		}
	}
}

// selectSleep picks the polling interval: 5s during pre-market and market
// hours (04:00-20:00 Eastern, weekdays), 60s otherwise.
func selectSleep(now time.Time) time.Duration {
	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		return 60 * time.Second
	}

	tm := now.Format("15:04")
	if tm < "04:00" || tm >= "20:00" {
		return 60 * time.Second
	}

	return 5 * time.Second
}

// checkOCOTriggers reconciles bracket legs. A bracket's children exist only
// after the parent resolved to a position, so this runs at the position
// level rather than the queue level.
func (u *tasksUseCase) checkOCOTriggers() {
	if !u.order.broker.CheckTokenValidity() {
		u.logger.Error("token validity check failed in checkOCOTriggers")
		return
	}

	positions, err := u.order.openRepo.FindByOrderType(u.order.trader, u.order.accountID, ORDER_TYPE_OCO)
	if err != nil {
		u.logger.WithError(err).Error("read OCO open positions")
		return
	}

	for i := range positions {
		position := positions[i]

		for childID, child := range position.ChildOrders {
			orderID, err := strconv.ParseInt(childID, 10, 64)
			if err != nil {
				u.logger.WithError(err).Errorf("bad child order id %q for %s", childID, position.Symbol)
				continue
			}

			spec, err := u.order.broker.GetOrder(orderID)
			if err != nil {
				u.logger.
					WithError(err).
					WithField("order_id", orderID).
					Error("get child order status")
				continue
			}

			switch spec.Status {
			case STATUS_FILLED:
				u.order.pushOrder(u.closeFromPosition(&position, child.Side, child.ExitPrice, orderID), spec, INTEGRITY_RELIABLE)

			case STATUS_CANCELED, STATUS_REJECTED:
				u.order.auditTerminal(position.Symbol, position.OrderType, position.Strategy, spec.Status)
				u.logger.Infof("%s order for %s - trader: %s", spec.Status, position.Symbol, u.order.trader)

			default:
				if child.OrderStatus != spec.Status {
					if err := u.order.openRepo.SetChildStatus(position.Trader, position.Symbol, position.Strategy, position.AccountID, childID, spec.Status); err != nil {
						u.logger.WithError(err).Errorf("update child order status for %s", position.Symbol)
					}
				}
			}
		}
	}
}

// checkOCOPaperTriggers simulates bracket legs for paper accounts, whose
// children never reach the broker: when the live quote crosses the stop or
// target, close the position through the normal resolve path.
func (u *tasksUseCase) checkOCOPaperTriggers() {
	if u.order.liveTrader {
		return
	}

	if !u.order.broker.CheckTokenValidity() {
		u.logger.Error("token validity check failed in checkOCOPaperTriggers")
		return
	}

	positions, err := u.order.openRepo.FindByOrderType(u.order.trader, u.order.accountID, ORDER_TYPE_OCO)
	if err != nil {
		u.logger.WithError(err).Error("read OCO open positions")
		return
	}

	for i := range positions {
		position := positions[i]

		symbol := position.Symbol
		if position.AssetType == ASSET_OPTION {
			symbol = position.PreSymbol
		}

		quote, err := u.order.broker.GetQuote(symbol)
		if err != nil {
			u.logger.WithError(err).Errorf("quote %s", symbol)
			continue
		}

		price := quote.AskPrice

		stop := position.EntryPrice * u.order.builder.stopLossPct
		target := position.EntryPrice * u.order.builder.takeProfitPct

		if price > stop && price < target {
			continue
		}

		queued := u.closeFromPosition(&position, inverseInstruction(position.Side), roundPrice(price), 0)
		u.order.pushOrder(queued, nil, INTEGRITY_RELIABLE)
	}
}

// closeFromPosition builds the synthetic queue record pushOrder needs when a
// fill is discovered at the position level (bracket legs, paper triggers).
func (u *tasksUseCase) closeFromPosition(position *models.OpenPosition, side string, exitPrice float64, orderID int64) *models.QueuedOrder {
	return &models.QueuedOrder{
		Trader:       position.Trader,
		AccountID:    position.AccountID,
		Symbol:       position.Symbol,
		Strategy:     position.Strategy,
		Side:         side,
		AssetType:    position.AssetType,
		OrderID:      orderID,
		OrderType:    position.OrderType,
		Direction:    DIRECTION_CLOSE,
		AccountMode:  position.AccountMode,
		Qty:          position.Qty,
		PositionSize: position.PositionSize,
		PositionType: position.PositionType,
		EntryPrice:   position.EntryPrice,
		EntryDate:    position.EntryDate,
		ExitPrice:    exitPrice,
		ExitDate:     time.Now(),
		PreSymbol:    position.PreSymbol,
		ExpDate:      position.ExpDate,
		OptionType:   position.OptionType,
		Date:         time.Now(),
	}
}

// updateAccountBalance refreshes the liquidation value from the broker and
// recomputes every strategy's dynamic position size.
func (u *tasksUseCase) updateAccountBalance() {
	if !u.order.broker.CheckTokenValidity() {
		u.logger.Error("token validity check failed in updateAccountBalance")
		return
	}

	summary, err := u.order.broker.GetAccount()
	if err != nil {
		u.logger.WithError(err).Error("get account summary")
		return
	}

	liquidationValue := summary.SecuritiesAccount.InitialBalances.CashAvailableForTrading

	if err := u.order.usersRepo.SetLiquidationValue(u.order.trader, u.order.accountID, liquidationValue); err != nil {
		u.logger.WithError(err).Error("store liquidation value")
	}

	dynamicSize := math.Floor(liquidationValue * positionSizePercent / 100)

	modified, err := u.order.strategiesRepo.UpdatePositionSizeAll(u.order.accountID, dynamicSize)
	if err != nil {
		u.logger.WithError(err).Error("update strategy position sizes")
		return
	}

	u.logger.Infof("updated %d strategies with a dynamic position size of $%.0f", modified, dynamicSize)
}

// killQueueOrder cancels working BUY orders older than two hours, and alerts
// once per symbol when an order sits ten minutes without an order id.
func (u *tasksUseCase) killQueueOrder() {
	queueOrders, err := u.order.queueRepo.Find(u.order.trader, u.order.accountID)
	if err != nil {
		u.logger.WithError(err).Error("read queue")
		return
	}

	now := time.Now().In(u.loc)
	twoHoursAgo := now.Add(-2 * time.Hour)
	tenMinutesAgo := now.Add(-10 * time.Minute)

	for i := range queueOrders {
		order := queueOrders[i]

		terminal := order.OrderStatus == STATUS_REJECTED ||
			order.OrderStatus == STATUS_CANCELED ||
			order.OrderStatus == STATUS_FILLED

		if order.Date.Before(twoHoursAgo) &&
			(order.Side == SIDE_BUY || order.Side == SIDE_BUY_TO_OPEN) &&
			order.OrderID != 0 && !terminal {

			if !u.order.broker.CheckTokenValidity() {
				u.logger.Error("token validity check failed in killQueueOrder")
				return
			}

			if err := u.order.broker.CancelOrder(order.OrderID); err != nil {
				u.logger.WithError(err).Errorf("cancel stale order %d", order.OrderID)
				continue
			}

			u.order.auditTerminal(order.Symbol, order.OrderType, order.Strategy, STATUS_CANCELED)

			if _, err := u.order.queueRepo.Delete(order.Trader, order.Symbol, order.Strategy, order.AccountID); err != nil {
				u.logger.WithError(err).Errorf("delete stale queued order for %s", order.Symbol)
			}

			u.logger.Infof("canceled stale order for %s - trader: %s", order.Symbol, u.order.trader)
		}

		if order.Date.Before(tenMinutesAgo) && order.OrderID == 0 {
			if !containsString(u.order.noIDs, order.Symbol) {
				u.logger.Errorf("order id for %s not found - trader: %s", order.Symbol, u.order.trader)
				u.order.noIDs = append(u.order.noIDs, order.Symbol)
			}
		} else {
			u.order.noIDs = removeString(u.order.noIDs, order.Symbol)
		}
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}

func removeString(list []string, s string) []string {
	for i, v := range list {
		if v == s {
			return append(list[:i], list[i+1:]...)
		}
	}

	return list
}

func (u *tasksUseCase) endOfDay() {
	u.balanceHistory()
	u.profitLossHistory()
}

// balanceHistory writes one balance snapshot per day.
func (u *tasksUseCase) balanceHistory() {
	date := time.Now().In(u.loc).Format("2006-01-02")

	account, err := u.order.usersRepo.FindOne(u.order.trader, u.order.accountID)
	if err != nil {
		u.logger.WithError(err).Error("read account")
		return
	}
	if account == nil {
		u.logger.Errorf("no account record for %s (%s)", u.order.trader, u.order.accountID)
		return
	}

	found, err := u.historyRepo.HasBalanceFor(u.order.trader, u.order.accountID, date)
	if err != nil {
		u.logger.WithError(err).Error("check balance history")
		return
	}
	if found {
		return
	}

	if err := u.historyRepo.StoreBalance(&models.BalanceSnapshot{
		SessionID: u.order.sessionID,
		Trader:    u.order.trader,
		AccountID: u.order.accountID,
		Date:      date,
		Balance:   account.LiquidationValue,
	}); err != nil {
		u.logger.WithError(err).Error("store balance history")
	}
}

// profitLossHistory writes one realized P&L snapshot per day, summed over
// the positions closed that day.
func (u *tasksUseCase) profitLossHistory() {
	date := time.Now().In(u.loc).Format("2006-01-02")

	found, err := u.historyRepo.HasProfitLossFor(u.order.trader, u.order.accountID, date)
	if err != nil {
		u.logger.WithError(err).Error("check profit/loss history")
		return
	}
	if found {
		return
	}

	closed, err := u.order.closedRepo.Find(u.order.trader, u.order.accountID)
	if err != nil {
		u.logger.WithError(err).Error("read closed positions")
		return
	}

	var profitLoss float64

	for _, position := range closed {
		if position.ExitDate.In(u.loc).Format("2006-01-02") != date {
			continue
		}

		profitLoss += (position.ExitPrice - position.EntryPrice) * float64(position.Qty)
	}

	if err := u.historyRepo.StoreProfitLoss(&models.ProfitLossSnapshot{
		SessionID:  u.order.sessionID,
		Trader:     u.order.trader,
		AccountID:  u.order.accountID,
		Date:       date,
		ProfitLoss: profitLoss,
	}); err != nil {
		u.logger.WithError(err).Error("store profit/loss history")
	}
}

// sellOptionsAtExpiration closes open option positions one day before
// expiration through the normal signal path.
func (u *tasksUseCase) sellOptionsAtExpiration() {
	positions, err := u.order.openRepo.FindByAssetType(u.order.trader, u.order.accountID, ASSET_OPTION)
	if err != nil {
		u.logger.WithError(err).Error("read open option positions")
		return
	}

	today := time.Now().In(u.loc).Format("2006-01-02")

	for i := range positions {
		position := positions[i]

		dayBefore := position.ExpDate.AddDate(0, 0, -1).Format("2006-01-02")
		if dayBefore != today {
			continue
		}

		side := SIDE_SELL_TO_CLOSE
		if position.PositionType == POSITION_SHORT {
			side = SIDE_BUY_TO_CLOSE
		}

		signal := models.TradeSignal{
			Symbol:     position.Symbol,
			Side:       side,
			Strategy:   position.Strategy,
			AssetType:  position.AssetType,
			PreSymbol:  position.PreSymbol,
			ExpDate:    position.ExpDate,
			OptionType: position.OptionType,
		}

		if err := u.order.processSignal(signal); err != nil {
			u.logger.WithError(err).Errorf("close expiring option %s", position.PreSymbol)
		}
	}
}
