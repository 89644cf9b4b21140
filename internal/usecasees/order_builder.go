package usecasees

import (
	"math"
	"time"

	"tradebot/internal/controllers"
	"tradebot/internal/usecasees/structs"
	"tradebot/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrOrderSkipped means the strategy is inactive or the computed quantity is
// non-positive. Not a failure; the signal is dropped for this cycle.
var ErrOrderSkipped = errors.New("order skipped")

// OrderBuilder turns a trade signal plus strategy config into the broker
// order payload and the queue record that tracks it.
type OrderBuilder struct {
	broker controllers.BrokerCtrl

	trader    string
	accountID string

	takeProfitPct float64
	stopLossPct   float64

	logger *logrus.Logger
}

func NewOrderBuilder(
	broker controllers.BrokerCtrl,
	trader string,
	accountID string,
	takeProfitPct float64,
	stopLossPct float64,
	logger *logrus.Logger,
) *OrderBuilder {
	return &OrderBuilder{
		broker:        broker,
		trader:        trader,
		accountID:     accountID,
		takeProfitPct: takeProfitPct,
		stopLossPct:   stopLossPct,
		logger:        logger,
	}
}

// roundPrice keeps 2 decimal places at or above a dollar and 4 below it,
// which preserves meaningful precision for sub-dollar option quotes.
func roundPrice(price float64) float64 {
	if price >= 1 {
		return math.Round(price*100) / 100
	}

	return math.Round(price*10000) / 10000
}

func isBuySide(side string) bool {
	switch side {
	case SIDE_BUY, SIDE_BUY_TO_OPEN, SIDE_BUY_TO_CLOSE:
		return true
	}

	return false
}

func inverseInstruction(side string) string {
	switch side {
	case SIDE_BUY_TO_OPEN:
		return SIDE_SELL_TO_CLOSE
	case SIDE_BUY:
		return SIDE_SELL
	case SIDE_SELL:
		return SIDE_BUY
	case SIDE_SELL_TO_OPEN:
		return SIDE_BUY_TO_CLOSE
	}

	return side
}

// instrumentSymbol resolves the tradable symbol: equities pass through, an
// option trades under its pre-formatted option symbol.
func (b *OrderBuilder) instrumentSymbol(signal models.TradeSignal, open *models.OpenPosition) string {
	if signal.AssetType != ASSET_OPTION {
		return signal.Symbol
	}

	if open != nil && open.PreSymbol != "" {
		return open.PreSymbol
	}

	return signal.PreSymbol
}

// Standard builds a single-leg LIMIT order, priced off the ask for buy-type
// sides and the bid for sell-type sides.
func (b *OrderBuilder) Standard(
	signal models.TradeSignal,
	cfg *models.StrategyConfig,
	direction string,
	open *models.OpenPosition,
) (*structs.BrokerOrder, *models.QueuedOrder, error) {
	symbol := b.instrumentSymbol(signal, open)

	quote, err := b.broker.GetQuote(symbol)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "quote %s", symbol)
	}

	price := quote.BidPrice
	if isBuySide(signal.Side) {
		price = quote.AskPrice
	}

	return b.base(signal, cfg, direction, open, price)
}

// OCO builds the bracket variant: the base order plus a TRIGGER parent
// nesting a take-profit LIMIT leg and a stop-loss STOP leg. Ask-priced
// brackets get terminated by the broker on submission, so the base order is
// always priced off the bid.
func (b *OrderBuilder) OCO(
	signal models.TradeSignal,
	cfg *models.StrategyConfig,
	direction string,
	open *models.OpenPosition,
) (*structs.BrokerOrder, *models.QueuedOrder, error) {
	symbol := b.instrumentSymbol(signal, open)

	quote, err := b.broker.GetQuote(symbol)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "quote %s", symbol)
	}

	order, queued, err := b.base(signal, cfg, direction, open, quote.BidPrice)
	if err != nil {
		return nil, nil, err
	}

	b.attachBracket(order, queued, signal)

	return order, queued, nil
}

func (b *OrderBuilder) base(
	signal models.TradeSignal,
	cfg *models.StrategyConfig,
	direction string,
	open *models.OpenPosition,
	price float64,
) (*structs.BrokerOrder, *models.QueuedOrder, error) {
	symbol := b.instrumentSymbol(signal, open)
	price = roundPrice(price)

	duration := structs.DurationGoodTillCancel
	if signal.AssetType == ASSET_OPTION {
		duration = structs.DurationDay
	}

	instrument := structs.Instrument{
		Symbol:    symbol,
		AssetType: signal.AssetType,
	}
	if signal.AssetType == ASSET_OPTION {
		instrument.PutCall = signal.OptionType
	}

	order := &structs.BrokerOrder{
		OrderType:         structs.OrderTypeLimit,
		Session:           structs.SessionNormal,
		Duration:          duration,
		OrderStrategyType: structs.StrategyTypeSingle,
		Price:             price,
		OrderLegCollection: []structs.OrderLeg{
			{
				Instruction: signal.Side,
				Instrument:  instrument,
			},
		},
	}

	queued := &models.QueuedOrder{
		Trader:       b.trader,
		AccountID:    b.accountID,
		Symbol:       signal.Symbol,
		Strategy:     signal.Strategy,
		Side:         signal.Side,
		AssetType:    signal.AssetType,
		OrderType:    cfg.OrderType,
		PositionType: cfg.PositionType,
		Direction:    direction,
		Date:         time.Now(),
	}

	if signal.AssetType == ASSET_OPTION {
		queued.PreSymbol = symbol
		queued.ExpDate = signal.ExpDate
		queued.OptionType = signal.OptionType
		if open != nil {
			queued.ExpDate = open.ExpDate
			queued.OptionType = open.OptionType
		}
	}

	switch direction {
	case DIRECTION_OPEN:
		shares := int(cfg.PositionSize / price)
		if signal.AssetType == ASSET_OPTION {
			shares = int((cfg.PositionSize / 100) / price)
		}

		if !cfg.Active || shares <= 0 {
			b.logger.
				WithField("strategy", signal.Strategy).
				WithField("active", cfg.Active).
				WithField("shares", shares).
				Warnf("%s order stopped for %s", signal.Side, signal.Symbol)

			return nil, nil, ErrOrderSkipped
		}

		order.OrderLegCollection[0].Quantity = shares

		queued.Qty = shares
		queued.PositionSize = cfg.PositionSize
		queued.EntryPrice = price
		queued.EntryDate = time.Now()

	case DIRECTION_CLOSE:
		order.OrderLegCollection[0].Quantity = open.Qty

		queued.Qty = open.Qty
		queued.PositionSize = open.PositionSize
		queued.EntryPrice = open.EntryPrice
		queued.EntryDate = open.EntryDate
		queued.ExitPrice = price
		queued.ExitDate = time.Now()
	}

	return order, queued, nil
}

func (b *OrderBuilder) attachBracket(order *structs.BrokerOrder, queued *models.QueuedOrder, signal models.TradeSignal) {
	instruction := inverseInstruction(signal.Side)
	instrument := order.OrderLegCollection[0].Instrument

	leg := structs.OrderLeg{
		Instruction: instruction,
		Quantity:    queued.Qty,
		Instrument:  instrument,
	}

	order.OrderStrategyType = structs.StrategyTypeTrigger
	order.ChildOrderStrategies = []structs.BrokerOrder{
		{
			OrderStrategyType: structs.StrategyTypeOCO,
			ChildOrderStrategies: []structs.BrokerOrder{
				{
					OrderStrategyType:  structs.StrategyTypeSingle,
					Session:            structs.SessionNormal,
					Duration:           structs.DurationGoodTillCancel,
					OrderType:          structs.OrderTypeLimit,
					Price:              roundPrice(order.Price * b.takeProfitPct),
					OrderLegCollection: []structs.OrderLeg{leg},
				},
				{
					OrderStrategyType:  structs.StrategyTypeSingle,
					Session:            structs.SessionNormal,
					Duration:           structs.DurationGoodTillCancel,
					OrderType:          structs.OrderTypeStop,
					StopPrice:          roundPrice(order.Price * b.stopLossPct),
					OrderLegCollection: []structs.OrderLeg{leg},
				},
			},
		},
	}
}
