package models

import "time"

// ChildOrder tracks one leg of a filled bracket order. The map key on the
// parent record is the broker child order id, which is the only linkage
// between a bracket position and the leg that eventually executes.
type ChildOrder struct {
	Side        string  `bson:"side"`
	ExitPrice   float64 `bson:"exit_price"`
	ExitType    string  `bson:"exit_type"`
	OrderStatus string  `bson:"order_status"`
}

// QueuedOrder tracks a submitted (or paper-simulated) order until it
// resolves. Keyed by (trader, symbol, strategy, account_id); upserting a
// duplicate key overwrites the prior entry.
type QueuedOrder struct {
	Trader       string                `bson:"trader"`
	AccountID    string                `bson:"account_id"`
	Symbol       string                `bson:"symbol"`
	Strategy     string                `bson:"strategy"`
	Side         string                `bson:"side"`
	AssetType    string                `bson:"asset_type"`
	OrderID      int64                 `bson:"order_id"`
	OrderType    string                `bson:"order_type"`
	OrderStatus  string                `bson:"order_status"`
	Direction    string                `bson:"direction"`
	AccountMode  string                `bson:"account_mode"`
	Qty          int                   `bson:"qty"`
	PositionSize float64               `bson:"position_size"`
	PositionType string                `bson:"position_type"`
	EntryPrice   float64               `bson:"entry_price,omitempty"`
	EntryDate    time.Time             `bson:"entry_date,omitempty"`
	ExitPrice    float64               `bson:"exit_price,omitempty"`
	ExitDate     time.Time             `bson:"exit_date,omitempty"`
	PreSymbol    string                `bson:"pre_symbol,omitempty"`
	ExpDate      time.Time             `bson:"exp_date,omitempty"`
	OptionType   string                `bson:"option_type,omitempty"`
	ChildOrders  map[string]ChildOrder `bson:"child_orders,omitempty"`
	Date         time.Time             `bson:"date"`
}
