package models

import "time"

// OpenPosition is a live position resolved from a filled opening order.
// For OCO positions ChildOrders maps broker child order ids to the bracket
// legs still working at the broker.
type OpenPosition struct {
	Trader        string                `bson:"trader"`
	AccountID     string                `bson:"account_id"`
	Symbol        string                `bson:"symbol"`
	Strategy      string                `bson:"strategy"`
	Side          string                `bson:"side"`
	AssetType     string                `bson:"asset_type"`
	OrderType     string                `bson:"order_type"`
	AccountMode   string                `bson:"account_mode"`
	DataIntegrity string                `bson:"data_integrity"`
	Qty           int                   `bson:"qty"`
	PositionSize  float64               `bson:"position_size"`
	PositionType  string                `bson:"position_type"`
	EntryPrice    float64               `bson:"entry_price"`
	EntryDate     time.Time             `bson:"entry_date"`
	PreSymbol     string                `bson:"pre_symbol,omitempty"`
	ExpDate       time.Time             `bson:"exp_date,omitempty"`
	OptionType    string                `bson:"option_type,omitempty"`
	ChildOrders   map[string]ChildOrder `bson:"child_orders,omitempty"`
}

// ClosedPosition is the terminal record of a position after the closing
// order fills.
type ClosedPosition struct {
	Trader        string    `bson:"trader"`
	AccountID     string    `bson:"account_id"`
	Symbol        string    `bson:"symbol"`
	Strategy      string    `bson:"strategy"`
	Side          string    `bson:"side"`
	AssetType     string    `bson:"asset_type"`
	OrderType     string    `bson:"order_type"`
	AccountMode   string    `bson:"account_mode"`
	DataIntegrity string    `bson:"data_integrity"`
	Qty           int       `bson:"qty"`
	PositionSize  float64   `bson:"position_size"`
	PositionType  string    `bson:"position_type"`
	EntryPrice    float64   `bson:"entry_price"`
	EntryDate     time.Time `bson:"entry_date"`
	ExitPrice     float64   `bson:"exit_price"`
	ExitDate      time.Time `bson:"exit_date"`
	PreSymbol     string    `bson:"pre_symbol,omitempty"`
	ExpDate       time.Time `bson:"exp_date,omitempty"`
	OptionType    string    `bson:"option_type,omitempty"`
}
