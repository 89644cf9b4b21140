package models

import "time"

// TradeSignal is the external input to the trader. Signals arrive through the
// webhook endpoint and are immutable once received. For OPTION signals the
// PreSymbol field carries the broker's pre-formatted option symbol.
type TradeSignal struct {
	Symbol     string    `json:"symbol" bson:"symbol"`
	Side       string    `json:"side" bson:"side"`
	Strategy   string    `json:"strategy" bson:"strategy"`
	AssetType  string    `json:"asset_type" bson:"asset_type"`
	PreSymbol  string    `json:"pre_symbol,omitempty" bson:"pre_symbol,omitempty"`
	ExpDate    time.Time `json:"exp_date,omitempty" bson:"exp_date,omitempty"`
	OptionType string    `json:"option_type,omitempty" bson:"option_type,omitempty"`
}
