package models

// StrategyConfig is keyed by (strategy, account_id). Created with permissive
// defaults on first encounter of an unknown strategy name; afterwards only
// mutated by an operator or the balance recompute task.
type StrategyConfig struct {
	Strategy     string  `bson:"strategy"`
	AccountID    string  `bson:"account_id"`
	Active       bool    `bson:"active"`
	OrderType    string  `bson:"order_type"`
	AssetType    string  `bson:"asset_type"`
	PositionSize float64 `bson:"position_size"`
	PositionType string  `bson:"position_type"`
}

// ForbiddenSymbol marks a symbol the account must never open a position in.
type ForbiddenSymbol struct {
	Symbol    string `bson:"symbol"`
	AccountID string `bson:"account_id"`
}
