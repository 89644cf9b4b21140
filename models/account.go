package models

// Account is one trader account from the users collection. AccountMode is
// "Live" or "Paper"; LiquidationValue is refreshed from the broker's account
// summary by the balance recompute task.
type Account struct {
	Trader           string  `bson:"trader"`
	AccountID        string  `bson:"account_id"`
	AccountMode      string  `bson:"account_mode"`
	LiquidationValue float64 `bson:"liquidation_value"`
}
