package structs

// Quote is the bid/ask pair for one instrument.
type Quote struct {
	BidPrice float64 `json:"bidPrice"`
	AskPrice float64 `json:"askPrice"`
}

// QuoteResponse is the broker's quote endpoint body, keyed by instrument
// symbol.
type QuoteResponse map[string]struct {
	Quote Quote `json:"quote"`
}

// AccountSummary is the slice of the broker's account endpoint the trader
// cares about.
type AccountSummary struct {
	SecuritiesAccount struct {
		InitialBalances struct {
			CashAvailableForTrading float64 `json:"cashAvailableForTrading"`
		} `json:"initialBalances"`
	} `json:"securitiesAccount"`
}
