package models

import "time"

// BalanceSnapshot is one end-of-day account balance row, one per trader per
// calendar day (Eastern).
type BalanceSnapshot struct {
	ID        int       `db:"id"`
	SessionID string    `db:"session_id"`
	Trader    string    `db:"trader"`
	AccountID string    `db:"account_id"`
	Date      string    `db:"date"`
	Balance   float64   `db:"balance"`
	CreatedAt time.Time `db:"created_at"`
}

// ProfitLossSnapshot is one end-of-day realized P&L row computed over the
// positions closed that day.
type ProfitLossSnapshot struct {
	ID         int       `db:"id"`
	SessionID  string    `db:"session_id"`
	Trader     string    `db:"trader"`
	AccountID  string    `db:"account_id"`
	Date       string    `db:"date"`
	ProfitLoss float64   `db:"profit_loss"`
	CreatedAt  time.Time `db:"created_at"`
}
