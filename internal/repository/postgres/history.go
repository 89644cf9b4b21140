package postgres

import (
	"tradebot/models"

	"github.com/jmoiron/sqlx"
)

// HistoryRepository stores the end-of-day balance and realized P&L series.
// One row per trader per day; callers check HasXxxFor before storing.
type HistoryRepository struct {
	conn *sqlx.DB
}

func NewHistoryRepository(conn *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{conn: conn}
}

func (r *HistoryRepository) StoreBalance(m *models.BalanceSnapshot) error {
	if _, err := r.conn.NamedExec(
		"INSERT INTO balance_history (session_id,trader,account_id,date,balance) VALUES (:session_id,:trader,:account_id,:date,:balance)",
		m,
	); err != nil {
		return err
	}

	return nil
}

func (r *HistoryRepository) HasBalanceFor(trader, accountID, date string) (bool, error) {
	var count int

	if err := r.conn.QueryRow(
		"SELECT COUNT(*) FROM balance_history WHERE trader = $1 AND account_id = $2 AND date = $3",
		trader, accountID, date,
	).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *HistoryRepository) StoreProfitLoss(m *models.ProfitLossSnapshot) error {
	if _, err := r.conn.NamedExec(
		"INSERT INTO profit_loss_history (session_id,trader,account_id,date,profit_loss) VALUES (:session_id,:trader,:account_id,:date,:profit_loss)",
		m,
	); err != nil {
		return err
	}

	return nil
}

func (r *HistoryRepository) HasProfitLossFor(trader, accountID, date string) (bool, error) {
	var count int

	if err := r.conn.QueryRow(
		"SELECT COUNT(*) FROM profit_loss_history WHERE trader = $1 AND account_id = $2 AND date = $3",
		trader, accountID, date,
	).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}
