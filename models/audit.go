package models

import "time"

// AuditRecord is an append-only row written to the rejected or canceled
// collection when an order terminates without filling. Never mutated.
type AuditRecord struct {
	Symbol      string    `bson:"symbol"`
	OrderType   string    `bson:"order_type"`
	OrderStatus string    `bson:"order_status"`
	Strategy    string    `bson:"strategy"`
	Trader      string    `bson:"trader"`
	AccountID   string    `bson:"account_id"`
	Date        time.Time `bson:"date"`
}
