package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the row shape of the transactions table.
// Amount is signed: withdrawals and loans are stored negative.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	UserID          string          `db:"user_id"`
	TransactionType string          `db:"transaction_type"`
	Amount          decimal.Decimal `db:"amount"`
	Reason          string          `db:"reason"`
	Comment         string          `db:"comment"`
	Status          string          `db:"status"`
	ReceiptURL      *string         `db:"receipt_url"`
	DecidedBy       *string         `db:"decided_by"`
	DecidedAt       *time.Time      `db:"decided_at"`
	AuditFields
}
