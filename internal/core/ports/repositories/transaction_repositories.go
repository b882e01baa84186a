package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction records
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions matching the filter, newest first.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// FindFirstDepositDate returns when the user's earliest deposit was requested,
	// whatever its status, or nil if they never made one.
	FindFirstDepositDate(ctx context.Context, userID string) (*time.Time, error)

	// HasUndecidedLoan reports whether the user has a loan request that is neither approved nor rejected.
	HasUndecidedLoan(ctx context.Context, userID string) (bool, error)
}

// TransactionWriter defines write operations for transaction records
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionDecisionSupport defines the locked operations used while deciding a transaction.
// They must run inside TransactionManager.WithinTx.
type TransactionDecisionSupport interface {
	// FindTransactionByIDForUpdate selects a transaction and locks the row until the transaction ends.
	FindTransactionByIDForUpdate(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// UpdateTransactionDecision writes status, comment, decided_by and decided_at.
	UpdateTransactionDecision(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionDecisionSupport
}
