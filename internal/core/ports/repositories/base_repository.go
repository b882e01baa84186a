package repositories

import (
	"context"
)

// TransactionManager runs units of work inside a database transaction.
type TransactionManager interface {
	// WithinTx begins a transaction, stores it in the context handed to fn and
	// commits when fn returns nil. Any error, or a panic, rolls back.
	// Repository calls made with that context join the transaction.
	// Nested calls reuse the outer transaction.
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
