package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/bank_backoffice_app/internal/models"
	"github.com/SscSPs/bank_backoffice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `transaction_id, user_id, transaction_type, amount, reason, comment, status,
	receipt_url, decided_by, decided_at, created_at, updated_at`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(base BaseRepository) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: base}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.TransactionType,
		&m.Amount,
		&m.Reason,
		&m.Comment,
		&m.Status,
		&m.ReceiptURL,
		&m.DecidedBy,
		&m.DecidedAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return domain.Transaction{}, err
	}
	return mapping.ToDomainTransaction(m), nil
}

// SaveTransaction inserts a new transaction request.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.TransactionType,
		m.Amount,
		m.Reason,
		m.Comment,
		m.Status,
		m.ReceiptURL,
		m.DecidedBy,
		m.DecidedAt,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return mapError(err, "failed to save transaction %s", m.TransactionID)
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	txn, err := scanTransaction(r.db(ctx).QueryRow(ctx, query, transactionID))
	if err != nil {
		return nil, mapError(err, "transaction %s", transactionID)
	}
	return &txn, nil
}

// FindTransactionByIDForUpdate retrieves a transaction and locks the row.
// Must be called within a transaction.
func (r *PgxTransactionRepository) FindTransactionByIDForUpdate(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	tx, err := r.lockingTx(ctx, "FindTransactionByIDForUpdate")
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 FOR UPDATE;`
	txn, err := scanTransaction(tx.QueryRow(ctx, query, transactionID))
	if err != nil {
		return nil, mapError(err, "transaction %s", transactionID)
	}
	return &txn, nil
}

// ListTransactions applies the non-empty filter fields, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var (
		conditions []string
		args       []any
	)
	addCondition := func(column string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if filter.UserID != "" {
		addCondition("user_id", filter.UserID)
	}
	if filter.Type != "" {
		addCondition("transaction_type", string(filter.Type))
	}
	if filter.Status != "" {
		addCondition("status", string(filter.Status))
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + transactionColumns + ` FROM transactions`)
	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC, transaction_id")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}

	rows, err := r.db(ctx).Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, mapError(err, "failed to list transactions")
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan transaction row")
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating transaction rows")
	}
	return txns, nil
}

// FindFirstDepositDate returns when the user's earliest deposit was requested, whatever its status.
func (r *PgxTransactionRepository) FindFirstDepositDate(ctx context.Context, userID string) (*time.Time, error) {
	query := `SELECT MIN(created_at) FROM transactions WHERE user_id = $1 AND transaction_type = $2;`
	var first *time.Time
	if err := r.db(ctx).QueryRow(ctx, query, userID, string(domain.Deposit)).Scan(&first); err != nil {
		return nil, mapError(err, "failed to find first deposit of user %s", userID)
	}
	return first, nil
}

func (r *PgxTransactionRepository) HasUndecidedLoan(ctx context.Context, userID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM transactions
			WHERE user_id = $1 AND transaction_type = $2 AND status NOT IN ($3, $4)
		);
	`
	var exists bool
	err := r.db(ctx).QueryRow(ctx, query, userID, string(domain.Loan), string(domain.StatusApproved), string(domain.StatusRejected)).Scan(&exists)
	if err != nil {
		return false, mapError(err, "failed to check undecided loans of user %s", userID)
	}
	return exists, nil
}

// UpdateTransactionDecision records the outcome of a decision on a locked row.
// Must be called within a transaction.
func (r *PgxTransactionRepository) UpdateTransactionDecision(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.lockingTx(ctx, "UpdateTransactionDecision")
	if err != nil {
		return err
	}
	query := `
		UPDATE transactions
		SET status = $2, comment = $3, decided_by = $4, decided_at = $5, updated_at = $6
		WHERE transaction_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		txn.TransactionID,
		string(txn.Status),
		txn.Comment,
		txn.DecidedBy,
		txn.DecidedAt,
		txn.UpdatedAt,
	)
	if err != nil {
		return mapError(err, "failed to record decision on transaction %s", txn.TransactionID)
	}
	return expectOne(tag, "transaction %s", txn.TransactionID)
}
