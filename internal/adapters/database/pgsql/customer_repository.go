package pgsql

import (
	"context"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/bank_backoffice_app/internal/models"
	"github.com/SscSPs/bank_backoffice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const customerColumns = `customer_id, user_id, phone, account_no, fname, lname, age, sex, email,
	saving_balance, loan_balance, salary, gov_bureau, status, last_interest_calculation,
	created_at, updated_at`

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(base BaseRepository) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: base}
}

// Ensure PgxCustomerRepository implements portsrepo.CustomerRepositoryFacade
var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func scanCustomer(row pgx.Row) (domain.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.UserID,
		&m.Phone,
		&m.AccountNo,
		&m.FirstName,
		&m.LastName,
		&m.Age,
		&m.Sex,
		&m.Email,
		&m.SavingBalance,
		&m.LoanBalance,
		&m.Salary,
		&m.GovBureau,
		&m.Status,
		&m.LastInterestCalculation,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return domain.Customer{}, err
	}
	return mapping.ToDomainCustomer(m), nil
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.CustomerID,
		m.UserID,
		m.Phone,
		m.AccountNo,
		m.FirstName,
		m.LastName,
		m.Age,
		m.Sex,
		m.Email,
		m.SavingBalance,
		m.LoanBalance,
		m.Salary,
		m.GovBureau,
		m.Status,
		m.LastInterestCalculation,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return mapError(err, "failed to save customer %s", m.CustomerID)
}

func (r *PgxCustomerRepository) findOne(ctx context.Context, q querier, where string, arg any, lock bool) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE ` + where
	if lock {
		query += ` FOR UPDATE`
	}
	customer, err := scanCustomer(q.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, mapError(err, "customer %v", arg)
	}
	return &customer, nil
}

// FindCustomerByID retrieves a customer by its ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return r.findOne(ctx, r.db(ctx), "customer_id = $1", customerID, false)
}

// FindCustomerByUserID retrieves the customer owned by a login.
func (r *PgxCustomerRepository) FindCustomerByUserID(ctx context.Context, userID string) (*domain.Customer, error) {
	return r.findOne(ctx, r.db(ctx), "user_id = $1", userID, false)
}

// FindCustomerByIDForUpdate retrieves a customer and locks the row.
// Must be called within a transaction.
func (r *PgxCustomerRepository) FindCustomerByIDForUpdate(ctx context.Context, customerID string) (*domain.Customer, error) {
	tx, err := r.lockingTx(ctx, "FindCustomerByIDForUpdate")
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, tx, "customer_id = $1", customerID, true)
}

// FindCustomerByUserIDForUpdate locks the customer row owned by a login.
// Must be called within a transaction.
func (r *PgxCustomerRepository) FindCustomerByUserIDForUpdate(ctx context.Context, userID string) (*domain.Customer, error) {
	tx, err := r.lockingTx(ctx, "FindCustomerByUserIDForUpdate")
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, tx, "user_id = $1", userID, true)
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		ORDER BY created_at DESC, customer_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db(ctx).Query(ctx, query, limit, offset)
	if err != nil {
		return nil, mapError(err, "failed to list customers")
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan customer row")
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating customer rows")
	}
	return customers, nil
}

// ListCustomerIDs returns every customer id, used by the interest sweep.
func (r *PgxCustomerRepository) ListCustomerIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db(ctx).Query(ctx, `SELECT customer_id FROM customers ORDER BY customer_id;`)
	if err != nil {
		return nil, mapError(err, "failed to list customer ids")
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, mapError(err, "failed to scan customer ids")
	}
	return ids, nil
}

// UpdateCustomer writes the profile columns only. Balances move through UpdateCustomerLedger.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		UPDATE customers
		SET phone = $2, account_no = $3, fname = $4, lname = $5, age = $6, sex = $7, email = $8,
			salary = $9, gov_bureau = $10, status = $11, updated_at = $12
		WHERE customer_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		m.CustomerID,
		m.Phone,
		m.AccountNo,
		m.FirstName,
		m.LastName,
		m.Age,
		m.Sex,
		m.Email,
		m.Salary,
		m.GovBureau,
		m.Status,
		m.UpdatedAt,
	)
	if err != nil {
		return mapError(err, "failed to update customer %s", m.CustomerID)
	}
	return expectOne(tag, "customer %s", m.CustomerID)
}

// UpdateCustomerLedger writes balances and the interest date of a locked row.
// Must be called within a transaction.
func (r *PgxCustomerRepository) UpdateCustomerLedger(ctx context.Context, customer domain.Customer) error {
	tx, err := r.lockingTx(ctx, "UpdateCustomerLedger")
	if err != nil {
		return err
	}
	query := `
		UPDATE customers
		SET saving_balance = $2, loan_balance = $3, last_interest_calculation = $4, updated_at = $5
		WHERE customer_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		customer.CustomerID,
		customer.SavingBalance,
		customer.LoanBalance,
		customer.LastInterestCalculation,
		customer.UpdatedAt,
	)
	if err != nil {
		return mapError(err, "failed to update ledger of customer %s", customer.CustomerID)
	}
	return expectOne(tag, "customer %s", customer.CustomerID)
}

func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM customers WHERE customer_id = $1;`, customerID)
	if err != nil {
		return mapError(err, "failed to delete customer %s", customerID)
	}
	return expectOne(tag, "customer %s", customerID)
}
