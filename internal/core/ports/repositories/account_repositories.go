package repositories

import (
	"context"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer by its unique identifier.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// FindCustomerByUserID retrieves the customer owned by a login user.
	FindCustomerByUserID(ctx context.Context, userID string) (*domain.Customer, error)

	// ListCustomers retrieves a paginated list of customers, newest first.
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)

	// ListCustomerIDs returns the id of every customer.
	ListCustomerIDs(ctx context.Context) ([]string, error)
}

// CustomerWriter defines write operations for customer profile data
type CustomerWriter interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer updates profile fields. Balances are left untouched.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// DeleteCustomer removes the customer row.
	DeleteCustomer(ctx context.Context, customerID string) error
}

// CustomerLedgerSupport defines the locked read-modify-write operations on balances.
// They must run inside TransactionManager.WithinTx.
type CustomerLedgerSupport interface {
	// FindCustomerByIDForUpdate selects a customer and locks the row until the transaction ends.
	FindCustomerByIDForUpdate(ctx context.Context, customerID string) (*domain.Customer, error)

	// FindCustomerByUserIDForUpdate is FindCustomerByIDForUpdate keyed by the owning user.
	FindCustomerByUserIDForUpdate(ctx context.Context, userID string) (*domain.Customer, error)

	// UpdateCustomerLedger writes saving_balance, loan_balance and last_interest_calculation.
	UpdateCustomerLedger(ctx context.Context, customer domain.Customer) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
	CustomerLedgerSupport
}
