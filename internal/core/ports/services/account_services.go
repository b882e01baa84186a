package services

import (
	"context"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	"github.com/SscSPs/bank_backoffice_app/internal/dto"
)

// CustomerReaderSvc defines read operations for customer data
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a customer by its unique identifier.
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// GetCustomerByUserID retrieves the customer owned by the given login user.
	GetCustomerByUserID(ctx context.Context, userID string) (*domain.Customer, error)

	// ListCustomers retrieves a paginated list of customers.
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)
}

// CustomerWriterSvc defines onboarding and administration of customers
type CustomerWriterSvc interface {
	// RegisterCustomer creates the customer and its login user in one transaction.
	RegisterCustomer(ctx context.Context, req dto.CreateCustomerRequest, actorID string) (*domain.Customer, *domain.User, error)

	// UpdateCustomer changes profile fields. Balances are not editable.
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, actorID string) (*domain.Customer, error)

	// DeleteCustomer removes the customer together with its login user.
	DeleteCustomer(ctx context.Context, customerID string, actorID string) error
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
