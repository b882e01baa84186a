package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bank_backoffice_app/internal/apperrors"
	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/bank_backoffice_app/internal/dto"
	"github.com/SscSPs/bank_backoffice_app/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	minSalary = decimal.NewFromInt(500)
	maxSalary = decimal.NewFromInt(1000000)
)

// customerService implements the CustomerSvcFacade interface
type customerService struct {
	BaseService
	txManager       portsrepo.TransactionManager
	customerRepo    portsrepo.CustomerRepositoryFacade
	userRepo        portsrepo.UserRepositoryFacade
	clock           portssvc.Clock
	defaultPassword string
}

// CustomerOption is a functional option for configuring the customer service
type CustomerOption func(*customerService)

func WithCustomerAuditSink(sink portssvc.AuditSink) CustomerOption {
	return func(s *customerService) {
		s.Audit = sink
	}
}

func WithCustomerClock(clock portssvc.Clock) CustomerOption {
	return func(s *customerService) {
		s.clock = clock
	}
}

// NewCustomerService creates the customer onboarding service. New customers get a
// login named after their email with defaultPassword.
func NewCustomerService(txManager portsrepo.TransactionManager, customerRepo portsrepo.CustomerRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, defaultPassword string, options ...CustomerOption) portssvc.CustomerSvcFacade {
	svc := &customerService{
		txManager:       txManager,
		customerRepo:    customerRepo,
		userRepo:        userRepo,
		clock:           NewSystemClock(),
		defaultPassword: defaultPassword,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func validateSalary(salary *decimal.Decimal) error {
	if salary == nil {
		return nil
	}
	if salary.LessThan(minSalary) || salary.GreaterThan(maxSalary) {
		return fmt.Errorf("%w: salary must be between %s and %s", apperrors.ErrValidation, minSalary, maxSalary)
	}
	return nil
}

func validateBureau(bureau *domain.GovBureau) error {
	if bureau != nil && !bureau.IsValid() {
		return fmt.Errorf("%w: unknown government bureau %q", apperrors.ErrValidation, *bureau)
	}
	return nil
}

func (s *customerService) RegisterCustomer(ctx context.Context, req dto.CreateCustomerRequest, actorID string) (*domain.Customer, *domain.User, error) {
	if err := validateSalary(req.Salary); err != nil {
		return nil, nil, err
	}
	if err := validateBureau(req.GovBureau); err != nil {
		return nil, nil, err
	}

	passwordHash, err := utils.HashPassword(s.defaultPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash default password")
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.clock.Now()
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     email,
		PasswordHash: passwordHash,
		Role:         domain.RoleCustomer,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	customer := domain.Customer{
		CustomerID:    uuid.NewString(),
		UserID:        user.UserID,
		Phone:         req.Phone,
		AccountNo:     req.AccountNo,
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Age:           req.Age,
		Sex:           req.Sex,
		Email:         email,
		SavingBalance: decimal.Zero,
		LoanBalance:   decimal.Zero,
		Salary:        req.Salary,
		GovBureau:     req.GovBureau,
		Status:        domain.CustomerStatusActive,
		AuditFields:   domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	err = s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		if _, err := s.userRepo.FindUserByUsername(txCtx, email); err == nil {
			return fmt.Errorf("%w: a user named %s already exists", apperrors.ErrDuplicate, email)
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if err := s.userRepo.SaveUser(txCtx, user); err != nil {
			return err
		}
		return s.customerRepo.SaveCustomer(txCtx, customer)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, err, "Customer registration rejected", slog.String("email", email))
		} else {
			s.LogError(ctx, err, "Failed to register customer", slog.String("email", email))
		}
		return nil, nil, err
	}

	s.LogInfo(ctx, "Customer registered", slog.String("customer_id", customer.CustomerID), slog.String("user_id", user.UserID))
	s.RecordAudit(ctx, domain.AuditLog{
		UserID:      &actorID,
		Action:      domain.AuditCustomerRegistered,
		Description: fmt.Sprintf("Registered customer %s (%s %s, account %s)", customer.CustomerID, customer.FirstName, customer.LastName, customer.AccountNo),
	})
	return &customer, &user, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find customer", slog.String("customer_id", customerID))
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetCustomerByUserID(ctx context.Context, userID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find customer by user", slog.String("user_id", userID))
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, actorID string) (*domain.Customer, error) {
	if err := validateSalary(req.Salary); err != nil {
		return nil, err
	}
	if err := validateBureau(req.GovBureau); err != nil {
		return nil, err
	}

	var updated domain.Customer
	err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		customer, err := s.customerRepo.FindCustomerByID(txCtx, customerID)
		if err != nil {
			return err
		}

		emailChanged := false
		if req.Phone != nil {
			customer.Phone = *req.Phone
		}
		if req.FirstName != nil {
			customer.FirstName = strings.TrimSpace(*req.FirstName)
		}
		if req.LastName != nil {
			customer.LastName = strings.TrimSpace(*req.LastName)
		}
		if req.Age != nil {
			customer.Age = *req.Age
		}
		if req.Sex != nil {
			customer.Sex = *req.Sex
		}
		if req.Email != nil {
			email := strings.ToLower(strings.TrimSpace(*req.Email))
			emailChanged = email != customer.Email
			customer.Email = email
		}
		if req.Salary != nil {
			customer.Salary = req.Salary
		}
		if req.GovBureau != nil {
			customer.GovBureau = req.GovBureau
		}
		if req.Status != nil {
			customer.Status = *req.Status
		}
		customer.UpdatedAt = s.clock.Now()

		if err := s.customerRepo.UpdateCustomer(txCtx, *customer); err != nil {
			return err
		}

		// The login username follows the email address.
		if emailChanged {
			user, err := s.userRepo.FindUserByID(txCtx, customer.UserID)
			if err != nil {
				return err
			}
			user.Username = customer.Email
			user.UpdatedAt = customer.UpdatedAt
			if err := s.userRepo.UpdateUser(txCtx, *user); err != nil {
				return err
			}
		}
		updated = *customer
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Customer updated", slog.String("customer_id", customerID), slog.String("updated_by", actorID))
	s.RecordAudit(ctx, domain.AuditLog{
		UserID:      &actorID,
		Action:      domain.AuditCustomerUpdated,
		Description: fmt.Sprintf("Updated customer %s (account %s)", updated.CustomerID, updated.AccountNo),
	})
	return &updated, nil
}

// DeleteCustomer closes a settled account. The customer row goes with its login user.
func (s *customerService) DeleteCustomer(ctx context.Context, customerID string, actorID string) error {
	err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		customer, err := s.customerRepo.FindCustomerByIDForUpdate(txCtx, customerID)
		if err != nil {
			return err
		}
		if customer.HasOutstandingLoan() || !customer.SavingBalance.IsZero() {
			return fmt.Errorf("%w: account must have zero savings and no outstanding loan before closure", apperrors.ErrValidation)
		}
		return s.userRepo.DeleteUser(txCtx, customer.UserID)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to delete customer", slog.String("customer_id", customerID))
		}
		return err
	}

	s.LogInfo(ctx, "Customer deleted", slog.String("customer_id", customerID))
	s.RecordAudit(ctx, domain.AuditLog{
		UserID:      &actorID,
		Action:      domain.AuditCustomerDeleted,
		Description: fmt.Sprintf("Closed customer account %s", customerID),
	})
	return nil
}
