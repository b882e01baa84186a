package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/bank_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/bank_backoffice_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CustomerService ---
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) GetCustomerByUserID(ctx context.Context, userID string) (*domain.Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerService) RegisterCustomer(ctx context.Context, req dto.CreateCustomerRequest, actorID string) (*domain.Customer, *domain.User, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Customer), args.Get(1).(*domain.User), args.Error(2)
}
func (m *MockCustomerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, actorID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) DeleteCustomer(ctx context.Context, customerID string, actorID string) error {
	args := m.Called(ctx, customerID, actorID)
	return args.Error(0)
}

var _ portssvc.CustomerSvcFacade = (*MockCustomerService)(nil)

// --- Mock InterestService ---
type MockInterestService struct {
	mock.Mock
}

func (m *MockInterestService) Accrue(ctx context.Context, customerID string) (domain.AccrualResult, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(domain.AccrualResult), args.Error(1)
}
func (m *MockInterestService) AccrueAll(ctx context.Context) (domain.SweepSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.SweepSummary), args.Error(1)
}
func (m *MockInterestService) OnSavingsBalanceChanged(ctx context.Context, customerID string) {
	m.Called(ctx, customerID)
}

var _ portssvc.InterestSvcFacade = (*MockInterestService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) txn(args mock.Arguments) (*domain.Transaction, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) RequestDeposit(ctx context.Context, userID string, req dto.DepositRequest, receipt *domain.Attachment) (*domain.Transaction, error) {
	return m.txn(m.Called(ctx, userID, req, receipt))
}
func (m *MockTransactionService) RequestWithdrawal(ctx context.Context, userID string, req dto.WithdrawalRequest) (*domain.Transaction, error) {
	return m.txn(m.Called(ctx, userID, req))
}
func (m *MockTransactionService) ApplyForLoan(ctx context.Context, userID string, req dto.LoanRequest) (*domain.Transaction, error) {
	return m.txn(m.Called(ctx, userID, req))
}
func (m *MockTransactionService) RequestLoanRepayment(ctx context.Context, userID string, req dto.LoanRepaymentRequest, receipt *domain.Attachment) (*domain.Transaction, error) {
	return m.txn(m.Called(ctx, userID, req, receipt))
}
func (m *MockTransactionService) Decide(ctx context.Context, transactionID string, req dto.ProcessTransactionRequest, actorID string) (*domain.Transaction, error) {
	return m.txn(m.Called(ctx, transactionID, req, actorID))
}
func (m *MockTransactionService) GetTransaction(ctx context.Context, transactionID string, actor domain.Actor) (*domain.Transaction, error) {
	return m.txn(m.Called(ctx, transactionID, actor))
}
func (m *MockTransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams, actor domain.Actor) ([]domain.Transaction, error) {
	args := m.Called(ctx, params, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) user(args mock.Arguments) (*domain.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return m.user(m.Called(ctx, userID))
}
func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	return m.user(m.Called(ctx, req))
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	return m.user(m.Called(ctx, userID, req, requestingUserID))
}
func (m *MockUserService) SetProfilePicture(ctx context.Context, userID string, picture domain.Attachment) (*domain.User, error) {
	return m.user(m.Called(ctx, userID, picture))
}
func (m *MockUserService) RemoveProfilePicture(ctx context.Context, userID string) (*domain.User, error) {
	return m.user(m.Called(ctx, userID))
}
func (m *MockUserService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	return m.Called(ctx, userID, requestingUserID).Error(0)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	return m.user(m.Called(ctx, username, password))
}
func (m *MockUserService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock AuditService ---
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, entry domain.AuditLog) {
	m.Called(ctx, entry)
}
func (m *MockAuditService) CreateLog(ctx context.Context, req dto.CreateLogRequest, actorID string) (*domain.AuditLog, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuditLog), args.Error(1)
}
func (m *MockAuditService) ListLogs(ctx context.Context, limit, offset int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLog), args.Error(1)
}
func (m *MockAuditService) DeleteLog(ctx context.Context, logID string) error {
	return m.Called(ctx, logID).Error(0)
}

var _ portssvc.AuditSvcFacade = (*MockAuditService)(nil)

// stubPinger fails every ping with err.
type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }
