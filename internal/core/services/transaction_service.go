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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var minTransactionAmount = decimal.NewFromInt(1)

type transactionService struct {
	BaseService
	txManager       portsrepo.TransactionManager
	customerRepo    portsrepo.CustomerRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	attachments     portssvc.AttachmentStore
	savingsListener portssvc.SavingsChangeListener
	clock           portssvc.Clock
	handlers        map[domain.TransactionType]decisionHandler
}

// TransactionOption is a functional option for configuring the transaction service
type TransactionOption func(*transactionService)

func WithAttachmentStore(store portssvc.AttachmentStore) TransactionOption {
	return func(s *transactionService) {
		s.attachments = store
	}
}

func WithTransactionAuditSink(sink portssvc.AuditSink) TransactionOption {
	return func(s *transactionService) {
		s.Audit = sink
	}
}

// WithSavingsChangeListener registers the hook run after a decision changes a saving balance.
func WithSavingsChangeListener(listener portssvc.SavingsChangeListener) TransactionOption {
	return func(s *transactionService) {
		s.savingsListener = listener
	}
}

func WithTransactionClock(clock portssvc.Clock) TransactionOption {
	return func(s *transactionService) {
		s.clock = clock
	}
}

// NewTransactionService creates the service owning transaction requests and the approval state machine.
func NewTransactionService(txManager portsrepo.TransactionManager, customerRepo portsrepo.CustomerRepositoryFacade, transactionRepo portsrepo.TransactionRepositoryFacade, options ...TransactionOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txManager:       txManager,
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
		clock:           NewSystemClock(),
		handlers:        decisionHandlers(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThan(minTransactionAmount) {
		return fmt.Errorf("%w: amount must be at least %s", apperrors.ErrValidation, minTransactionAmount)
	}
	if !amount.Equal(amount.Round(2)) {
		return fmt.Errorf("%w: amount must have at most two decimal places", apperrors.ErrValidation)
	}
	return nil
}

func (s *transactionService) RequestDeposit(ctx context.Context, userID string, req dto.DepositRequest, receipt *domain.Attachment) (*domain.Transaction, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, fmt.Errorf("%w: a receipt is required for deposits", apperrors.ErrValidation)
	}
	if _, err := s.ownCustomer(ctx, userID); err != nil {
		return nil, err
	}

	receiptURL, err := s.uploadReceipt(ctx, *receipt)
	if err != nil {
		return nil, err
	}

	return s.create(ctx, userID, domain.Deposit, req.Amount, req.Reason, &receiptURL)
}

func (s *transactionService) RequestWithdrawal(ctx context.Context, userID string, req dto.WithdrawalRequest) (*domain.Transaction, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	customer, err := s.ownCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.Amount.GreaterThan(customer.SavingBalance) {
		return nil, fmt.Errorf("%w: saving balance %s does not cover withdrawal of %s",
			apperrors.ErrInsufficientFunds, customer.SavingBalance.StringFixed(2), req.Amount.StringFixed(2))
	}
	return s.create(ctx, userID, domain.Withdrawal, req.Amount, req.Reason, nil)
}

func (s *transactionService) ApplyForLoan(ctx context.Context, userID string, req dto.LoanRequest) (*domain.Transaction, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	customer, err := s.ownCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}

	firstDeposit, err := s.transactionRepo.FindFirstDepositDate(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up first deposit", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to check loan eligibility: %w", err)
	}
	if err := checkLoanEligibility(*customer, firstDeposit, req.Amount, s.clock.Now()); err != nil {
		s.LogInfo(ctx, "Loan application refused", slog.String("user_id", userID), slog.String("reason", err.Error()))
		return nil, err
	}
	// Approving two open requests would stack the debt past the zero-balance rule.
	undecided, err := s.transactionRepo.HasUndecidedLoan(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up open loan requests", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to check loan eligibility: %w", err)
	}
	if undecided {
		return nil, apperrors.NewLoanEligibilityError("a previous loan application is still awaiting a decision")
	}

	return s.create(ctx, userID, domain.Loan, req.Amount, req.Reason, nil)
}

func (s *transactionService) RequestLoanRepayment(ctx context.Context, userID string, req dto.LoanRepaymentRequest, receipt *domain.Attachment) (*domain.Transaction, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	customer, err := s.ownCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !customer.HasOutstandingLoan() {
		return nil, fmt.Errorf("%w: no active loan to repay", apperrors.ErrValidation)
	}
	if customer.LoanBalance.Add(req.Amount).IsPositive() {
		return nil, fmt.Errorf("%w: repayment of %s against outstanding loan of %s",
			apperrors.ErrRepaymentExceedsLoan, req.Amount.StringFixed(2), customer.LoanBalance.Abs().StringFixed(2))
	}

	var receiptURL *string
	if receipt != nil {
		url, err := s.uploadReceipt(ctx, *receipt)
		if err != nil {
			return nil, err
		}
		receiptURL = &url
	}

	return s.create(ctx, userID, domain.LoanRepayment, req.Amount, req.Reason, receiptURL)
}

// Decide runs the approval state machine for one transaction. The status flip and
// the ledger change commit together, with both rows locked.
func (s *transactionService) Decide(ctx context.Context, transactionID string, req dto.ProcessTransactionRequest, actorID string) (*domain.Transaction, error) {
	action, err := domain.ParseDecisionAction(req.Action)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	var (
		decided    domain.Transaction
		outcome    decisionOutcome
		customerID string
	)

	err = s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		txn, err := s.transactionRepo.FindTransactionByIDForUpdate(txCtx, transactionID)
		if err != nil {
			return err
		}
		if txn.Status.IsTerminal() {
			return fmt.Errorf("%w: transaction %s is already %s", apperrors.ErrAlreadyFinalized, transactionID, txn.Status)
		}

		customer, err := s.customerRepo.FindCustomerByUserIDForUpdate(txCtx, txn.UserID)
		if err != nil {
			return fmt.Errorf("customer owning transaction %s: %w", transactionID, err)
		}

		handler, ok := s.handlers[txn.Type]
		if !ok {
			return fmt.Errorf("%w: no decision handler for transaction type %q", apperrors.ErrInternal, txn.Type)
		}
		outcome, err = handler(*customer, *txn, action)
		if err != nil {
			return err
		}

		if !outcome.Delta.IsZero() {
			updated := outcome.Delta.Apply(*customer)
			updated.UpdatedAt = now
			if err := s.customerRepo.UpdateCustomerLedger(txCtx, updated); err != nil {
				return err
			}
		}

		txn.Status = outcome.Status
		if comment := strings.TrimSpace(req.Comment); comment != "" {
			txn.Comment = comment
		}
		txn.DecidedBy = &actorID
		txn.DecidedAt = &now
		txn.UpdatedAt = now
		if err := s.transactionRepo.UpdateTransactionDecision(txCtx, *txn); err != nil {
			return err
		}

		decided = *txn
		customerID = customer.CustomerID
		return nil
	})
	if err != nil {
		if isBusinessRuleError(err) {
			s.LogWarn(ctx, err, "Transaction decision refused",
				slog.String("transaction_id", transactionID), slog.String("action", string(action)))
		} else {
			s.LogError(ctx, err, "Failed to decide transaction",
				slog.String("transaction_id", transactionID), slog.String("action", string(action)))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Transaction decided",
		slog.String("transaction_id", transactionID),
		slog.String("action", string(action)),
		slog.String("status", string(decided.Status)))
	s.RecordAudit(ctx, domain.AuditLog{
		UserID: &actorID,
		Action: domain.AuditTransactionDecided,
		Description: fmt.Sprintf("%s %s transaction %s of %s; status %s",
			action, decided.Type, decided.TransactionID, decided.Magnitude().StringFixed(2), decided.Status),
	})

	if !outcome.Delta.Saving.IsZero() && s.savingsListener != nil {
		s.savingsListener.OnSavingsBalanceChanged(ctx, customerID)
	}

	return &decided, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, transactionID string, actor domain.Actor) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	// Customers are told another customer's transaction does not exist.
	if actor.IsCustomer() && txn.UserID != actor.UserID {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams, actor domain.Actor) ([]domain.Transaction, error) {
	filter := domain.TransactionFilter{
		UserID: params.UserID,
		Type:   domain.TransactionType(params.Type),
		Status: domain.TransactionStatus(params.Status),
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, params.Type)
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction status %q", apperrors.ErrValidation, params.Status)
	}
	if actor.IsCustomer() {
		filter.UserID = actor.UserID
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	txns, err := s.transactionRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// ownCustomer loads the customer record owned by the requesting user.
func (s *transactionService) ownCustomer(ctx context.Context, userID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("no customer account for user %s: %w", userID, err)
		}
		s.LogError(ctx, err, "Failed to load customer", slog.String("user_id", userID))
		return nil, err
	}
	return customer, nil
}

func (s *transactionService) uploadReceipt(ctx context.Context, receipt domain.Attachment) (string, error) {
	if s.attachments == nil {
		return "", fmt.Errorf("%w: no attachment store configured", apperrors.ErrAttachmentUpload)
	}
	url, err := s.attachments.Upload(ctx, receipt)
	if err != nil {
		s.LogError(ctx, err, "Failed to upload receipt", slog.String("filename", receipt.Filename))
		if errors.Is(err, apperrors.ErrAttachmentUpload) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", apperrors.ErrAttachmentUpload, err)
	}
	return url, nil
}

func (s *transactionService) create(ctx context.Context, userID string, txType domain.TransactionType, amount decimal.Decimal, reason string, receiptURL *string) (*domain.Transaction, error) {
	now := s.clock.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Type:          txType,
		Amount:        txType.SignedAmount(amount),
		Reason:        strings.TrimSpace(reason),
		Status:        domain.StatusPending,
		ReceiptURL:    receiptURL,
		AuditFields:   domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("type", string(txType)), slog.String("user_id", userID))
		if receiptURL != nil && s.attachments != nil {
			if delErr := s.attachments.Delete(ctx, *receiptURL); delErr != nil {
				s.LogWarn(ctx, delErr, "Failed to remove orphaned receipt", slog.String("url", *receiptURL))
			}
		}
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction requested",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txType)),
		slog.String("amount", amount.StringFixed(2)))
	s.RecordAudit(ctx, domain.AuditLog{
		UserID:      &userID,
		Action:      domain.AuditTransactionCreated,
		Description: fmt.Sprintf("Requested %s of %s (transaction %s)", txType, amount.StringFixed(2), txn.TransactionID),
	})
	return &txn, nil
}

// isBusinessRuleError reports whether err is an expected refusal rather than a fault.
func isBusinessRuleError(err error) bool {
	for _, target := range []error{
		apperrors.ErrNotFound,
		apperrors.ErrValidation,
		apperrors.ErrInsufficientFunds,
		apperrors.ErrAlreadyFinalized,
		apperrors.ErrRepaymentExceedsLoan,
		apperrors.ErrLoanEligibility,
		apperrors.ErrInvalidAction,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
