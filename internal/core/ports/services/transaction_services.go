package services

import (
	"context"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	"github.com/SscSPs/bank_backoffice_app/internal/dto"
)

// TransactionRequestSvc defines how customers open transaction requests.
// Every request is created pending.
type TransactionRequestSvc interface {
	// RequestDeposit uploads the receipt and records a pending deposit.
	RequestDeposit(ctx context.Context, userID string, req dto.DepositRequest, receipt *domain.Attachment) (*domain.Transaction, error)

	// RequestWithdrawal records a pending withdrawal if the saving balance covers it.
	RequestWithdrawal(ctx context.Context, userID string, req dto.WithdrawalRequest) (*domain.Transaction, error)

	// ApplyForLoan records a pending loan after every eligibility rule passes.
	ApplyForLoan(ctx context.Context, userID string, req dto.LoanRequest) (*domain.Transaction, error)

	// RequestLoanRepayment records a pending repayment against an active loan.
	RequestLoanRepayment(ctx context.Context, userID string, req dto.LoanRepaymentRequest, receipt *domain.Attachment) (*domain.Transaction, error)
}

// TransactionDecisionSvc is the approval state machine.
type TransactionDecisionSvc interface {
	// Decide applies a staff action to a transaction, mutating the owner's ledger
	// at most once.
	Decide(ctx context.Context, transactionID string, req dto.ProcessTransactionRequest, actorID string) (*domain.Transaction, error)
}

// TransactionReaderSvc defines read operations. Customers only see their own transactions.
type TransactionReaderSvc interface {
	GetTransaction(ctx context.Context, transactionID string, actor domain.Actor) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams, actor domain.Actor) ([]domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionRequestSvc
	TransactionDecisionSvc
	TransactionReaderSvc
}
