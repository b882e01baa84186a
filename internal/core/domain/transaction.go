package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/bank_backoffice_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType is the kind of money movement a customer requested.
type TransactionType string

const (
	Deposit       TransactionType = "deposit"
	Withdrawal    TransactionType = "withdrawal"
	Loan          TransactionType = "loan"
	LoanRepayment TransactionType = "loan repayment"
)

// TransactionTypes lists every transaction type the approval workflow knows.
var TransactionTypes = []TransactionType{Deposit, Withdrawal, Loan, LoanRepayment}

func (t TransactionType) IsValid() bool {
	for _, known := range TransactionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// SignedAmount returns the stored amount for a request of the given magnitude.
// Deposits and repayments are kept positive; withdrawals and loans negative.
func (t TransactionType) SignedAmount(magnitude decimal.Decimal) decimal.Decimal {
	switch t {
	case Withdrawal, Loan:
		return magnitude.Abs().Neg()
	default:
		return magnitude.Abs()
	}
}

// TransactionStatus is the position of a transaction in the approval workflow.
type TransactionStatus string

const (
	StatusPending              TransactionStatus = "pending"
	StatusApproved             TransactionStatus = "approved"
	StatusRejected             TransactionStatus = "rejected"
	StatusRecommendedApproval  TransactionStatus = "recommended approval"
	StatusRecommendedRejection TransactionStatus = "recommended rejection"
)

func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusRecommendedApproval, StatusRecommendedRejection:
		return true
	}
	return false
}

// IsTerminal reports whether no further decision may be taken.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// DecisionAction is what a staff member asks to do with a pending transaction.
type DecisionAction string

const (
	ActionApprove            DecisionAction = "approve"
	ActionReject             DecisionAction = "reject"
	ActionRecommendApproval  DecisionAction = "recommend-approval"
	ActionRecommendRejection DecisionAction = "recommend-rejection"
)

// ParseDecisionAction maps raw input onto a DecisionAction.
// Anything unrecognised yields an error wrapping apperrors.ErrInvalidAction.
func ParseDecisionAction(raw string) (DecisionAction, error) {
	switch a := DecisionAction(strings.ToLower(strings.TrimSpace(raw))); a {
	case ActionApprove, ActionReject, ActionRecommendApproval, ActionRecommendRejection:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidAction, raw)
	}
}

// Transaction is a customer request that moves money once approved.
type Transaction struct {
	TransactionID string            `json:"transactionID"`
	UserID        string            `json:"userID"`
	Type          TransactionType   `json:"type"`
	Amount        decimal.Decimal   `json:"amount"`
	Reason        string            `json:"reason"`
	Comment       string            `json:"comment"`
	Status        TransactionStatus `json:"status"`
	ReceiptURL    *string           `json:"receiptURL,omitempty"`
	DecidedBy     *string           `json:"decidedBy,omitempty"`
	DecidedAt     *time.Time        `json:"decidedAt,omitempty"`
	AuditFields
}

// Magnitude is the unsigned amount of the transaction.
func (t *Transaction) Magnitude() decimal.Decimal {
	return t.Amount.Abs()
}

// TransactionFilter narrows transaction listings. Empty fields match everything.
type TransactionFilter struct {
	UserID string
	Type   TransactionType
	Status TransactionStatus
	Limit  int
	Offset int
}
