package dto

import (
	"time"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DepositRequest is bound from a multipart form; the receipt arrives as the "receipt" file.
type DepositRequest struct {
	Amount decimal.Decimal `form:"amount" swaggertype:"string"`
	Reason string          `form:"reason" binding:"max=255"`
}

// WithdrawalRequest defines the data needed to request a withdrawal.
type WithdrawalRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`
	Reason string          `json:"reason" binding:"max=255"`
}

// LoanRequest defines the data needed to apply for a loan.
type LoanRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`
	Reason string          `json:"reason" binding:"required,max=255"`
}

// LoanRepaymentRequest is bound from a multipart form; a receipt file is optional.
type LoanRepaymentRequest struct {
	Amount decimal.Decimal `form:"amount" swaggertype:"string"`
	Reason string          `form:"reason" binding:"max=255"`
}

// ProcessTransactionRequest carries a staff decision on a transaction.
type ProcessTransactionRequest struct {
	Action  string `json:"action" binding:"required"`
	Comment string `json:"comment" binding:"max=500"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Type   string `form:"type"`
	Status string `form:"status"`
	UserID string `form:"userID"`
	Limit  int    `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int    `form:"offset,default=0" binding:"min=0"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                   `json:"transactionID"`
	UserID        string                   `json:"userID"`
	Type          domain.TransactionType   `json:"type"`
	Amount        decimal.Decimal          `json:"amount" swaggertype:"string"`
	Reason        string                   `json:"reason"`
	Comment       string                   `json:"comment,omitempty"`
	Status        domain.TransactionStatus `json:"status"`
	ReceiptURL    *string                  `json:"receiptURL,omitempty"`
	DecidedBy     *string                  `json:"decidedBy,omitempty"`
	DecidedAt     *time.Time               `json:"decidedAt,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		UserID:        t.UserID,
		Type:          t.Type,
		Amount:        t.Amount,
		Reason:        t.Reason,
		Comment:       t.Comment,
		Status:        t.Status,
		ReceiptURL:    t.ReceiptURL,
		DecidedBy:     t.DecidedBy,
		DecidedAt:     t.DecidedAt,
		CreatedAt:     t.CreatedAt,
	}
}

// ToListTransactionsResponse converts a slice of domain.Transaction to ListTransactionsResponse DTO
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: res}
}
