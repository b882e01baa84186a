package mapping

import (
	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	"github.com/SscSPs/bank_backoffice_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		UserID:          d.UserID,
		TransactionType: string(d.Type),
		Amount:          d.Amount,
		Reason:          d.Reason,
		Comment:         d.Comment,
		Status:          string(d.Status),
		ReceiptURL:      d.ReceiptURL,
		DecidedBy:       d.DecidedBy,
		DecidedAt:       d.DecidedAt,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Type:          domain.TransactionType(m.TransactionType),
		Amount:        m.Amount,
		Reason:        m.Reason,
		Comment:       m.Comment,
		Status:        domain.TransactionStatus(m.Status),
		ReceiptURL:    m.ReceiptURL,
		DecidedBy:     m.DecidedBy,
		DecidedAt:     m.DecidedAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
