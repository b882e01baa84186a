package services

import (
	"context"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	"github.com/SscSPs/bank_backoffice_app/internal/dto"
)

// AuditSvcFacade manages the audit log and acts as the AuditSink for other services.
type AuditSvcFacade interface {
	AuditSink
	CreateLog(ctx context.Context, req dto.CreateLogRequest, actorID string) (*domain.AuditLog, error)
	ListLogs(ctx context.Context, limit, offset int) ([]domain.AuditLog, error)
	DeleteLog(ctx context.Context, logID string) error
}
