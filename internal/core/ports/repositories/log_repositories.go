package repositories

import (
	"context"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
)

// LogRepositoryFacade persists audit log entries
type LogRepositoryFacade interface {
	SaveLog(ctx context.Context, entry domain.AuditLog) error
	ListLogs(ctx context.Context, limit int, offset int) ([]domain.AuditLog, error)
	DeleteLog(ctx context.Context, logID string) error
}
