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
)

// systemDistinctID is the analytics identity for entries written by background jobs.
const systemDistinctID = "system"

// auditService persists audit entries and mirrors them to product analytics.
type auditService struct {
	BaseService
	logRepo portsrepo.LogRepositoryFacade
	events  utils.EventPublisher
	clock   portssvc.Clock
}

func NewAuditService(logRepo portsrepo.LogRepositoryFacade, events utils.EventPublisher, clock portssvc.Clock) portssvc.AuditSvcFacade {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &auditService{logRepo: logRepo, events: events, clock: clock}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// Record never fails the caller: the audited operation has already happened.
func (s *auditService) Record(ctx context.Context, entry domain.AuditLog) {
	if _, err := s.save(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to record audit entry", slog.String("action", entry.Action))
	}
}

func (s *auditService) CreateLog(ctx context.Context, req dto.CreateLogRequest, actorID string) (*domain.AuditLog, error) {
	action := strings.TrimSpace(req.Action)
	if action == "" {
		return nil, fmt.Errorf("%w: action must not be empty", apperrors.ErrValidation)
	}
	entry, err := s.save(ctx, domain.AuditLog{
		UserID:      &actorID,
		Action:      action,
		Description: strings.TrimSpace(req.Description),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create log entry")
		return nil, fmt.Errorf("failed to create log entry: %w", err)
	}
	return entry, nil
}

func (s *auditService) ListLogs(ctx context.Context, limit, offset int) ([]domain.AuditLog, error) {
	logs, err := s.logRepo.ListLogs(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list logs")
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	if logs == nil {
		return []domain.AuditLog{}, nil
	}
	return logs, nil
}

func (s *auditService) DeleteLog(ctx context.Context, logID string) error {
	if err := s.logRepo.DeleteLog(ctx, logID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete log entry", slog.String("log_id", logID))
		}
		return err
	}
	return nil
}

func (s *auditService) save(ctx context.Context, entry domain.AuditLog) (*domain.AuditLog, error) {
	if entry.LogID == "" {
		entry.LogID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.clock.Now()
	}
	if err := s.logRepo.SaveLog(ctx, entry); err != nil {
		return nil, err
	}

	if s.events != nil && s.events.IsInitialized() {
		distinctID := systemDistinctID
		if entry.UserID != nil {
			distinctID = *entry.UserID
		}
		s.events.Enqueue(distinctID, "audit_"+strings.ReplaceAll(entry.Action, ".", "_"), map[string]any{
			"log_id":      entry.LogID,
			"description": entry.Description,
		})
	}
	return &entry, nil
}
