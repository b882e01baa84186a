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
)

type feedbackService struct {
	BaseService
	feedbackRepo portsrepo.FeedbackRepositoryFacade
	clock        portssvc.Clock
}

func NewFeedbackService(feedbackRepo portsrepo.FeedbackRepositoryFacade, audit portssvc.AuditSink, clock portssvc.Clock) portssvc.FeedbackSvcFacade {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &feedbackService{BaseService: BaseService{Audit: audit}, feedbackRepo: feedbackRepo, clock: clock}
}

var _ portssvc.FeedbackSvcFacade = (*feedbackService)(nil)

func (s *feedbackService) SubmitFeedback(ctx context.Context, userID string, req dto.CreateFeedbackRequest) (*domain.Feedback, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, fmt.Errorf("%w: message must not be empty", apperrors.ErrValidation)
	}
	now := s.clock.Now()
	feedback := domain.Feedback{
		FeedbackID:  uuid.NewString(),
		UserID:      userID,
		Message:     message,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.feedbackRepo.SaveFeedback(ctx, feedback); err != nil {
		s.LogError(ctx, err, "Failed to save feedback", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}
	return &feedback, nil
}

func (s *feedbackService) ListFeedback(ctx context.Context, limit, offset int) ([]domain.Feedback, error) {
	items, err := s.feedbackRepo.ListFeedback(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list feedback")
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	if items == nil {
		return []domain.Feedback{}, nil
	}
	return items, nil
}

func (s *feedbackService) RespondToFeedback(ctx context.Context, feedbackID string, req dto.RespondFeedbackRequest, actorID string) (*domain.Feedback, error) {
	response := strings.TrimSpace(req.Response)
	if response == "" {
		return nil, fmt.Errorf("%w: response must not be empty", apperrors.ErrValidation)
	}
	feedback, err := s.feedbackRepo.FindFeedbackByID(ctx, feedbackID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find feedback", slog.String("feedback_id", feedbackID))
		}
		return nil, err
	}
	feedback.Response = &response
	feedback.UpdatedAt = s.clock.Now()
	if err := s.feedbackRepo.UpdateFeedbackResponse(ctx, *feedback); err != nil {
		s.LogError(ctx, err, "Failed to store feedback response", slog.String("feedback_id", feedbackID))
		return nil, err
	}
	s.RecordAudit(ctx, domain.AuditLog{
		UserID:      &actorID,
		Action:      domain.AuditFeedbackResponded,
		Description: fmt.Sprintf("Responded to feedback %s", feedbackID),
	})
	return feedback, nil
}
