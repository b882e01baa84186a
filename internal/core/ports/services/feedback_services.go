package services

import (
	"context"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	"github.com/SscSPs/bank_backoffice_app/internal/dto"
)

type FeedbackSvcFacade interface {
	SubmitFeedback(ctx context.Context, userID string, req dto.CreateFeedbackRequest) (*domain.Feedback, error)
	ListFeedback(ctx context.Context, limit, offset int) ([]domain.Feedback, error)
	RespondToFeedback(ctx context.Context, feedbackID string, req dto.RespondFeedbackRequest, actorID string) (*domain.Feedback, error)
}
