package repositories

import (
	"context"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
)

type FeedbackRepositoryFacade interface {
	SaveFeedback(ctx context.Context, feedback domain.Feedback) error
	FindFeedbackByID(ctx context.Context, feedbackID string) (*domain.Feedback, error)
	ListFeedback(ctx context.Context, limit int, offset int) ([]domain.Feedback, error)
	UpdateFeedbackResponse(ctx context.Context, feedback domain.Feedback) error
}
