package dto

import (
	"time"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
)

type CreateFeedbackRequest struct {
	Message string `json:"message" binding:"required,max=1000"`
}

type RespondFeedbackRequest struct {
	Response string `json:"response" binding:"required,max=1000"`
}

type FeedbackResponse struct {
	FeedbackID string    `json:"feedbackID"`
	UserID     string    `json:"userID"`
	Message    string    `json:"message"`
	Response   *string   `json:"response,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ListFeedbackResponse struct {
	Feedback []FeedbackResponse `json:"feedback"`
}

func ToFeedbackResponse(f *domain.Feedback) FeedbackResponse {
	return FeedbackResponse{
		FeedbackID: f.FeedbackID,
		UserID:     f.UserID,
		Message:    f.Message,
		Response:   f.Response,
		CreatedAt:  f.CreatedAt,
	}
}

func ToListFeedbackResponse(items []domain.Feedback) ListFeedbackResponse {
	res := make([]FeedbackResponse, len(items))
	for i := range items {
		res[i] = ToFeedbackResponse(&items[i])
	}
	return ListFeedbackResponse{Feedback: res}
}
