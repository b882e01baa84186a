package services

import (
	"context"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	"github.com/SscSPs/bank_backoffice_app/internal/dto"
)

type MeetingSvcFacade interface {
	CreateMeeting(ctx context.Context, req dto.CreateMeetingRequest, actor domain.Actor) (*domain.Meeting, error)
	// ListMeetings returns the meetings visible to the actor.
	ListMeetings(ctx context.Context, actor domain.Actor) ([]domain.Meeting, error)
}
