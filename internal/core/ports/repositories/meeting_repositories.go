package repositories

import (
	"context"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
)

type MeetingRepositoryFacade interface {
	SaveMeeting(ctx context.Context, meeting domain.Meeting) error
	// ListMeetings returns every meeting ordered by date, soonest first.
	ListMeetings(ctx context.Context) ([]domain.Meeting, error)
}
