package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bank_backoffice_app/internal/apperrors"
	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/bank_backoffice_app/internal/dto"
	"github.com/google/uuid"
)

type meetingService struct {
	BaseService
	meetingRepo portsrepo.MeetingRepositoryFacade
	clock       portssvc.Clock
}

func NewMeetingService(meetingRepo portsrepo.MeetingRepositoryFacade, audit portssvc.AuditSink, clock portssvc.Clock) portssvc.MeetingSvcFacade {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &meetingService{BaseService: BaseService{Audit: audit}, meetingRepo: meetingRepo, clock: clock}
}

var _ portssvc.MeetingSvcFacade = (*meetingService)(nil)

func (s *meetingService) CreateMeeting(ctx context.Context, req dto.CreateMeetingRequest, actor domain.Actor) (*domain.Meeting, error) {
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return nil, fmt.Errorf("%w: time must be HH:MM", apperrors.ErrValidation)
	}

	now := s.clock.Now()
	meeting := domain.Meeting{
		MeetingID:   uuid.NewString(),
		UserID:      actor.UserID,
		Title:       strings.TrimSpace(req.Title),
		Date:        date,
		Time:        req.Time,
		Location:    strings.TrimSpace(req.Location),
		Attendees:   strings.TrimSpace(req.Attendees),
		Agenda:      strings.TrimSpace(req.Agenda),
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.meetingRepo.SaveMeeting(ctx, meeting); err != nil {
		s.LogError(ctx, err, "Failed to save meeting")
		return nil, fmt.Errorf("failed to save meeting: %w", err)
	}

	s.LogInfo(ctx, "Meeting created", slog.String("meeting_id", meeting.MeetingID))
	s.RecordAudit(ctx, domain.AuditLog{
		UserID:      &actor.UserID,
		Action:      domain.AuditMeetingCreated,
		Description: fmt.Sprintf("Scheduled meeting %q on %s %s", meeting.Title, req.Date, req.Time),
	})
	return &meeting, nil
}

func (s *meetingService) ListMeetings(ctx context.Context, actor domain.Actor) ([]domain.Meeting, error) {
	meetings, err := s.meetingRepo.ListMeetings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list meetings")
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	visible := make([]domain.Meeting, 0, len(meetings))
	for _, m := range meetings {
		if m.VisibleTo(actor.Role) {
			visible = append(visible, m)
		}
	}
	return visible, nil
}
