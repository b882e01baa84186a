package dto

import (
	"time"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
)

// CreateMeetingRequest defines the data needed to schedule a meeting.
// Date is YYYY-MM-DD and Time is HH:MM.
type CreateMeetingRequest struct {
	Title     string `json:"title" binding:"required,max=255"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	Time      string `json:"time" binding:"required,datetime=15:04"`
	Location  string `json:"location" binding:"required,max=255"`
	Attendees string `json:"attendees"`
	Agenda    string `json:"agenda"`
}

type MeetingResponse struct {
	MeetingID string    `json:"meetingID"`
	UserID    string    `json:"userID"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Location  string    `json:"location"`
	Attendees string    `json:"attendees"`
	Agenda    string    `json:"agenda"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListMeetingsResponse struct {
	Meetings []MeetingResponse `json:"meetings"`
}

func ToMeetingResponse(m *domain.Meeting) MeetingResponse {
	return MeetingResponse{
		MeetingID: m.MeetingID,
		UserID:    m.UserID,
		Title:     m.Title,
		Date:      m.Date.Format(time.DateOnly),
		Time:      m.Time,
		Location:  m.Location,
		Attendees: m.Attendees,
		Agenda:    m.Agenda,
		CreatedAt: m.CreatedAt,
	}
}

func ToListMeetingsResponse(meetings []domain.Meeting) ListMeetingsResponse {
	res := make([]MeetingResponse, len(meetings))
	for i := range meetings {
		res[i] = ToMeetingResponse(&meetings[i])
	}
	return ListMeetingsResponse{Meetings: res}
}
