package domain

import (
	"strings"
	"time"
)

// Meeting is an internal staff meeting. Attendees is free text naming the invited roles.
type Meeting struct {
	MeetingID string    `json:"meetingID"`
	UserID    string    `json:"userID"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Time      string    `json:"time"`
	Location  string    `json:"location"`
	Attendees string    `json:"attendees"`
	Agenda    string    `json:"agenda"`
	AuditFields
}

// VisibleTo reports whether a user holding role may see the meeting.
// Managers see every meeting.
func (m *Meeting) VisibleTo(role Role) bool {
	if role == RoleManager {
		return true
	}
	return strings.Contains(strings.ToLower(m.Attendees), string(role))
}
