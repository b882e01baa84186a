package models

import "time"

type Meeting struct {
	MeetingID string    `db:"meeting_id"`
	UserID    string    `db:"user_id"`
	Title     string    `db:"title"`
	Date      time.Time `db:"meeting_date"`
	Time      string    `db:"meeting_time"`
	Location  string    `db:"location"`
	Attendees string    `db:"attendees"`
	Agenda    string    `db:"agenda"`
	AuditFields
}

type Feedback struct {
	FeedbackID string  `db:"feedback_id"`
	UserID     string  `db:"user_id"`
	Message    string  `db:"message"`
	Response   *string `db:"response"`
	AuditFields
}

// Log is a row of the audit log. UserID is cleared when the user is deleted.
type Log struct {
	LogID       string    `db:"log_id"`
	UserID      *string   `db:"user_id"`
	Action      string    `db:"action"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}
