package pgsql

import (
	"context"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/bank_backoffice_app/internal/models"
	"github.com/SscSPs/bank_backoffice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

// Meetings, feedback and the audit log are small append-mostly tables.

type PgxMeetingRepository struct {
	BaseRepository
}

var _ portsrepo.MeetingRepositoryFacade = (*PgxMeetingRepository)(nil)

func (r *PgxMeetingRepository) SaveMeeting(ctx context.Context, meeting domain.Meeting) error {
	m := mapping.ToModelMeeting(meeting)
	query := `
		INSERT INTO meetings (meeting_id, user_id, title, meeting_date, meeting_time, location, attendees, agenda, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db(ctx).Exec(ctx, query, m.MeetingID, m.UserID, m.Title, m.Date, m.Time, m.Location, m.Attendees, m.Agenda, m.CreatedAt, m.UpdatedAt)
	return mapError(err, "failed to save meeting %s", m.MeetingID)
}

func (r *PgxMeetingRepository) ListMeetings(ctx context.Context) ([]domain.Meeting, error) {
	query := `
		SELECT meeting_id, user_id, title, meeting_date, meeting_time, location, attendees, agenda, created_at, updated_at
		FROM meetings
		ORDER BY meeting_date ASC, meeting_time ASC;
	`
	rows, err := r.db(ctx).Query(ctx, query)
	if err != nil {
		return nil, mapError(err, "failed to list meetings")
	}
	meetings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Meeting, error) {
		var m models.Meeting
		err := row.Scan(&m.MeetingID, &m.UserID, &m.Title, &m.Date, &m.Time, &m.Location, &m.Attendees, &m.Agenda, &m.CreatedAt, &m.UpdatedAt)
		return mapping.ToDomainMeeting(m), err
	})
	if err != nil {
		return nil, mapError(err, "failed to scan meeting rows")
	}
	return meetings, nil
}

type PgxFeedbackRepository struct {
	BaseRepository
}

var _ portsrepo.FeedbackRepositoryFacade = (*PgxFeedbackRepository)(nil)

const feedbackColumns = `feedback_id, user_id, message, response, created_at, updated_at`

func scanFeedback(row pgx.Row) (domain.Feedback, error) {
	var m models.Feedback
	if err := row.Scan(&m.FeedbackID, &m.UserID, &m.Message, &m.Response, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return domain.Feedback{}, err
	}
	return mapping.ToDomainFeedback(m), nil
}

func (r *PgxFeedbackRepository) SaveFeedback(ctx context.Context, feedback domain.Feedback) error {
	m := mapping.ToModelFeedback(feedback)
	query := `INSERT INTO feedback (` + feedbackColumns + `) VALUES ($1, $2, $3, $4, $5, $6);`
	_, err := r.db(ctx).Exec(ctx, query, m.FeedbackID, m.UserID, m.Message, m.Response, m.CreatedAt, m.UpdatedAt)
	return mapError(err, "failed to save feedback %s", m.FeedbackID)
}

func (r *PgxFeedbackRepository) FindFeedbackByID(ctx context.Context, feedbackID string) (*domain.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE feedback_id = $1;`
	f, err := scanFeedback(r.db(ctx).QueryRow(ctx, query, feedbackID))
	if err != nil {
		return nil, mapError(err, "feedback %s", feedbackID)
	}
	return &f, nil
}

func (r *PgxFeedbackRepository) ListFeedback(ctx context.Context, limit int, offset int) ([]domain.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback ORDER BY created_at DESC, feedback_id LIMIT $1 OFFSET $2;`
	rows, err := r.db(ctx).Query(ctx, query, limit, offset)
	if err != nil {
		return nil, mapError(err, "failed to list feedback")
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Feedback, error) {
		return scanFeedback(row)
	})
	if err != nil {
		return nil, mapError(err, "failed to scan feedback rows")
	}
	return items, nil
}

func (r *PgxFeedbackRepository) UpdateFeedbackResponse(ctx context.Context, feedback domain.Feedback) error {
	query := `UPDATE feedback SET response = $2, updated_at = $3 WHERE feedback_id = $1;`
	tag, err := r.db(ctx).Exec(ctx, query, feedback.FeedbackID, feedback.Response, feedback.UpdatedAt)
	if err != nil {
		return mapError(err, "failed to respond to feedback %s", feedback.FeedbackID)
	}
	return expectOne(tag, "feedback %s", feedback.FeedbackID)
}

// PgxLogRepository stores audit entries.
type PgxLogRepository struct {
	BaseRepository
}

var _ portsrepo.LogRepositoryFacade = (*PgxLogRepository)(nil)

func (r *PgxLogRepository) SaveLog(ctx context.Context, entry domain.AuditLog) error {
	m := mapping.ToModelLog(entry)
	query := `INSERT INTO logs (log_id, user_id, action, description, created_at) VALUES ($1, $2, $3, $4, $5);`
	_, err := r.db(ctx).Exec(ctx, query, m.LogID, m.UserID, m.Action, m.Description, m.CreatedAt)
	return mapError(err, "failed to save log %s", m.LogID)
}

func (r *PgxLogRepository) ListLogs(ctx context.Context, limit int, offset int) ([]domain.AuditLog, error) {
	query := `
		SELECT log_id, user_id, action, description, created_at
		FROM logs
		ORDER BY created_at DESC, log_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db(ctx).Query(ctx, query, limit, offset)
	if err != nil {
		return nil, mapError(err, "failed to list logs")
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AuditLog, error) {
		var m models.Log
		err := row.Scan(&m.LogID, &m.UserID, &m.Action, &m.Description, &m.CreatedAt)
		return mapping.ToDomainLog(m), err
	})
	if err != nil {
		return nil, mapError(err, "failed to scan log rows")
	}
	return entries, nil
}

func (r *PgxLogRepository) DeleteLog(ctx context.Context, logID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM logs WHERE log_id = $1;`, logID)
	if err != nil {
		return mapError(err, "failed to delete log %s", logID)
	}
	return expectOne(tag, "log %s", logID)
}
