package mapping

import (
	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	"github.com/SscSPs/bank_backoffice_app/internal/models"
)

func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:  d.EmployeeID,
		UserID:      d.UserID,
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		Department:  d.Department,
		Role:        string(d.Role),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:  m.EmployeeID,
		UserID:      m.UserID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Department:  m.Department,
		Role:        domain.Role(m.Role),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelMeeting(d domain.Meeting) models.Meeting {
	return models.Meeting{
		MeetingID:   d.MeetingID,
		UserID:      d.UserID,
		Title:       d.Title,
		Date:        d.Date,
		Time:        d.Time,
		Location:    d.Location,
		Attendees:   d.Attendees,
		Agenda:      d.Agenda,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainMeeting(m models.Meeting) domain.Meeting {
	return domain.Meeting{
		MeetingID:   m.MeetingID,
		UserID:      m.UserID,
		Title:       m.Title,
		Date:        m.Date,
		Time:        m.Time,
		Location:    m.Location,
		Attendees:   m.Attendees,
		Agenda:      m.Agenda,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelFeedback(d domain.Feedback) models.Feedback {
	return models.Feedback{
		FeedbackID:  d.FeedbackID,
		UserID:      d.UserID,
		Message:     d.Message,
		Response:    d.Response,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainFeedback(m models.Feedback) domain.Feedback {
	return domain.Feedback{
		FeedbackID:  m.FeedbackID,
		UserID:      m.UserID,
		Message:     m.Message,
		Response:    m.Response,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLog converts an audit entry to its row shape.
func ToModelLog(d domain.AuditLog) models.Log {
	return models.Log{
		LogID:       d.LogID,
		UserID:      d.UserID,
		Action:      d.Action,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

func ToDomainLog(m models.Log) domain.AuditLog {
	return domain.AuditLog{
		LogID:       m.LogID,
		UserID:      m.UserID,
		Action:      m.Action,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}
