package domain

import "time"

// AuditLog is an append-only record of something that happened in the system.
// UserID is nil for entries written by background jobs.
type AuditLog struct {
	LogID       string    `json:"logID"`
	UserID      *string   `json:"userID,omitempty"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Audit action names recorded by the services.
const (
	AuditTransactionCreated = "transaction.created"
	AuditTransactionDecided = "transaction.decided"
	AuditInterestCredited   = "interest.credited"
	AuditCustomerRegistered = "customer.registered"
	AuditCustomerUpdated    = "customer.updated"
	AuditCustomerDeleted    = "customer.deleted"
	AuditEmployeeCreated    = "employee.created"
	AuditEmployeeUpdated    = "employee.updated"
	AuditEmployeeDeleted    = "employee.deleted"
	AuditUserCreated        = "user.created"
	AuditUserUpdated        = "user.updated"
	AuditUserDeleted        = "user.deleted"
	AuditLoginFailed        = "user.login_failed"
	AuditPasswordChanged    = "user.password_changed"
	AuditMeetingCreated     = "meeting.created"
	AuditFeedbackResponded  = "feedback.responded"
)
