package services

import (
	"context"
	"time"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
)

// Clock supplies the current time. Tests substitute a fixed clock.
type Clock interface {
	Now() time.Time
}

// AttachmentStore persists uploaded files outside the database.
type AttachmentStore interface {
	// Upload stores the attachment and returns the URL it can be fetched from.
	Upload(ctx context.Context, attachment domain.Attachment) (string, error)
	// Delete removes an object previously returned by Upload.
	Delete(ctx context.Context, url string) error
}

// AuditSink records audit entries. Failures are logged by the sink and never returned.
type AuditSink interface {
	Record(ctx context.Context, entry domain.AuditLog)
}

// SavingsChangeListener is notified after a committed change to a customer's saving balance.
type SavingsChangeListener interface {
	OnSavingsBalanceChanged(ctx context.Context, customerID string)
}
