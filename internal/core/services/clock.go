package services

import (
	"time"

	portssvc "github.com/SscSPs/bank_backoffice_app/internal/core/ports/services"
)

type systemClock struct{}

// NewSystemClock returns a Clock reading the wall clock in UTC.
func NewSystemClock() portssvc.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
