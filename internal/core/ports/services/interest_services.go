package services

import (
	"context"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
)

// InterestSvcFacade credits savings interest at most once per calendar year per customer.
type InterestSvcFacade interface {
	// Accrue credits interest for one customer if any is due.
	Accrue(ctx context.Context, customerID string) (domain.AccrualResult, error)

	// AccrueAll runs Accrue for every customer. A failure for one customer is
	// counted in the summary and does not stop the sweep.
	AccrueAll(ctx context.Context) (domain.SweepSummary, error)

	SavingsChangeListener
}
