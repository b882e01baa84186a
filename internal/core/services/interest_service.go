package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/SscSPs/bank_backoffice_app/internal/apperrors"
	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_backoffice_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type accrualGuardKey struct{}

// withAccrualGuard marks ctx as running inside an accrual so balance-change
// notifications raised from it do not start another one.
func withAccrualGuard(ctx context.Context) context.Context {
	return context.WithValue(ctx, accrualGuardKey{}, true)
}

func accrualInProgress(ctx context.Context) bool {
	guarded, _ := ctx.Value(accrualGuardKey{}).(bool)
	return guarded
}

type interestService struct {
	BaseService
	txManager      portsrepo.TransactionManager
	customerRepo   portsrepo.CustomerRepositoryFacade
	clock          portssvc.Clock
	rate           decimal.Decimal
	concurrency    int
	accrueOnChange bool
}

// InterestOption is a functional option for configuring the interest service
type InterestOption func(*interestService)

func WithInterestClock(clock portssvc.Clock) InterestOption {
	return func(s *interestService) {
		s.clock = clock
	}
}

func WithInterestAuditSink(sink portssvc.AuditSink) InterestOption {
	return func(s *interestService) {
		s.Audit = sink
	}
}

// WithSweepConcurrency bounds how many customers AccrueAll processes at once.
func WithSweepConcurrency(n int) InterestOption {
	return func(s *interestService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithAccrueOnBalanceChange toggles the post-commit accrual run after savings change.
func WithAccrueOnBalanceChange(enabled bool) InterestOption {
	return func(s *interestService) {
		s.accrueOnChange = enabled
	}
}

// NewInterestService creates the interest accrual engine crediting rate per elapsed whole year.
func NewInterestService(txManager portsrepo.TransactionManager, customerRepo portsrepo.CustomerRepositoryFacade, rate decimal.Decimal, options ...InterestOption) portssvc.InterestSvcFacade {
	svc := &interestService{
		txManager:      txManager,
		customerRepo:   customerRepo,
		clock:          NewSystemClock(),
		rate:           rate,
		concurrency:    4,
		accrueOnChange: true,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InterestSvcFacade = (*interestService)(nil)

func (s *interestService) Accrue(ctx context.Context, customerID string) (domain.AccrualResult, error) {
	ctx = withAccrualGuard(ctx)
	now := s.clock.Now()

	var result domain.AccrualResult
	err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		customer, err := s.customerRepo.FindCustomerByIDForUpdate(txCtx, customerID)
		if err != nil {
			return err
		}

		result = domain.AccrualResult{
			CustomerID:              customer.CustomerID,
			SavingBalance:           customer.SavingBalance,
			Interest:                decimal.Zero,
			LastInterestCalculation: customer.LastInterestCalculation,
		}

		if domain.AccruedThisYear(customer.LastInterestCalculation, now) {
			result.Outcome = domain.AccrualAlreadyAccrued
			return nil
		}

		years := domain.WholeYearsBetween(customer.InterestBaseDate(), now)
		if years <= 0 {
			result.Outcome = domain.AccrualNothingElapsed
			return nil
		}

		interest := domain.SimpleInterest(customer.SavingBalance, s.rate, years)
		today := domain.DateOnly(now)
		customer.SavingBalance = customer.SavingBalance.Add(interest)
		customer.LastInterestCalculation = &today
		customer.UpdatedAt = now

		if err := s.customerRepo.UpdateCustomerLedger(txCtx, *customer); err != nil {
			return err
		}

		result.Outcome = domain.AccrualCredited
		result.ElapsedYears = years
		result.Interest = interest
		result.SavingBalance = customer.SavingBalance
		result.LastInterestCalculation = &today
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to accrue interest", slog.String("customer_id", customerID))
		}
		return domain.AccrualResult{}, fmt.Errorf("accrue interest for customer %s: %w", customerID, err)
	}

	if result.Outcome == domain.AccrualCredited {
		s.LogInfo(ctx, "Interest credited",
			slog.String("customer_id", customerID),
			slog.Int("elapsed_years", result.ElapsedYears),
			slog.String("interest", result.Interest.StringFixed(2)))
		s.RecordAudit(ctx, domain.AuditLog{
			Action: domain.AuditInterestCredited,
			Description: fmt.Sprintf("Credited %s interest to customer %s for %d year(s); new saving balance %s",
				result.Interest.StringFixed(2), customerID, result.ElapsedYears, result.SavingBalance.StringFixed(2)),
		})
	} else {
		s.LogDebug(ctx, "No interest due", slog.String("customer_id", customerID), slog.String("outcome", string(result.Outcome)))
	}
	return result, nil
}

func (s *interestService) AccrueAll(ctx context.Context) (domain.SweepSummary, error) {
	summary := domain.SweepSummary{TotalInterest: decimal.Zero}

	ids, err := s.customerRepo.ListCustomerIDs(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers for interest sweep")
		return summary, fmt.Errorf("list customers: %w", err)
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(s.concurrency)

	for _, id := range ids {
		id := id
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := s.Accrue(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.AddFailure(id)
				return nil
			}
			summary.Add(result)
			return nil
		})
	}
	err = g.Wait()
	sort.Strings(summary.FailedIDs)

	s.LogInfo(ctx, "Interest sweep finished",
		slog.Int("processed", summary.Processed),
		slog.Int("credited", summary.Credited),
		slog.Int("failed", summary.Failed),
		slog.String("total_interest", summary.TotalInterest.StringFixed(2)))

	if err != nil {
		return summary, fmt.Errorf("interest sweep interrupted: %w", err)
	}
	return summary, nil
}

// OnSavingsBalanceChanged runs an accrual after a committed savings change.
// Failures are logged; the change that triggered it is already committed.
func (s *interestService) OnSavingsBalanceChanged(ctx context.Context, customerID string) {
	if !s.accrueOnChange {
		return
	}
	if accrualInProgress(ctx) {
		s.LogDebug(ctx, "Skipping nested interest accrual", slog.String("customer_id", customerID))
		return
	}
	if _, err := s.Accrue(ctx, customerID); err != nil {
		s.LogWarn(ctx, err, "Post-commit interest accrual failed", slog.String("customer_id", customerID))
	}
}
