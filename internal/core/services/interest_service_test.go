package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/bank_backoffice_app/internal/apperrors"
	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/bank_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/bank_backoffice_app/internal/core/services"
	"github.com/SscSPs/bank_backoffice_app/internal/dto"
	"github.com/SscSPs/bank_backoffice_app/internal/platform/config"
	"github.com/stretchr/testify/suite"
)

// failingLedger fails the locked read for a single customer.
type failingLedger struct {
	*memStore
	failID string
}

func (f *failingLedger) FindCustomerByIDForUpdate(ctx context.Context, customerID string) (*domain.Customer, error) {
	if customerID == f.failID {
		return nil, errors.New("lock timeout")
	}
	return f.memStore.FindCustomerByIDForUpdate(ctx, customerID)
}

type InterestServiceTestSuite struct {
	suite.Suite
	store   *memStore
	audit   *recordingAudit
	clock   *fixedClock
	service portssvc.InterestSvcFacade
	now     time.Time
}

func (suite *InterestServiceTestSuite) SetupTest() {
	suite.now = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	suite.store = newMemStore()
	suite.audit = &recordingAudit{}
	suite.clock = newFixedClock(suite.now)
	suite.service = suite.newService(suite.store)
}

func (suite *InterestServiceTestSuite) newService(repo *memStore, options ...services.InterestOption) portssvc.InterestSvcFacade {
	options = append([]services.InterestOption{
		services.WithInterestClock(suite.clock),
		services.WithInterestAuditSink(suite.audit),
	}, options...)
	return services.NewInterestService(repo, repo, dec("0.12"), options...)
}

func TestInterestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InterestServiceTestSuite))
}

func (suite *InterestServiceTestSuite) TestAccrue_TwoYearsOnThousand() {
	suite.store.putCustomer(newTestCustomer("c1", "u1", "1000", "0", suite.now.AddDate(-2, 0, 0)))

	result, err := suite.service.Accrue(context.Background(), "c1")

	suite.Require().NoError(err)
	suite.Equal(domain.AccrualCredited, result.Outcome)
	suite.Equal(2, result.ElapsedYears)
	suite.True(dec("240").Equal(result.Interest))
	suite.True(dec("1240").Equal(result.SavingBalance))

	stored := suite.store.customer("c1")
	suite.True(dec("1240").Equal(stored.SavingBalance))
	suite.Require().NotNil(stored.LastInterestCalculation)
	suite.Equal(domain.DateOnly(suite.now), *stored.LastInterestCalculation)
	suite.Equal([]string{domain.AuditInterestCredited}, suite.audit.actions())
}

func (suite *InterestServiceTestSuite) TestAccrue_OnlyOncePerCalendarYear() {
	suite.store.putCustomer(newTestCustomer("c1", "u1", "1000", "0", suite.now.AddDate(-2, 0, 0)))
	ctx := context.Background()

	_, err := suite.service.Accrue(ctx, "c1")
	suite.Require().NoError(err)

	suite.clock.Set(suite.now.AddDate(0, 5, 0))
	result, err := suite.service.Accrue(ctx, "c1")

	suite.Require().NoError(err)
	suite.Equal(domain.AccrualAlreadyAccrued, result.Outcome)
	suite.True(result.Interest.IsZero())
	suite.True(dec("1240").Equal(suite.store.customer("c1").SavingBalance))
	suite.Equal(1, suite.store.callCount("UpdateCustomerLedger"))
}

func (suite *InterestServiceTestSuite) TestAccrue_CountsFromLastCalculation() {
	c := newTestCustomer("c1", "u1", "1000", "0", suite.now.AddDate(-5, 0, 0))
	c.LastInterestCalculation = timePtr(time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC))
	suite.store.putCustomer(c)

	result, err := suite.service.Accrue(context.Background(), "c1")

	suite.Require().NoError(err)
	suite.Equal(1, result.ElapsedYears)
	suite.True(dec("1120").Equal(suite.store.customer("c1").SavingBalance))
}

func (suite *InterestServiceTestSuite) TestAccrue_NothingElapsedPersistsNothing() {
	suite.store.putCustomer(newTestCustomer("c1", "u1", "1000", "0", suite.now.AddDate(0, -11, 0)))

	result, err := suite.service.Accrue(context.Background(), "c1")

	suite.Require().NoError(err)
	suite.Equal(domain.AccrualNothingElapsed, result.Outcome)
	stored := suite.store.customer("c1")
	suite.True(dec("1000").Equal(stored.SavingBalance))
	suite.Nil(stored.LastInterestCalculation)
	suite.Equal(0, suite.store.callCount("UpdateCustomerLedger"))
	suite.Empty(suite.audit.actions())
}

func (suite *InterestServiceTestSuite) TestAccrue_RoundsToCents() {
	suite.store.putCustomer(newTestCustomer("c1", "u1", "333.33", "0", suite.now.AddDate(-1, 0, 0)))

	result, err := suite.service.Accrue(context.Background(), "c1")

	suite.Require().NoError(err)
	suite.True(dec("40").Equal(result.Interest), "333.33 * 0.12 = 39.9996")
	suite.True(dec("373.33").Equal(suite.store.customer("c1").SavingBalance))
}

func (suite *InterestServiceTestSuite) TestAccrue_MissingCustomer() {
	_, err := suite.service.Accrue(context.Background(), "ghost")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InterestServiceTestSuite) TestAccrueAll_CollectsFailuresWithoutAborting() {
	suite.store.putCustomer(newTestCustomer("c1", "u1", "1000", "0", suite.now.AddDate(-2, 0, 0)))
	suite.store.putCustomer(newTestCustomer("c2", "u2", "500", "0", suite.now.AddDate(-1, 0, 0)))
	suite.store.putCustomer(newTestCustomer("c3", "u3", "800", "0", suite.now.AddDate(0, -3, 0)))
	suite.store.putCustomer(newTestCustomer("c4", "u4", "900", "0", suite.now.AddDate(-3, 0, 0)))

	repo := &failingLedger{memStore: suite.store, failID: "c4"}
	svc := services.NewInterestService(repo, repo, dec("0.12"),
		services.WithInterestClock(suite.clock),
		services.WithSweepConcurrency(2))

	summary, err := svc.AccrueAll(context.Background())

	suite.Require().NoError(err)
	suite.Equal(4, summary.Processed)
	suite.Equal(2, summary.Credited)
	suite.Equal(1, summary.NothingElapsed)
	suite.Equal(1, summary.Failed)
	suite.Equal([]string{"c4"}, summary.FailedIDs)
	suite.True(dec("300").Equal(summary.TotalInterest), "240 + 60")
	suite.True(dec("900").Equal(suite.store.customer("c4").SavingBalance))
}

func (suite *InterestServiceTestSuite) TestAccrueAll_SecondSweepCreditsNothing() {
	suite.store.putCustomer(newTestCustomer("c1", "u1", "1000", "0", suite.now.AddDate(-2, 0, 0)))
	ctx := context.Background()

	_, err := suite.service.AccrueAll(ctx)
	suite.Require().NoError(err)
	summary, err := suite.service.AccrueAll(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, summary.AlreadyAccrued)
	suite.True(summary.TotalInterest.IsZero())
	suite.True(dec("1240").Equal(suite.store.customer("c1").SavingBalance))
}

func (suite *InterestServiceTestSuite) TestAccrueAll_ListFailure() {
	suite.store.failOn("ListCustomerIDs", errors.New("db down"))

	_, err := suite.service.AccrueAll(context.Background())

	suite.Error(err)
}

func (suite *InterestServiceTestSuite) TestAccrueAll_CancelledContext() {
	suite.store.putCustomer(newTestCustomer("c1", "u1", "1000", "0", suite.now.AddDate(-2, 0, 0)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := suite.service.AccrueAll(ctx)

	suite.ErrorIs(err, context.Canceled)
	suite.True(dec("1000").Equal(suite.store.customer("c1").SavingBalance))
}

func (suite *InterestServiceTestSuite) TestOnSavingsBalanceChanged_Disabled() {
	suite.store.putCustomer(newTestCustomer("c1", "u1", "1000", "0", suite.now.AddDate(-2, 0, 0)))
	svc := suite.newService(suite.store, services.WithAccrueOnBalanceChange(false))

	svc.OnSavingsBalanceChanged(context.Background(), "c1")

	suite.True(dec("1000").Equal(suite.store.customer("c1").SavingBalance))
}

func (suite *InterestServiceTestSuite) TestOnSavingsBalanceChanged_SwallowsErrors() {
	suite.NotPanics(func() {
		suite.service.OnSavingsBalanceChanged(context.Background(), "ghost")
	})
}

// Deciding a deposit through the wired container triggers the post-commit accrual.
func (suite *InterestServiceTestSuite) TestDepositApprovalTriggersAccrual() {
	suite.store.putCustomer(newTestCustomer("c1", "u1", "1000", "0", suite.now.AddDate(-2, 0, 0)))
	suite.store.putTransaction(newTestTransaction("t1", "u1", domain.Deposit, "1000", domain.StatusPending, suite.now))
	cfg := &config.Config{
		InterestRate:                  dec("0.12"),
		InterestAccrueOnBalanceChange: true,
		InterestSweepConcurrency:      2,
		DefaultUserPassword:           "password123",
	}
	container := services.NewServiceContainer(cfg, suite.store.provider(), services.Dependencies{Clock: suite.clock})

	_, err := container.Transaction.Decide(context.Background(), "t1", dto.ProcessTransactionRequest{Action: "approve"}, "staff-1")

	suite.Require().NoError(err)
	stored := suite.store.customer("c1")
	suite.True(dec("2480").Equal(stored.SavingBalance), "2000 credited with two years at 12 percent")
	suite.Require().NotNil(stored.LastInterestCalculation)

	logs, err := container.Audit.ListLogs(context.Background(), 10, 0)
	suite.Require().NoError(err)
	actions := make([]string, 0, len(logs))
	for _, l := range logs {
		actions = append(actions, l.Action)
	}
	suite.ElementsMatch([]string{domain.AuditTransactionDecided, domain.AuditInterestCredited}, actions)
}
