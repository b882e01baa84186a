package services

import (
	"fmt"
	"time"

	"github.com/SscSPs/bank_backoffice_app/internal/apperrors"
	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	// maxLoanAmount is the absolute cap on a single loan.
	maxLoanAmount = decimal.NewFromInt(200000)
	// maxLoanSalaryShare is the share of salary a loan may not exceed.
	maxLoanSalaryShare = decimal.RequireFromString("0.12")
)

// minDepositHistoryMonths is how old a customer's first deposit must be before they may borrow.
const minDepositHistoryMonths = 6

// checkLoanEligibility applies the loan pre-conditions in order and reports the first one violated.
// firstDeposit is when the customer's earliest deposit was requested, nil if never.
func checkLoanEligibility(customer domain.Customer, firstDeposit *time.Time, amount decimal.Decimal, now time.Time) error {
	if !customer.LoanBalance.IsZero() {
		return apperrors.NewLoanEligibilityError("an outstanding loan must be fully repaid before applying for another")
	}

	if customer.GovBureau == nil || !customer.GovBureau.IsValid() {
		return apperrors.NewLoanEligibilityError("loans are only available to employees of a recognised government bureau")
	}

	if firstDeposit == nil || domain.WholeMonthsBetween(*firstDeposit, now) < minDepositHistoryMonths {
		return apperrors.NewLoanEligibilityError(fmt.Sprintf("the first deposit must be at least %d months old", minDepositHistoryMonths))
	}

	allowance := decimal.Zero
	if customer.Salary != nil {
		allowance = customer.Salary.Mul(maxLoanSalaryShare)
	}
	if amount.GreaterThan(allowance) {
		return apperrors.NewLoanEligibilityError(fmt.Sprintf("the requested amount exceeds 12%% of salary (at most %s)", allowance.StringFixed(2)))
	}

	if amount.GreaterThan(maxLoanAmount) {
		return apperrors.NewLoanEligibilityError(fmt.Sprintf("the requested amount exceeds the loan cap of %s", maxLoanAmount.StringFixed(2)))
	}

	return nil
}
