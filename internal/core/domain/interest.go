package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccrualOutcome says what an accrual attempt did to a customer.
type AccrualOutcome string

const (
	AccrualCredited       AccrualOutcome = "credited"
	AccrualAlreadyAccrued AccrualOutcome = "already_accrued"
	AccrualNothingElapsed AccrualOutcome = "nothing_elapsed"
)

// AccrualResult reports the outcome of accruing interest for one customer.
type AccrualResult struct {
	CustomerID              string          `json:"customerID"`
	Outcome                 AccrualOutcome  `json:"outcome"`
	ElapsedYears            int             `json:"elapsedYears"`
	Interest                decimal.Decimal `json:"interest"`
	SavingBalance           decimal.Decimal `json:"savingBalance"`
	LastInterestCalculation *time.Time      `json:"lastInterestCalculation,omitempty"`
}

// SweepSummary aggregates the results of accruing interest for every customer.
type SweepSummary struct {
	Processed      int             `json:"processed"`
	Credited       int             `json:"credited"`
	AlreadyAccrued int             `json:"alreadyAccrued"`
	NothingElapsed int             `json:"nothingElapsed"`
	Failed         int             `json:"failed"`
	TotalInterest  decimal.Decimal `json:"totalInterest"`
	FailedIDs      []string        `json:"failedCustomerIDs,omitempty"`
}

// Add folds a single result into the summary.
func (s *SweepSummary) Add(r AccrualResult) {
	s.Processed++
	switch r.Outcome {
	case AccrualCredited:
		s.Credited++
		s.TotalInterest = s.TotalInterest.Add(r.Interest)
	case AccrualAlreadyAccrued:
		s.AlreadyAccrued++
	case AccrualNothingElapsed:
		s.NothingElapsed++
	}
}

// AddFailure records a customer the sweep could not accrue interest for.
func (s *SweepSummary) AddFailure(customerID string) {
	s.Processed++
	s.Failed++
	s.FailedIDs = append(s.FailedIDs, customerID)
}

// WholeYearsBetween counts complete calendar years from from to to.
// The result is negative when to is before from.
func WholeYearsBetween(from, to time.Time) int {
	if to.Before(from) {
		return -WholeYearsBetween(to, from)
	}
	years := to.Year() - from.Year()
	if years > 0 && from.AddDate(years, 0, 0).After(to) {
		years--
	}
	return years
}

// WholeMonthsBetween counts complete calendar months from from to to.
// The result is negative when to is before from.
func WholeMonthsBetween(from, to time.Time) int {
	if to.Before(from) {
		return -WholeMonthsBetween(to, from)
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if months > 0 && from.AddDate(0, months, 0).After(to) {
		months--
	}
	return months
}

// AccruedThisYear reports whether interest was already credited in now's calendar year.
func AccruedThisYear(last *time.Time, now time.Time) bool {
	return last != nil && last.Year() >= now.Year()
}

// SimpleInterest is balance * rate * years rounded to cents.
func SimpleInterest(balance, rate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 || !balance.IsPositive() {
		return decimal.Zero
	}
	return balance.Mul(rate).Mul(decimal.NewFromInt(int64(years))).Round(2)
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
