package dto

import (
	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccrualResponse is returned by the calculate-interest endpoint.
type AccrualResponse struct {
	CustomerID              string                `json:"customerID"`
	Outcome                 domain.AccrualOutcome `json:"outcome"`
	Message                 string                `json:"message"`
	ElapsedYears            int                   `json:"elapsedYears"`
	Interest                decimal.Decimal       `json:"interest" swaggertype:"string"`
	SavingBalance           decimal.Decimal       `json:"savingBalance" swaggertype:"string"`
	LastInterestCalculation *string               `json:"lastInterestCalculation,omitempty"`
}

var accrualMessages = map[domain.AccrualOutcome]string{
	domain.AccrualCredited:       "Interest calculated and added successfully.",
	domain.AccrualAlreadyAccrued: "Interest already calculated for this year.",
	domain.AccrualNothingElapsed: "No full year has elapsed since the last interest calculation.",
}

// ToAccrualResponse converts a domain.AccrualResult to AccrualResponse DTO
func ToAccrualResponse(r domain.AccrualResult) AccrualResponse {
	res := AccrualResponse{
		CustomerID:    r.CustomerID,
		Outcome:       r.Outcome,
		Message:       accrualMessages[r.Outcome],
		ElapsedYears:  r.ElapsedYears,
		Interest:      r.Interest,
		SavingBalance: r.SavingBalance,
	}
	if r.LastInterestCalculation != nil {
		d := r.LastInterestCalculation.Format("2006-01-02")
		res.LastInterestCalculation = &d
	}
	return res
}
