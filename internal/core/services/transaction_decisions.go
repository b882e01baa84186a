package services

import (
	"fmt"

	"github.com/SscSPs/bank_backoffice_app/internal/apperrors"
	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
)

// decisionOutcome is what a decision does: the status to move to and the
// change to apply to the owner's balances.
type decisionOutcome struct {
	Status domain.TransactionStatus
	Delta  domain.LedgerDelta
}

// decisionHandler decides a transaction of one type. It must not mutate anything;
// the caller applies the outcome under lock.
type decisionHandler func(customer domain.Customer, txn domain.Transaction, action domain.DecisionAction) (decisionOutcome, error)

func decisionHandlers() map[domain.TransactionType]decisionHandler {
	return map[domain.TransactionType]decisionHandler{
		domain.Deposit:       decideDeposit,
		domain.Withdrawal:    decideWithdrawal,
		domain.Loan:          decideLoan,
		domain.LoanRepayment: decideLoanRepayment,
	}
}

var rejectedOutcome = decisionOutcome{Status: domain.StatusRejected}

// Only loans model recommendations; for every other type anything but approve rejects.
func decideDeposit(_ domain.Customer, txn domain.Transaction, action domain.DecisionAction) (decisionOutcome, error) {
	if action != domain.ActionApprove {
		return rejectedOutcome, nil
	}
	return decisionOutcome{
		Status: domain.StatusApproved,
		Delta:  domain.LedgerDelta{Saving: txn.Magnitude()},
	}, nil
}

func decideWithdrawal(customer domain.Customer, txn domain.Transaction, action domain.DecisionAction) (decisionOutcome, error) {
	if action != domain.ActionApprove {
		return rejectedOutcome, nil
	}
	if customer.SavingBalance.LessThan(txn.Magnitude()) {
		return decisionOutcome{}, fmt.Errorf("%w: saving balance %s does not cover withdrawal of %s",
			apperrors.ErrInsufficientFunds, customer.SavingBalance.StringFixed(2), txn.Magnitude().StringFixed(2))
	}
	return decisionOutcome{
		Status: domain.StatusApproved,
		Delta:  domain.LedgerDelta{Saving: txn.Magnitude().Neg()},
	}, nil
}

func decideLoanRepayment(customer domain.Customer, txn domain.Transaction, action domain.DecisionAction) (decisionOutcome, error) {
	if action != domain.ActionApprove {
		return rejectedOutcome, nil
	}
	if customer.LoanBalance.Add(txn.Magnitude()).IsPositive() {
		return decisionOutcome{}, fmt.Errorf("%w: repayment of %s against outstanding loan of %s",
			apperrors.ErrRepaymentExceedsLoan, txn.Magnitude().StringFixed(2), customer.LoanBalance.Abs().StringFixed(2))
	}
	return decisionOutcome{
		Status: domain.StatusApproved,
		Delta:  domain.LedgerDelta{Loan: txn.Magnitude()},
	}, nil
}

// decideLoan disburses on approval: the debt grows and the funds land in savings.
func decideLoan(_ domain.Customer, txn domain.Transaction, action domain.DecisionAction) (decisionOutcome, error) {
	switch action {
	case domain.ActionApprove:
		return decisionOutcome{
			Status: domain.StatusApproved,
			Delta: domain.LedgerDelta{
				Loan:   txn.Magnitude().Neg(),
				Saving: txn.Magnitude(),
			},
		}, nil
	case domain.ActionRecommendApproval:
		return decisionOutcome{Status: domain.StatusRecommendedApproval}, nil
	case domain.ActionRecommendRejection:
		return decisionOutcome{Status: domain.StatusRecommendedRejection}, nil
	default:
		return rejectedOutcome, nil
	}
}
