package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GovBureau identifies the federal government bureau a customer works for.
type GovBureau string

const (
	TradeBureau                              GovBureau = "trade_bureau"
	FinanceBureau                            GovBureau = "finance_bureau"
	EnvironmentalProtectionAuthority         GovBureau = "environmental_protection_authority"
	GovPropertyAdministrationAuthority       GovBureau = "gov_property_administration_authority"
	PublicProcurementPropertyDisposalService GovBureau = "public_procurement_property_disposal_service"
)

// GovBureaus lists every recognised bureau.
var GovBureaus = []GovBureau{
	TradeBureau,
	FinanceBureau,
	EnvironmentalProtectionAuthority,
	GovPropertyAdministrationAuthority,
	PublicProcurementPropertyDisposalService,
}

// IsValid reports whether b is one of the recognised bureaus.
func (b GovBureau) IsValid() bool {
	for _, known := range GovBureaus {
		if b == known {
			return true
		}
	}
	return false
}

// Sex of a customer as captured at onboarding.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
	Other  Sex = "other"
)

// CustomerStatusActive is the status every customer is onboarded with.
const CustomerStatusActive = "active"

// Customer is a bank customer together with their ledger: the saving balance,
// the loan balance (negative while debt is outstanding) and the date interest
// was last credited.
type Customer struct {
	CustomerID              string           `json:"customerID"`
	UserID                  string           `json:"userID"`
	Phone                   string           `json:"phone"`
	AccountNo               string           `json:"accountNo"`
	FirstName               string           `json:"fname"`
	LastName                string           `json:"lname"`
	Age                     int              `json:"age"`
	Sex                     Sex              `json:"sex"`
	Email                   string           `json:"email"`
	SavingBalance           decimal.Decimal  `json:"savingBalance"`
	LoanBalance             decimal.Decimal  `json:"loanBalance"`
	Salary                  *decimal.Decimal `json:"salary,omitempty"`
	GovBureau               *GovBureau       `json:"govBureau,omitempty"`
	Status                  string           `json:"status"`
	LastInterestCalculation *time.Time       `json:"lastInterestCalculation,omitempty"`
	AuditFields
}

// HasOutstandingLoan reports whether the customer still owes money.
func (c *Customer) HasOutstandingLoan() bool {
	return c.LoanBalance.IsNegative()
}

// InterestBaseDate is the date elapsed interest years are counted from.
func (c *Customer) InterestBaseDate() time.Time {
	if c.LastInterestCalculation != nil {
		return *c.LastInterestCalculation
	}
	return c.CreatedAt
}

// LedgerDelta is a change to apply to a customer's balances.
type LedgerDelta struct {
	Saving decimal.Decimal
	Loan   decimal.Decimal
}

// IsZero reports whether applying d would leave both balances unchanged.
func (d LedgerDelta) IsZero() bool {
	return d.Saving.IsZero() && d.Loan.IsZero()
}

// Apply returns the customer balances after the delta.
func (d LedgerDelta) Apply(c Customer) Customer {
	c.SavingBalance = c.SavingBalance.Add(d.Saving)
	c.LoanBalance = c.LoanBalance.Add(d.Loan)
	return c
}
