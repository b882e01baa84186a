package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is the row shape of the customers table.
// Salary and GovBureau are nullable; LastInterestCalculation is a DATE column.
type Customer struct {
	CustomerID              string           `db:"customer_id"`
	UserID                  string           `db:"user_id"`
	Phone                   string           `db:"phone"`
	AccountNo               string           `db:"account_no"`
	FirstName               string           `db:"fname"`
	LastName                string           `db:"lname"`
	Age                     int              `db:"age"`
	Sex                     string           `db:"sex"`
	Email                   string           `db:"email"`
	SavingBalance           decimal.Decimal  `db:"saving_balance"`
	LoanBalance             decimal.Decimal  `db:"loan_balance"`
	Salary                  *decimal.Decimal `db:"salary"`
	GovBureau               *string          `db:"gov_bureau"`
	Status                  string           `db:"status"`
	LastInterestCalculation *time.Time       `db:"last_interest_calculation"`
	AuditFields
}
