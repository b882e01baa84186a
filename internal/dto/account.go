package dto

import (
	"time"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest defines the data needed to onboard a customer.
// The customer's login username is their email address.
type CreateCustomerRequest struct {
	Phone     string            `json:"phone" binding:"required,numeric,len=10"`
	AccountNo string            `json:"accountNo" binding:"required,numeric,min=10,max=18"`
	FirstName string            `json:"fname" binding:"required,max=100"`
	LastName  string            `json:"lname" binding:"required,max=100"`
	Age       int               `json:"age" binding:"required,min=25,max=100"`
	Sex       domain.Sex        `json:"sex" binding:"required,sex"`
	Email     string            `json:"email" binding:"required,email"`
	Salary    *decimal.Decimal  `json:"salary" swaggertype:"string"`
	GovBureau *domain.GovBureau `json:"govBureau" binding:"omitempty,govbureau"`
}

// UpdateCustomerRequest defines the profile fields staff may change.
// Balances are never updatable through this request.
type UpdateCustomerRequest struct {
	Phone     *string           `json:"phone" binding:"omitempty,numeric,len=10"`
	FirstName *string           `json:"fname" binding:"omitempty,max=100"`
	LastName  *string           `json:"lname" binding:"omitempty,max=100"`
	Age       *int              `json:"age" binding:"omitempty,min=25,max=100"`
	Sex       *domain.Sex       `json:"sex" binding:"omitempty,sex"`
	Email     *string           `json:"email" binding:"omitempty,email"`
	Salary    *decimal.Decimal  `json:"salary" swaggertype:"string"`
	GovBureau *domain.GovBureau `json:"govBureau" binding:"omitempty,govbureau"`
	Status    *string           `json:"status" binding:"omitempty,max=20"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID              string           `json:"customerID"`
	UserID                  string           `json:"userID"`
	Phone                   string           `json:"phone"`
	AccountNo               string           `json:"accountNo"`
	FirstName               string           `json:"fname"`
	LastName                string           `json:"lname"`
	Age                     int              `json:"age"`
	Sex                     domain.Sex       `json:"sex"`
	Email                   string           `json:"email"`
	SavingBalance           decimal.Decimal  `json:"savingBalance" swaggertype:"string"`
	LoanBalance             decimal.Decimal  `json:"loanBalance" swaggertype:"string"`
	Salary                  *decimal.Decimal `json:"salary,omitempty" swaggertype:"string"`
	GovBureau               *string          `json:"govBureau,omitempty"`
	Status                  string           `json:"status"`
	LastInterestCalculation *string          `json:"lastInterestCalculation,omitempty"`
	CreatedAt               time.Time        `json:"createdAt"`
}

// RegisterCustomerResponse is returned after onboarding: the customer and the login created for them.
type RegisterCustomerResponse struct {
	Customer CustomerResponse `json:"customer"`
	User     UserResponse     `json:"user"`
}

// ListCustomersParams defines query parameters for listing customers.
type ListCustomersParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListCustomersResponse wraps the list of customers.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	res := CustomerResponse{
		CustomerID:    c.CustomerID,
		UserID:        c.UserID,
		Phone:         c.Phone,
		AccountNo:     c.AccountNo,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Age:           c.Age,
		Sex:           c.Sex,
		Email:         c.Email,
		SavingBalance: c.SavingBalance,
		LoanBalance:   c.LoanBalance,
		Salary:        c.Salary,
		Status:        c.Status,
		CreatedAt:     c.CreatedAt,
	}
	if c.GovBureau != nil {
		b := string(*c.GovBureau)
		res.GovBureau = &b
	}
	if c.LastInterestCalculation != nil {
		d := c.LastInterestCalculation.Format(time.DateOnly)
		res.LastInterestCalculation = &d
	}
	return res
}

// ToListCustomersResponse converts a slice of domain.Customer to ListCustomersResponse DTO
func ToListCustomersResponse(customers []domain.Customer) ListCustomersResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return ListCustomersResponse{Customers: res}
}
