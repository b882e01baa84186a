package mapping

import (
	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	"github.com/SscSPs/bank_backoffice_app/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	var bureau *string
	if d.GovBureau != nil {
		b := string(*d.GovBureau)
		bureau = &b
	}
	return models.Customer{
		CustomerID:              d.CustomerID,
		UserID:                  d.UserID,
		Phone:                   d.Phone,
		AccountNo:               d.AccountNo,
		FirstName:               d.FirstName,
		LastName:                d.LastName,
		Age:                     d.Age,
		Sex:                     string(d.Sex),
		Email:                   d.Email,
		SavingBalance:           d.SavingBalance,
		LoanBalance:             d.LoanBalance,
		Salary:                  d.Salary,
		GovBureau:               bureau,
		Status:                  d.Status,
		LastInterestCalculation: d.LastInterestCalculation,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	var bureau *domain.GovBureau
	if m.GovBureau != nil {
		b := domain.GovBureau(*m.GovBureau)
		bureau = &b
	}
	return domain.Customer{
		CustomerID:              m.CustomerID,
		UserID:                  m.UserID,
		Phone:                   m.Phone,
		AccountNo:               m.AccountNo,
		FirstName:               m.FirstName,
		LastName:                m.LastName,
		Age:                     m.Age,
		Sex:                     domain.Sex(m.Sex),
		Email:                   m.Email,
		SavingBalance:           m.SavingBalance,
		LoanBalance:             m.LoanBalance,
		Salary:                  m.Salary,
		GovBureau:               bureau,
		Status:                  m.Status,
		LastInterestCalculation: m.LastInterestCalculation,
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCustomerSlice converts a slice of model Customers to a slice of domain Customers
func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}
