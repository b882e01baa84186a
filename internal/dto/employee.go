package dto

import (
	"time"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
)

// CreateEmployeeRequest defines the data needed to add a staff member.
// The employee's login username is their email address.
type CreateEmployeeRequest struct {
	Name       string      `json:"name" binding:"required,max=255"`
	Email      string      `json:"email" binding:"required,email"`
	Phone      string      `json:"phone" binding:"required,numeric,len=10"`
	Department string      `json:"department" binding:"required,max=255"`
	Role       domain.Role `json:"role" binding:"required,oneof=admin manager accountant loan-committee"`
}

// UpdateEmployeeRequest defines the employee fields that may change.
type UpdateEmployeeRequest struct {
	Name       *string      `json:"name" binding:"omitempty,max=255"`
	Email      *string      `json:"email" binding:"omitempty,email"`
	Phone      *string      `json:"phone" binding:"omitempty,numeric,len=10"`
	Department *string      `json:"department" binding:"omitempty,max=255"`
	Role       *domain.Role `json:"role" binding:"omitempty,oneof=admin manager accountant loan-committee"`
}

type EmployeeResponse struct {
	EmployeeID string      `json:"employeeID"`
	UserID     string      `json:"userID"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
	Department string      `json:"department"`
	Role       domain.Role `json:"role"`
	CreatedAt  time.Time   `json:"createdAt"`
}

type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID: e.EmployeeID,
		UserID:     e.UserID,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		Department: e.Department,
		Role:       e.Role,
		CreatedAt:  e.CreatedAt,
	}
}

func ToListEmployeesResponse(employees []domain.Employee) ListEmployeesResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return ListEmployeesResponse{Employees: res}
}
