package services

import (
	"context"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	"github.com/SscSPs/bank_backoffice_app/internal/dto"
)

type EmployeeSvcFacade interface {
	// CreateEmployee creates the employee and its staff login in one transaction.
	// Only admins may create admin logins.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, actor domain.Actor) (*domain.Employee, error)
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, error)
	// UpdateEmployee keeps the login's username and role in step with the employee.
	// Nobody may change the role on their own record.
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, actor domain.Actor) (*domain.Employee, error)
	// DeleteEmployee removes the employee together with its login user.
	DeleteEmployee(ctx context.Context, employeeID string, actorID string) error
}
