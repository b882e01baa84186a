package repositories

import (
	"context"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
)

// EmployeeRepositoryFacade defines persistence for staff records
type EmployeeRepositoryFacade interface {
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error)
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
	DeleteEmployee(ctx context.Context, employeeID string) error
}
