package pgsql

import (
	"context"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/bank_backoffice_app/internal/models"
	"github.com/SscSPs/bank_backoffice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `employee_id, user_id, name, email, phone, department, role, created_at, updated_at`

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(base BaseRepository) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: base}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func scanEmployee(row pgx.Row) (domain.Employee, error) {
	var m models.Employee
	if err := row.Scan(&m.EmployeeID, &m.UserID, &m.Name, &m.Email, &m.Phone, &m.Department, &m.Role, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return domain.Employee{}, err
	}
	return mapping.ToDomainEmployee(m), nil
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db(ctx).Exec(ctx, query, m.EmployeeID, m.UserID, m.Name, m.Email, m.Phone, m.Department, m.Role, m.CreatedAt, m.UpdatedAt)
	return mapError(err, "failed to save employee %s", m.EmployeeID)
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`
	e, err := scanEmployee(r.db(ctx).QueryRow(ctx, query, employeeID))
	if err != nil {
		return nil, mapError(err, "employee %s", employeeID)
	}
	return &e, nil
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at DESC, employee_id LIMIT $1 OFFSET $2;`
	rows, err := r.db(ctx).Query(ctx, query, limit, offset)
	if err != nil {
		return nil, mapError(err, "failed to list employees")
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan employee row")
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating employee rows")
	}
	return employees, nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		UPDATE employees
		SET name = $2, email = $3, phone = $4, department = $5, role = $6, updated_at = $7
		WHERE employee_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query, m.EmployeeID, m.Name, m.Email, m.Phone, m.Department, m.Role, m.UpdatedAt)
	if err != nil {
		return mapError(err, "failed to update employee %s", m.EmployeeID)
	}
	return expectOne(tag, "employee %s", m.EmployeeID)
}

func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM employees WHERE employee_id = $1;`, employeeID)
	if err != nil {
		return mapError(err, "failed to delete employee %s", employeeID)
	}
	return expectOne(tag, "employee %s", employeeID)
}
