package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bank_backoffice_app/internal/apperrors"
	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/bank_backoffice_app/internal/dto"
	"github.com/SscSPs/bank_backoffice_app/internal/utils"
	"github.com/google/uuid"
)

type employeeService struct {
	BaseService
	txManager       portsrepo.TransactionManager
	employeeRepo    portsrepo.EmployeeRepositoryFacade
	userRepo        portsrepo.UserRepositoryFacade
	clock           portssvc.Clock
	defaultPassword string
}

func NewEmployeeService(txManager portsrepo.TransactionManager, employeeRepo portsrepo.EmployeeRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, defaultPassword string, audit portssvc.AuditSink, clock portssvc.Clock) portssvc.EmployeeSvcFacade {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &employeeService{
		BaseService:     BaseService{Audit: audit},
		txManager:       txManager,
		employeeRepo:    employeeRepo,
		userRepo:        userRepo,
		clock:           clock,
		defaultPassword: defaultPassword,
	}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func validateStaffRole(role domain.Role) error {
	if !role.IsStaff() {
		return fmt.Errorf("%w: %q is not a staff role", apperrors.ErrValidation, role)
	}
	return nil
}

// authorizeRoleGrant stops non-admin staff from handing out admin logins.
func authorizeRoleGrant(actor domain.Actor, role domain.Role) error {
	if role == domain.RoleAdmin && actor.Role != domain.RoleAdmin {
		return fmt.Errorf("%w: only an admin may grant the admin role", apperrors.ErrForbidden)
	}
	return nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, actor domain.Actor) (*domain.Employee, error) {
	if err := validateStaffRole(req.Role); err != nil {
		return nil, err
	}
	if err := authorizeRoleGrant(actor, req.Role); err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(s.defaultPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.clock.Now()
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     email,
		PasswordHash: hash,
		Role:         req.Role,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	employee := domain.Employee{
		EmployeeID:  uuid.NewString(),
		UserID:      user.UserID,
		Name:        strings.TrimSpace(req.Name),
		Email:       email,
		Phone:       req.Phone,
		Department:  strings.TrimSpace(req.Department),
		Role:        req.Role,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	err = s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.SaveUser(txCtx, user); err != nil {
			return err
		}
		return s.employeeRepo.SaveEmployee(txCtx, employee)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to create employee", slog.String("email", email))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Employee created", slog.String("employee_id", employee.EmployeeID), slog.String("role", string(employee.Role)))
	s.RecordAudit(ctx, domain.AuditLog{
		UserID:      &actor.UserID,
		Action:      domain.AuditEmployeeCreated,
		Description: fmt.Sprintf("Created employee %s (%s) as %s", employee.EmployeeID, employee.Name, employee.Role),
	})
	return &employee, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return s.employeeRepo.FindEmployeeByID(ctx, employeeID)
}

func (s *employeeService) ListEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return employees, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, actor domain.Actor) (*domain.Employee, error) {
	if req.Role != nil {
		if err := validateStaffRole(*req.Role); err != nil {
			return nil, err
		}
		if err := authorizeRoleGrant(actor, *req.Role); err != nil {
			return nil, err
		}
	}

	var updated domain.Employee
	err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		employee, err := s.employeeRepo.FindEmployeeByID(txCtx, employeeID)
		if err != nil {
			return err
		}
		// Admin records, including their login email, are changed by admins only.
		if err := authorizeRoleGrant(actor, employee.Role); err != nil {
			return err
		}
		if req.Name != nil {
			employee.Name = strings.TrimSpace(*req.Name)
		}
		if req.Email != nil {
			employee.Email = strings.ToLower(strings.TrimSpace(*req.Email))
		}
		if req.Phone != nil {
			employee.Phone = *req.Phone
		}
		if req.Department != nil {
			employee.Department = strings.TrimSpace(*req.Department)
		}
		if req.Role != nil && *req.Role != employee.Role {
			if employee.UserID == actor.UserID {
				return fmt.Errorf("%w: you cannot change your own role", apperrors.ErrValidation)
			}
			employee.Role = *req.Role
		}
		employee.UpdatedAt = s.clock.Now()
		if err := s.employeeRepo.UpdateEmployee(txCtx, *employee); err != nil {
			return err
		}

		user, err := s.userRepo.FindUserByID(txCtx, employee.UserID)
		if err != nil {
			return err
		}
		if user.Username != employee.Email || user.Role != employee.Role {
			user.Username = employee.Email
			user.Role = employee.Role
			user.UpdatedAt = employee.UpdatedAt
			if err := s.userRepo.UpdateUser(txCtx, *user); err != nil {
				return err
			}
		}
		updated = *employee
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) &&
			!errors.Is(err, apperrors.ErrValidation) && !errors.Is(err, apperrors.ErrForbidden) {
			s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Employee updated", slog.String("employee_id", employeeID), slog.String("updated_by", actor.UserID))
	s.RecordAudit(ctx, domain.AuditLog{
		UserID:      &actor.UserID,
		Action:      domain.AuditEmployeeUpdated,
		Description: fmt.Sprintf("Updated employee %s (%s), role %s", updated.EmployeeID, updated.Name, updated.Role),
	})
	return &updated, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string, actorID string) error {
	err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		employee, err := s.employeeRepo.FindEmployeeByID(txCtx, employeeID)
		if err != nil {
			return err
		}
		if employee.UserID == actorID {
			return fmt.Errorf("%w: you cannot delete your own employee record", apperrors.ErrValidation)
		}
		return s.userRepo.DeleteUser(txCtx, employee.UserID)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to delete employee", slog.String("employee_id", employeeID))
		}
		return err
	}
	s.RecordAudit(ctx, domain.AuditLog{
		UserID:      &actorID,
		Action:      domain.AuditEmployeeDeleted,
		Description: fmt.Sprintf("Deleted employee %s", employeeID),
	})
	return nil
}
