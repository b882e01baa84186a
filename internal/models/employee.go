package models

type Employee struct {
	EmployeeID string `db:"employee_id"`
	UserID     string `db:"user_id"`
	Name       string `db:"name"`
	Email      string `db:"email"`
	Phone      string `db:"phone"`
	Department string `db:"department"`
	Role       string `db:"role"`
	AuditFields
}
