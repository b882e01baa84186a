package domain

// Employee is a staff member record linked to a login user holding a staff role.
type Employee struct {
	EmployeeID string `json:"employeeID"`
	UserID     string `json:"userID"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Role       Role   `json:"role"`
	AuditFields
}
