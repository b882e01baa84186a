package domain

// Role gates what a user may do in the back office.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleManager       Role = "manager"
	RoleAccountant    Role = "accountant"
	RoleLoanCommittee Role = "loan-committee"
	RoleCustomer      Role = "customer"
)

// Roles lists every role a user can hold.
var Roles = []Role{RoleAdmin, RoleManager, RoleAccountant, RoleLoanCommittee, RoleCustomer}

func (r Role) IsValid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// IsStaff reports whether the role belongs to a bank employee.
func (r Role) IsStaff() bool {
	return r.IsValid() && r != RoleCustomer
}

// User is a login identity. Customers and employees each own exactly one.
type User struct {
	UserID         string  `json:"userID"`
	Username       string  `json:"username"`
	PasswordHash   string  `json:"-"`
	Role           Role    `json:"role"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
	AuditFields
}

// Actor is the authenticated caller an operation runs on behalf of.
type Actor struct {
	UserID string
	Role   Role
}

// IsCustomer reports whether the actor is restricted to their own data.
func (a Actor) IsCustomer() bool {
	return a.Role == RoleCustomer
}
