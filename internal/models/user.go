package models

// User represents a login of the application, staff or customer.
type User struct {
	UserID         string  `db:"user_id"`
	Username       string  `db:"username"`
	PasswordHash   string  `db:"password_hash"`
	Role           string  `db:"role"`
	ProfilePicture *string `db:"profile_picture"`
	AuditFields
}
