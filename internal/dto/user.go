package dto

import (
	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to sign up a user.
type CreateUserRequest struct {
	Username string      `json:"username" binding:"required,max=255"`
	Password string      `json:"password" binding:"required,min=8"`
	Role     domain.Role `json:"role" binding:"required,oneof=admin manager accountant loan-committee customer"`
}

// SignupRequest defines the public sign-up payload. Sign-ups always get the customer role.
type SignupRequest struct {
	Username string `json:"username" binding:"required,max=255"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Username *string      `json:"username" binding:"omitempty,max=255"`
	Role     *domain.Role `json:"role" binding:"omitempty,oneof=admin manager accountant loan-committee customer"`
}

// ChangePasswordRequest defines the data needed to change the caller's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,nefield=CurrentPassword"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}
