package dto

import "github.com/SscSPs/bank_backoffice_app/internal/core/domain"

type UserResponse struct {
	UserID         string      `json:"userID"`
	Username       string      `json:"username"`
	Role           domain.Role `json:"role"`
	ProfilePicture *string     `json:"profilePicture,omitempty"`
}

func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:         user.UserID,
		Username:       user.Username,
		Role:           user.Role,
		ProfilePicture: user.ProfilePicture,
	}
}
