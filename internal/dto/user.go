package dto

import (
	"time"

	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
)

// RegisterTenantRequest is the admin payload for registering a new tenant.
// The system generates a temporary password; none is accepted here.
type RegisterTenantRequest struct {
	Email       string `json:"email" binding:"required,email"`
	FullName    string `json:"fullName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// UpdateUserRequest defines the fields an admin may edit directly.
// Pointers distinguish omitted fields from zero values.
type UpdateUserRequest struct {
	FullName    *string `json:"fullName"`
	PhoneNumber *string `json:"phoneNumber"`
}

// UserResponse is the directory entry returned to clients.
type UserResponse struct {
	UserID               string          `json:"userID"`
	Email                string          `json:"email"`
	FullName             string          `json:"fullName"`
	PhoneNumber          string          `json:"phoneNumber"`
	UserType             domain.UserType `json:"userType"`
	IsStaff              bool            `json:"isStaff"`
	HasTemporaryPassword bool            `json:"hasTemporaryPassword"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:               u.UserID,
		Email:                u.Email,
		FullName:             u.FullName,
		PhoneNumber:          u.PhoneNumber,
		UserType:             u.UserType,
		IsStaff:              u.IsStaff,
		HasTemporaryPassword: u.HasTemporaryPassword,
		CreatedAt:            u.CreatedAt,
	}
}

// RegisterTenantResponse returns the new tenant together with the one-time
// temporary password the admin hands over out of band.
type RegisterTenantResponse struct {
	Tenant            UserResponse `json:"tenant"`
	TemporaryPassword string       `json:"temporaryPassword"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse.
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses}
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the access token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ChangePasswordRequest replaces the caller's password (clearing the
// temporary flag).
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}
