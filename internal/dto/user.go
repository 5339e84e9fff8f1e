package dto

import (
	"time"

	"github.com/samandar-s/exchange_office_app/internal/core/domain"
)

// CreateUserRequest defines the structure for an admin creating a user.
type CreateUserRequest struct {
	Name      string   `json:"name" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Phone     string   `json:"phone" binding:"omitempty,e164"`
	Password  string   `json:"password" binding:"required,min=8"`
	Role      string   `json:"role" binding:"required,oneof=ADMIN MANAGER"`
	BranchIDs []string `json:"branchIDs"`
}

// UpdateUserRequest defines the structure for editing a user. Nil fields are
// left unchanged.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty" binding:"omitempty,e164"`
	Role  *string `json:"role,omitempty" binding:"omitempty,oneof=ADMIN MANAGER"`
}

// AssignBranchesRequest replaces a user's branch assignments.
type AssignBranchesRequest struct {
	BranchIDs []string `json:"branchIDs" binding:"required"`
}

// UserResponse defines the structure for API responses containing user details.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	BranchIDs []string  `json:"branchIDs"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		BranchIDs: u.BranchIDs,
		CreatedAt: u.CreatedAt,
	}
}

// ToListUserResponse converts a slice of domain.User to response DTOs.
func ToListUserResponse(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses
}
