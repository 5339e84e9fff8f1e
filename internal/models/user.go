package models

import "time"

// User represents a back-office user row. Branch assignments live in the
// user_branches join table and are loaded separately.
type User struct {
	UserID                 string     `json:"userID"` // Primary Key (UUID)
	Name                   string     `json:"name"`
	Email                  string     `json:"email"`
	Phone                  string     `json:"phone"`
	Role                   string     `json:"role"` // ADMIN or MANAGER
	PasswordHash           string     `json:"-"`
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	DeletedAt              *time.Time `json:"deletedAt,omitempty"`
	AuditFields
}
