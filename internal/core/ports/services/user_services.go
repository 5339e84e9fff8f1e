package services

import (
	"context"
	"time"

	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	"github.com/samandar-s/exchange_office_app/internal/dto"
)

// UserReaderSvc defines read operations for users
type UserReaderSvc interface {
	// GetUserByID retrieves a user by their unique ID
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by their email address
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves all active users
	ListUsers(ctx context.Context, actor domain.Actor) ([]domain.User, error)
}

// UserWriterSvc defines write operations for users
type UserWriterSvc interface {
	// CreateUser registers a new user with a hashed password
	CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateUser applies partial updates to an existing user
	UpdateUser(ctx context.Context, actor domain.Actor, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// DeleteUser soft-deletes a user
	DeleteUser(ctx context.Context, actor domain.Actor, userID string) error

	// AssignBranches replaces the set of branches assigned to a user
	AssignBranches(ctx context.Context, actor domain.Actor, userID string, branchIDs []string) (*domain.User, error)

	// FindOrCreateUserByGoogleInfo resolves a user from a verified Google
	// profile, creating a manager account on first sign-in.
	FindOrCreateUserByGoogleInfo(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)

	// UpdateRefreshToken stores a new hashed refresh token for the user
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash *string, expiresAt *time.Time) error
}

// UserSvcFacade combines all user service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
