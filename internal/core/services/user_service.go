package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samandar-s/exchange_office_app/internal/apperrors"
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	portsrepo "github.com/samandar-s/exchange_office_app/internal/core/ports/repositories"
	portssvc "github.com/samandar-s/exchange_office_app/internal/core/ports/services"
	"github.com/samandar-s/exchange_office_app/internal/dto"
	"github.com/samandar-s/exchange_office_app/internal/utils"
)

// userService provides business logic for user management.
type userService struct {
	BaseService
	userRepo   portsrepo.UserRepositoryFacade
	branchRepo portsrepo.BranchRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, branchRepo portsrepo.BranchRepositoryFacade, authorizer portssvc.AuthorizerSvc) portssvc.UserSvcFacade {
	return &userService{
		BaseService: BaseService{Authorizer: authorizer},
		userRepo:    userRepo,
		branchRepo:  branchRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser registers a new user with a hashed password.
func (s *userService) CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error) {
	if err := s.Authorize(ctx, actor, domain.ActionManageUsers, domain.Resource{}); err != nil {
		return nil, err
	}

	if err := s.validateBranchIDs(ctx, req.BranchIDs); err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         domain.Role(req.Role),
		BranchIDs:    req.BranchIDs,
		PasswordHash: passwordHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", "email", req.Email)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if len(req.BranchIDs) > 0 {
		if err := s.userRepo.SetUserBranches(ctx, user.UserID, req.BranchIDs); err != nil {
			s.LogError(ctx, err, "Failed to assign branches to new user", "user_id", user.UserID)
			return nil, fmt.Errorf("failed to assign branches: %w", err)
		}
	}

	return &user, nil
}

// GetUserByID retrieves a user by their unique ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// ListUsers retrieves all active users.
func (s *userService) ListUsers(ctx context.Context, actor domain.Actor) ([]domain.User, error) {
	if err := s.Authorize(ctx, actor, domain.ActionManageUsers, domain.Resource{}); err != nil {
		return nil, err
	}

	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

// UpdateUser applies partial updates to an existing user.
func (s *userService) UpdateUser(ctx context.Context, actor domain.Actor, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if err := s.Authorize(ctx, actor, domain.ActionManageUsers, domain.Resource{}); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user for update: %w", err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Role != nil {
		user.Role = domain.Role(*req.Role)
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = actor.UserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", "user_id", userID)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// DeleteUser soft-deletes a user.
func (s *userService) DeleteUser(ctx context.Context, actor domain.Actor, userID string) error {
	if err := s.Authorize(ctx, actor, domain.ActionManageUsers, domain.Resource{}); err != nil {
		return err
	}

	if actor.UserID == userID {
		return fmt.Errorf("%w: users cannot delete themselves", apperrors.ErrValidation)
	}

	if err := s.userRepo.MarkUserDeleted(ctx, userID, actor.UserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to delete user", "user_id", userID)
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// AssignBranches replaces the set of branches assigned to a user.
func (s *userService) AssignBranches(ctx context.Context, actor domain.Actor, userID string, branchIDs []string) (*domain.User, error) {
	if err := s.Authorize(ctx, actor, domain.ActionManageUsers, domain.Resource{}); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to load user for branch assignment: %w", err)
	}
	if err := s.validateBranchIDs(ctx, branchIDs); err != nil {
		return nil, err
	}

	if err := s.userRepo.SetUserBranches(ctx, userID, branchIDs); err != nil {
		s.LogError(ctx, err, "Failed to set user branches", "user_id", userID)
		return nil, fmt.Errorf("failed to assign branches: %w", err)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user after branch assignment: %w", err)
	}
	return user, nil
}

// FindOrCreateUserByGoogleInfo resolves a user from a verified Google
// profile, creating a manager account with no branch assignments on first
// sign-in.
func (s *userService) FindOrCreateUserByGoogleInfo(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	if !info.VerifiedEmail {
		return nil, fmt.Errorf("%w: google account email is not verified", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by google email: %w", err)
	}

	// First sign-in: provision a manager with no branch access until an
	// admin assigns some.
	randomPassword, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate placeholder password: %w", err)
	}
	passwordHash, err := utils.HashPassword(randomPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder password: %w", err)
	}

	now := time.Now()
	newUser := domain.User{
		UserID:       uuid.NewString(),
		Name:         info.Name,
		Email:        info.Email,
		Role:         domain.RoleManager,
		PasswordHash: passwordHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "google-oauth",
			LastUpdatedAt: now,
			LastUpdatedBy: "google-oauth",
		},
	}

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to provision user from google sign-in", "email", info.Email)
		return nil, fmt.Errorf("failed to create user from google profile: %w", err)
	}

	return &newUser, nil
}

// UpdateRefreshToken stores a new hashed refresh token for the user.
func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, tokenHash *string, expiresAt *time.Time) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, tokenHash, expiresAt); err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	return nil
}

// validateBranchIDs checks every referenced branch exists.
func (s *userService) validateBranchIDs(ctx context.Context, branchIDs []string) error {
	for _, branchID := range branchIDs {
		if _, err := s.branchRepo.FindBranchByID(ctx, branchID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: branch %s not found", apperrors.ErrValidation, branchID)
			}
			return fmt.Errorf("failed to validate branch %s: %w", branchID, err)
		}
	}
	return nil
}
