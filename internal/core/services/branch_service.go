package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	portsrepo "github.com/samandar-s/exchange_office_app/internal/core/ports/repositories"
	portssvc "github.com/samandar-s/exchange_office_app/internal/core/ports/services"
	"github.com/samandar-s/exchange_office_app/internal/dto"
)

// branchService provides business logic for branch management.
type branchService struct {
	BaseService
	branchRepo portsrepo.BranchRepositoryFacade
}

// NewBranchService creates a new branch service.
func NewBranchService(branchRepo portsrepo.BranchRepositoryFacade, authorizer portssvc.AuthorizerSvc) portssvc.BranchSvcFacade {
	return &branchService{
		BaseService: BaseService{Authorizer: authorizer},
		branchRepo:  branchRepo,
	}
}

var _ portssvc.BranchSvcFacade = (*branchService)(nil)

// CreateBranch registers a new branch.
func (s *branchService) CreateBranch(ctx context.Context, actor domain.Actor, req dto.CreateBranchRequest) (*domain.Branch, error) {
	if err := s.Authorize(ctx, actor, domain.ActionManageBranches, domain.Resource{}); err != nil {
		return nil, err
	}

	now := time.Now()
	branch := domain.Branch{
		BranchID: uuid.NewString(),
		Name:     req.Name,
		Location: req.Location,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.branchRepo.SaveBranch(ctx, branch); err != nil {
		s.LogError(ctx, err, "Failed to save branch", "name", req.Name)
		return nil, fmt.Errorf("failed to create branch: %w", err)
	}

	return &branch, nil
}

// GetBranchByID retrieves a branch by its unique ID.
func (s *branchService) GetBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	branch, err := s.branchRepo.FindBranchByID(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get branch by ID: %w", err)
	}
	return branch, nil
}

// ListBranches retrieves the branches visible to the actor. Admins see all
// branches, managers only their assigned ones.
func (s *branchService) ListBranches(ctx context.Context, actor domain.Actor) ([]domain.Branch, error) {
	branches, err := s.branchRepo.ListBranches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	if actor.Role == domain.RoleAdmin {
		if branches == nil {
			return []domain.Branch{}, nil
		}
		return branches, nil
	}

	visible := make([]domain.Branch, 0, len(branches))
	for _, branch := range branches {
		if actor.CanAccessBranch(branch.BranchID) {
			visible = append(visible, branch)
		}
	}
	return visible, nil
}

// UpdateBranch applies partial updates to an existing branch.
func (s *branchService) UpdateBranch(ctx context.Context, actor domain.Actor, branchID string, req dto.UpdateBranchRequest) (*domain.Branch, error) {
	if err := s.Authorize(ctx, actor, domain.ActionManageBranches, domain.Resource{}); err != nil {
		return nil, err
	}

	branch, err := s.branchRepo.FindBranchByID(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load branch for update: %w", err)
	}

	if req.Name != nil {
		branch.Name = *req.Name
	}
	if req.Location != nil {
		branch.Location = *req.Location
	}
	branch.LastUpdatedAt = time.Now()
	branch.LastUpdatedBy = actor.UserID

	if err := s.branchRepo.UpdateBranch(ctx, *branch); err != nil {
		s.LogError(ctx, err, "Failed to update branch", "branch_id", branchID)
		return nil, fmt.Errorf("failed to update branch: %w", err)
	}

	return branch, nil
}

// DeleteBranch removes a branch.
func (s *branchService) DeleteBranch(ctx context.Context, actor domain.Actor, branchID string) error {
	if err := s.Authorize(ctx, actor, domain.ActionManageBranches, domain.Resource{}); err != nil {
		return err
	}

	if err := s.branchRepo.DeleteBranch(ctx, branchID); err != nil {
		s.LogError(ctx, err, "Failed to delete branch", "branch_id", branchID)
		return fmt.Errorf("failed to delete branch: %w", err)
	}
	return nil
}
