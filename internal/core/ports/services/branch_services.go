package services

import (
	"context"

	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	"github.com/samandar-s/exchange_office_app/internal/dto"
)

// BranchReaderSvc defines read operations for branches
type BranchReaderSvc interface {
	// GetBranchByID retrieves a branch by its unique ID
	GetBranchByID(ctx context.Context, branchID string) (*domain.Branch, error)

	// ListBranches retrieves the branches visible to the actor
	ListBranches(ctx context.Context, actor domain.Actor) ([]domain.Branch, error)
}

// BranchWriterSvc defines write operations for branches
type BranchWriterSvc interface {
	// CreateBranch registers a new branch
	CreateBranch(ctx context.Context, actor domain.Actor, req dto.CreateBranchRequest) (*domain.Branch, error)

	// UpdateBranch applies partial updates to an existing branch
	UpdateBranch(ctx context.Context, actor domain.Actor, branchID string, req dto.UpdateBranchRequest) (*domain.Branch, error)

	// DeleteBranch removes a branch
	DeleteBranch(ctx context.Context, actor domain.Actor, branchID string) error
}

// BranchSvcFacade combines all branch service interfaces
type BranchSvcFacade interface {
	BranchReaderSvc
	BranchWriterSvc
}
