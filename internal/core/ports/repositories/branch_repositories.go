package repositories

import (
	"context"

	"github.com/samandar-s/exchange_office_app/internal/core/domain"
)

// BranchReader defines read operations for branch data
type BranchReader interface {
	// FindBranchByID retrieves a specific branch.
	FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error)

	// ListBranches retrieves all branches.
	ListBranches(ctx context.Context) ([]domain.Branch, error)
}

// BranchWriter defines write operations for branch data
type BranchWriter interface {
	// SaveBranch persists a new branch.
	SaveBranch(ctx context.Context, branch domain.Branch) error

	// UpdateBranch updates an existing branch.
	UpdateBranch(ctx context.Context, branch domain.Branch) error

	// DeleteBranch removes a branch.
	DeleteBranch(ctx context.Context, branchID string) error
}

// BranchRepositoryFacade combines all branch-related repository interfaces
type BranchRepositoryFacade interface {
	BranchReader
	BranchWriter
}
