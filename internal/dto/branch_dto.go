package dto

import (
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
)

// CreateBranchRequest defines the structure for creating a branch.
type CreateBranchRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
}

// UpdateBranchRequest defines the structure for editing a branch. Nil fields
// are left unchanged.
type UpdateBranchRequest struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
}

// BranchResponse defines the structure for API responses containing branch details.
type BranchResponse struct {
	BranchID string `json:"branchID"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// ToBranchResponse converts a domain.Branch to BranchResponse DTO
func ToBranchResponse(b *domain.Branch) BranchResponse {
	return BranchResponse{
		BranchID: b.BranchID,
		Name:     b.Name,
		Location: b.Location,
	}
}

// ToListBranchResponse converts a slice of domain.Branch to response DTOs.
func ToListBranchResponse(branches []domain.Branch) []BranchResponse {
	responses := make([]BranchResponse, len(branches))
	for i := range branches {
		responses[i] = ToBranchResponse(&branches[i])
	}
	return responses
}
