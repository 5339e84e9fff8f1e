package domain

// Actor is the authenticated caller context passed explicitly into every
// service operation that stamps records or filters by branch. It is never
// read from ambient state.
type Actor struct {
	UserID    string   `json:"userID"`
	Role      Role     `json:"role"`
	BranchIDs []string `json:"branchIDs"`
}

// CanAccessBranch reports whether the actor may operate on the given branch.
// Admins may access every branch, including the synthetic combined view.
func (a Actor) CanAccessBranch(branchID string) bool {
	if a.Role == RoleAdmin {
		return true
	}
	if branchID == CombinedBranchID {
		// Combined spans branches a manager may not be assigned to.
		return false
	}
	for _, id := range a.BranchIDs {
		if id == branchID {
			return true
		}
	}
	return false
}
