package domain

// CombinedBranchID is the synthetic branch filter that sums balances across
// all branches per date. It is never stored.
const CombinedBranchID = "combined"

// Branch represents one physical exchange office location.
type Branch struct {
	BranchID string `json:"branchID"` // Primary Key (e.g., UUID)
	Name     string `json:"name"`
	Location string `json:"location"` // Address or city
	AuditFields
}
