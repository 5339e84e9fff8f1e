package models

// Branch represents a physical branch of the exchange office.
type Branch struct {
	BranchID string `json:"branchID"` // Primary Key (UUID)
	Name     string `json:"name"`
	Location string `json:"location"`
	AuditFields
}
