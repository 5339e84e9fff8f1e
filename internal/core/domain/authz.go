package domain

// Action enumerates everything a caller can ask the system to do. Every
// mutating or report operation consults one policy with one of these, rather
// than scattering inline role checks.
type Action string

const (
	ActionManageCurrencies Action = "MANAGE_CURRENCIES"
	ActionManageRates      Action = "MANAGE_RATES"
	ActionManageUsers      Action = "MANAGE_USERS"
	ActionManageBranches   Action = "MANAGE_BRANCHES"
	ActionRecordConversion Action = "RECORD_CONVERSION"
	ActionRecordBalance    Action = "RECORD_BALANCE"
	ActionViewLedger       Action = "VIEW_LEDGER"
	ActionViewReports      Action = "VIEW_REPORTS"
)

// Resource identifies what an action targets. BranchID is empty for actions
// that are not branch-scoped (user, branch, currency and rate management).
type Resource struct {
	BranchID string
}
