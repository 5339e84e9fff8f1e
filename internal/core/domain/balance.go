package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceTransactionType classifies a balance ledger entry.
type BalanceTransactionType string

const (
	BalanceAdd           BalanceTransactionType = "ADD"
	BalanceSubtract      BalanceTransactionType = "SUBTRACT"
	BalanceConversionIn  BalanceTransactionType = "CONVERSION_IN"
	BalanceConversionOut BalanceTransactionType = "CONVERSION_OUT"
)

// BalanceTransaction is one append-only ledger entry for a currency at a
// branch. Entries are never updated or deleted; corrections are recorded as
// new ADD/SUBTRACT entries.
type BalanceTransaction struct {
	TransactionID string                 `json:"transactionID"` // Primary Key (e.g., UUID)
	Type          BalanceTransactionType `json:"type"`
	CurrencyID    string                 `json:"currencyID"`  // FK -> currencies.currency_id
	Amount        decimal.Decimal        `json:"amount"`      // Always positive; Type carries the sign
	Description   string                 `json:"description"` // Required, non-empty
	UserID        string                 `json:"userID"`      // Acting user, server-stamped
	BranchID      string                 `json:"branchID"`    // FK -> branches.branch_id, server-stamped
	CreatedAt     time.Time              `json:"createdAt"`
}

// DailyBalance is one recorded balance value for a (date, currency, branch)
// tuple, the unit of historical balance data the aggregator reads.
type DailyBalance struct {
	Date       time.Time       `json:"date"` // Day precision, UTC
	CurrencyID string          `json:"currencyID"`
	BranchID   string          `json:"branchID"`
	Balance    decimal.Decimal `json:"balance"`
}
