package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceTransaction is an append-only ledger entry for a branch balance.
type BalanceTransaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Type          string          `json:"type"`          // ADD, SUBTRACT, CONVERSION_IN, CONVERSION_OUT
	CurrencyID    string          `json:"currencyID"`
	Amount        decimal.Decimal `json:"amount"` // Always positive; Type carries the sign
	Description   string          `json:"description"`
	UserID        string          `json:"userID"`
	BranchID      string          `json:"branchID"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// DailyBalance is an end-of-day balance snapshot per currency and branch.
type DailyBalance struct {
	Date       time.Time       `json:"date"`
	CurrencyID string          `json:"currencyID"`
	BranchID   string          `json:"branchID"`
	Balance    decimal.Decimal `json:"balance"`
}
