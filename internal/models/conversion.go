package models

import (
	"github.com/shopspring/decimal"
)

// Conversion records a completed currency exchange at a branch.
type Conversion struct {
	ConversionID   string          `json:"conversionID"` // Primary Key (UUID)
	FromCurrencyID string          `json:"fromCurrencyID"`
	ToCurrencyID   string          `json:"toCurrencyID"`
	FromAmount     decimal.Decimal `json:"fromAmount"`
	ToAmount       decimal.Decimal `json:"toAmount"`
	RateUsed       decimal.Decimal `json:"rateUsed"`
	UserID         string          `json:"userID"`
	BranchID       string          `json:"branchID"`
	AuditFields
}
