package domain

import "github.com/shopspring/decimal"

// Conversion is a recorded currency exchange: source amount, destination
// amount and the rate that linked them at recording time. Immutable once
// stored.
type Conversion struct {
	ConversionID   string          `json:"conversionID"`   // Primary Key (e.g., UUID)
	FromCurrencyID string          `json:"fromCurrencyID"` // FK -> currencies.currency_id
	ToCurrencyID   string          `json:"toCurrencyID"`   // FK -> currencies.currency_id, != FromCurrencyID
	FromAmount     decimal.Decimal `json:"fromAmount"`     // >= 0, 2-decimal
	ToAmount       decimal.Decimal `json:"toAmount"`       // round(FromAmount * RateUsed, 2)
	RateUsed       decimal.Decimal `json:"rateUsed"`       // Resolved rate at recording time
	UserID         string          `json:"userID"`         // Acting user, server-stamped
	BranchID       string          `json:"branchID"`       // Branch the exchange happened at, server-stamped
	AuditFields
}
