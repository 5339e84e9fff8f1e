package domain

import "github.com/shopspring/decimal"

// ExchangeRate is a manually entered rate: one quote-currency unit price per
// base-currency unit. Rates are directional; when only one direction exists
// the inverse is derived at resolution time, not stored.
type ExchangeRate struct {
	ExchangeRateID  string          `json:"exchangeRateID"`  // Primary Key (e.g., UUID)
	BaseCurrencyID  string          `json:"baseCurrencyID"`  // FK -> currencies.currency_id
	QuoteCurrencyID string          `json:"quoteCurrencyID"` // FK -> currencies.currency_id
	Rate            decimal.Decimal `json:"rate"`            // Must be > 0
	AuditFields
}

// ResolvedRate is the outcome of rate resolution for a currency pair.
// Derived is true when the rate was computed as the inverse of a stored
// record rather than read directly.
type ResolvedRate struct {
	BaseCurrencyID  string          `json:"baseCurrencyID"`
	QuoteCurrencyID string          `json:"quoteCurrencyID"`
	Rate            decimal.Decimal `json:"rate"`
	Derived         bool            `json:"derived"`
}
