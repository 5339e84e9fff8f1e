package models

import (
	"github.com/shopspring/decimal"
)

// ExchangeRate stores a manually entered rate between two currencies.
// Note: Rate should use a precise decimal type like github.com/shopspring/decimal
type ExchangeRate struct {
	ExchangeRateID  string          `json:"exchangeRateID"` // Primary Key (UUID)
	BaseCurrencyID  string          `json:"baseCurrencyID"` // FK -> Currency.currencyID
	QuoteCurrencyID string          `json:"quoteCurrencyID"`
	Rate            decimal.Decimal `json:"rate"`
	AuditFields
}
