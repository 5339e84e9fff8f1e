package models

// Currency represents a currency managed by the exchange office.
type Currency struct {
	CurrencyID   string `json:"currencyID"` // Primary Key (UUID)
	Code         string `json:"code"`       // ISO 4217 code, e.g. "USD"
	Name         string `json:"name"`
	DisplayOrder int    `json:"displayOrder"`
	AuditFields
}
