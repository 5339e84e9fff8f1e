package domain

// Currency represents a currency the exchange office deals in.
// The registry is small, manually maintained reference data; listing order
// (display_order, then code) is the enumeration order reports are emitted in.
type Currency struct {
	CurrencyID   string `json:"currencyID"`   // Primary Key (e.g., UUID)
	Code         string `json:"code"`         // ISO-like short code, unique (e.g., "USD")
	Name         string `json:"name"`         // e.g., "US Dollar"
	DisplayOrder int    `json:"displayOrder"` // Fixed enumeration position in the registry
	AuditFields
}
