package repositories

import (
	"context"

	"github.com/samandar-s/exchange_office_app/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindLatestRate retrieves the most recently entered rate for the exact
	// direction given. It does not fall back to the inverse; that derivation
	// belongs to the resolver.
	FindLatestRate(ctx context.Context, baseCurrencyID, quoteCurrencyID string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves stored rates, newest first, paginated.
	ListExchangeRates(ctx context.Context, page, pageSize int) ([]domain.ExchangeRate, int, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a new exchange rate.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
