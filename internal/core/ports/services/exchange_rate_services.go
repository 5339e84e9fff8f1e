package services

import (
	"context"

	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	"github.com/samandar-s/exchange_office_app/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for exchange rates
type ExchangeRateReaderSvc interface {
	// ResolveRate finds the applicable rate for a currency pair: direct if
	// stored, otherwise the derived inverse. Identical currencies are
	// rejected with ErrSameCurrency; a missing pair with ErrRateNotFound.
	ResolveRate(ctx context.Context, baseCurrencyID, quoteCurrencyID string) (*domain.ResolvedRate, error)

	// ListExchangeRates retrieves stored rates newest first, paginated.
	ListExchangeRates(ctx context.Context, page, pageSize int) ([]domain.ExchangeRate, int, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rates
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate records a manually entered rate.
	CreateExchangeRate(ctx context.Context, actor domain.Actor, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
