package services

import (
	"context"

	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	"github.com/samandar-s/exchange_office_app/internal/dto"
)

// CurrencyReaderSvc defines read operations for the currency registry
type CurrencyReaderSvc interface {
	// GetCurrencyByID retrieves a specific currency by id.
	GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)

	// GetCurrencyByCode retrieves a specific currency by code.
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves the registry in its fixed enumeration order.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for the currency registry
type CurrencyWriterSvc interface {
	// CreateCurrency adds a currency to the registry.
	CreateCurrency(ctx context.Context, actor domain.Actor, req dto.CreateCurrencyRequest) (*domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
