package dto

import (
	"time"

	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the structure for manually entering a rate.
type CreateExchangeRateRequest struct {
	BaseCurrencyID  string          `json:"baseCurrencyID" binding:"required"`
	QuoteCurrencyID string          `json:"quoteCurrencyID" binding:"required"`
	Rate            decimal.Decimal `json:"rate" binding:"required"`
}

// ExchangeRateResponse defines the structure for API responses containing a stored rate.
type ExchangeRateResponse struct {
	ExchangeRateID  string          `json:"exchangeRateID"`
	BaseCurrencyID  string          `json:"baseCurrencyID"`
	QuoteCurrencyID string          `json:"quoteCurrencyID"`
	Rate            decimal.Decimal `json:"rate"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// ResolvedRateResponse is the outcome of rate resolution for a pair.
type ResolvedRateResponse struct {
	BaseCurrencyID  string          `json:"baseCurrencyID"`
	QuoteCurrencyID string          `json:"quoteCurrencyID"`
	Rate            decimal.Decimal `json:"rate"`
	Derived         bool            `json:"derived"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to a response DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID:  rate.ExchangeRateID,
		BaseCurrencyID:  rate.BaseCurrencyID,
		QuoteCurrencyID: rate.QuoteCurrencyID,
		Rate:            rate.Rate,
		CreatedAt:       rate.CreatedAt,
		CreatedBy:       rate.CreatedBy,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to response DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

// ToResolvedRateResponse converts a domain.ResolvedRate to a response DTO
func ToResolvedRateResponse(rate *domain.ResolvedRate) ResolvedRateResponse {
	return ResolvedRateResponse{
		BaseCurrencyID:  rate.BaseCurrencyID,
		QuoteCurrencyID: rate.QuoteCurrencyID,
		Rate:            rate.Rate,
		Derived:         rate.Derived,
	}
}
