package dto

import (
	"time"

	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConversionPreviewRequest computes one side of the exchange form from the
// other. Exactly one of FromAmount/ToAmount must be set: FromAmount drives a
// source-side edit, ToAmount a destination-side edit.
type ConversionPreviewRequest struct {
	FromCurrencyID string           `json:"fromCurrencyID" binding:"required"`
	ToCurrencyID   string           `json:"toCurrencyID" binding:"required"`
	FromAmount     *decimal.Decimal `json:"fromAmount,omitempty"`
	ToAmount       *decimal.Decimal `json:"toAmount,omitempty"`
}

// ConversionPreviewResponse is the computed exchange-form state. Nothing is
// persisted by a preview.
type ConversionPreviewResponse struct {
	FromCurrencyID string          `json:"fromCurrencyID"`
	ToCurrencyID   string          `json:"toCurrencyID"`
	Rate           decimal.Decimal `json:"rate"`
	RateDerived    bool            `json:"rateDerived"`
	FromAmount     decimal.Decimal `json:"fromAmount"`
	ToAmount       decimal.Decimal `json:"toAmount"`
}

// RecordConversionRequest defines the structure for recording an exchange.
type RecordConversionRequest struct {
	FromCurrencyID string          `json:"fromCurrencyID" binding:"required"`
	ToCurrencyID   string          `json:"toCurrencyID" binding:"required"`
	FromAmount     decimal.Decimal `json:"fromAmount" binding:"required"`
	BranchID       string          `json:"branchID" binding:"required"`
}

// ConversionResponse defines the structure for API responses containing a
// recorded conversion.
type ConversionResponse struct {
	ConversionID   string          `json:"conversionID"`
	FromCurrencyID string          `json:"fromCurrencyID"`
	ToCurrencyID   string          `json:"toCurrencyID"`
	FromAmount     decimal.Decimal `json:"fromAmount"`
	ToAmount       decimal.Decimal `json:"toAmount"`
	RateUsed       decimal.Decimal `json:"rateUsed"`
	UserID         string          `json:"userID"`
	BranchID       string          `json:"branchID"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToConversionResponse converts a domain.Conversion to a response DTO
func ToConversionResponse(c *domain.Conversion) ConversionResponse {
	return ConversionResponse{
		ConversionID:   c.ConversionID,
		FromCurrencyID: c.FromCurrencyID,
		ToCurrencyID:   c.ToCurrencyID,
		FromAmount:     c.FromAmount,
		ToAmount:       c.ToAmount,
		RateUsed:       c.RateUsed,
		UserID:         c.UserID,
		BranchID:       c.BranchID,
		CreatedAt:      c.CreatedAt,
	}
}

// ToListConversionResponse converts a slice of domain.Conversion to response DTOs.
func ToListConversionResponse(conversions []domain.Conversion) []ConversionResponse {
	responses := make([]ConversionResponse, len(conversions))
	for i := range conversions {
		responses[i] = ToConversionResponse(&conversions[i])
	}
	return responses
}
