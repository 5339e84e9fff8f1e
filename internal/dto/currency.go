package dto

import (
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
)

// CreateCurrencyRequest defines the structure for adding a currency to the registry.
type CreateCurrencyRequest struct {
	Code         string `json:"code" binding:"required,len=3,uppercase"`
	Name         string `json:"name" binding:"required"`
	DisplayOrder int    `json:"displayOrder" binding:"omitempty,gte=0"`
}

// CurrencyResponse defines the structure for API responses containing currency details.
type CurrencyResponse struct {
	CurrencyID   string `json:"currencyID"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"displayOrder"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID:   c.CurrencyID,
		Code:         c.Code,
		Name:         c.Name,
		DisplayOrder: c.DisplayOrder,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to response DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	responses := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		responses[i] = ToCurrencyResponse(&currencies[i])
	}
	return responses
}
