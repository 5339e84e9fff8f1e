package dto

import (
	"time"

	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBalanceTransactionRequest defines the structure for a manual balance
// adjustment. Only ADD/SUBTRACT may be requested directly; conversion entries
// are written by the conversion flow.
type CreateBalanceTransactionRequest struct {
	Type        string          `json:"type" binding:"required,oneof=ADD SUBTRACT"`
	CurrencyID  string          `json:"currencyID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required,max=200"`
	BranchID    string          `json:"branchID" binding:"required"`
}

// BalanceTransactionResponse defines the structure for API responses
// containing a ledger entry.
type BalanceTransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Type          string          `json:"type"`
	CurrencyID    string          `json:"currencyID"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	UserID        string          `json:"userID"`
	BranchID      string          `json:"branchID"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// CurrentBalanceResponse is the present balance of one currency at a branch.
type CurrentBalanceResponse struct {
	CurrencyID string          `json:"currencyID"`
	Code       string          `json:"code"`
	BranchID   string          `json:"branchID"`
	Balance    decimal.Decimal `json:"balance"`
	Display    string          `json:"display"` // Currency-aware formatted balance
}

// ToBalanceTransactionResponse converts a domain.BalanceTransaction to a response DTO
func ToBalanceTransactionResponse(t *domain.BalanceTransaction) BalanceTransactionResponse {
	return BalanceTransactionResponse{
		TransactionID: t.TransactionID,
		Type:          string(t.Type),
		CurrencyID:    t.CurrencyID,
		Amount:        t.Amount,
		Description:   t.Description,
		UserID:        t.UserID,
		BranchID:      t.BranchID,
		CreatedAt:     t.CreatedAt,
	}
}

// ToListBalanceTransactionResponse converts a slice of ledger entries to response DTOs.
func ToListBalanceTransactionResponse(txns []domain.BalanceTransaction) []BalanceTransactionResponse {
	responses := make([]BalanceTransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToBalanceTransactionResponse(&txns[i])
	}
	return responses
}
