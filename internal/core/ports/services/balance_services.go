package services

import (
	"context"

	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	"github.com/samandar-s/exchange_office_app/internal/dto"
	"github.com/shopspring/decimal"
)

// BalanceWriterSvc defines write operations for the balance ledger
type BalanceWriterSvc interface {
	// RecordBalanceTransaction appends a manual ADD/SUBTRACT ledger entry,
	// stamped with the acting user and branch.
	RecordBalanceTransaction(ctx context.Context, actor domain.Actor, req dto.CreateBalanceTransactionRequest) (*domain.BalanceTransaction, error)
}

// BalanceReaderSvc defines read operations for the balance ledger
type BalanceReaderSvc interface {
	// ListBalanceTransactions retrieves ledger history visible to the actor.
	ListBalanceTransactions(ctx context.Context, actor domain.Actor, currencyID, branchID *string, page, pageSize int) ([]domain.BalanceTransaction, int, error)

	// GetCurrentBalance computes the present balance of a currency at a branch.
	GetCurrentBalance(ctx context.Context, actor domain.Actor, currencyID, branchID string) (decimal.Decimal, error)
}

// BalanceSvcFacade combines all balance ledger service interfaces
type BalanceSvcFacade interface {
	BalanceWriterSvc
	BalanceReaderSvc
}
