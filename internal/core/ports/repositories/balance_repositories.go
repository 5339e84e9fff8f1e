package repositories

import (
	"context"
	"time"

	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceReader defines read operations for the balance ledger and snapshots
type BalanceReader interface {
	// ListBalanceTransactions retrieves ledger entries newest first,
	// optionally filtered by currency and branch, paginated.
	ListBalanceTransactions(ctx context.Context, currencyID, branchID *string, page, pageSize int) ([]domain.BalanceTransaction, int, error)

	// ListDailyBalances retrieves snapshots for all currencies within
	// [from, to], optionally filtered by branch. The combined view is not a
	// stored branch; callers sum across branches themselves.
	ListDailyBalances(ctx context.Context, branchID *string, from, to time.Time) ([]domain.DailyBalance, error)

	// GetCurrentBalance computes the present balance for a currency at a
	// branch: the latest snapshot plus the signed ledger entries after it.
	GetCurrentBalance(ctx context.Context, currencyID, branchID string) (decimal.Decimal, error)
}

// BalanceWriter defines write operations for the balance ledger
type BalanceWriter interface {
	// SaveBalanceTransaction appends one ledger entry. The ledger is
	// append-only: no update or delete operation exists.
	SaveBalanceTransaction(ctx context.Context, txn domain.BalanceTransaction) error
}

// BalanceRepositoryFacade combines all balance-related repository interfaces
type BalanceRepositoryFacade interface {
	BalanceReader
	BalanceWriter
}
