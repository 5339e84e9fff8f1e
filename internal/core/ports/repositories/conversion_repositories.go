package repositories

import (
	"context"

	"github.com/samandar-s/exchange_office_app/internal/core/domain"
)

// ConversionReader defines read operations for recorded conversions
type ConversionReader interface {
	// FindConversionByID retrieves a specific conversion.
	FindConversionByID(ctx context.Context, conversionID string) (*domain.Conversion, error)

	// ListConversions retrieves conversions newest first, optionally filtered
	// by branch, paginated.
	ListConversions(ctx context.Context, branchID *string, page, pageSize int) ([]domain.Conversion, int, error)
}

// ConversionWriter defines write operations for recorded conversions
type ConversionWriter interface {
	// SaveConversion persists the conversion together with its paired
	// CONVERSION_OUT/CONVERSION_IN ledger entries in a single database
	// transaction.
	SaveConversion(ctx context.Context, conversion domain.Conversion, ledgerEntries []domain.BalanceTransaction) error
}

// ConversionRepositoryFacade combines all conversion-related repository interfaces
type ConversionRepositoryFacade interface {
	ConversionReader
	ConversionWriter
}
