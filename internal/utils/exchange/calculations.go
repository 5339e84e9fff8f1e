// Package exchange holds the pure arithmetic behind rate resolution,
// conversion and the balance ledger sign convention. Services and
// repositories both go through it so the rounding rules live in one place.
package exchange

import (
	"errors"
	"fmt"

	"github.com/samandar-s/exchange_office_app/internal/apperrors"
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	// RateScale is the precision derived inverse rates are rounded to.
	RateScale int32 = 6
	// AmountScale is the fixed precision of computed conversion amounts,
	// regardless of currency. Display formatting is currency-aware; the
	// computation deliberately is not.
	AmountScale int32 = 2
)

// RateLookup returns the stored rate for the exact direction given, or an
// error wrapping apperrors.ErrRateNotFound when none exists.
type RateLookup func(baseCurrencyID, quoteCurrencyID string) (*domain.ExchangeRate, error)

// Resolve finds the applicable rate for a currency pair. A direct record
// wins; otherwise the opposite direction is looked up and used as 1/rate
// rounded to RateScale digits. Identical base and quote is an error, never a
// synthetic 1:1 rate. No transitive resolution through a third currency is
// attempted.
func Resolve(baseCurrencyID, quoteCurrencyID string, lookup RateLookup) (domain.ResolvedRate, error) {
	if baseCurrencyID == quoteCurrencyID {
		return domain.ResolvedRate{}, apperrors.ErrSameCurrency
	}

	direct, err := lookup(baseCurrencyID, quoteCurrencyID)
	if err == nil {
		return domain.ResolvedRate{
			BaseCurrencyID:  baseCurrencyID,
			QuoteCurrencyID: quoteCurrencyID,
			Rate:            direct.Rate,
		}, nil
	}
	if !errors.Is(err, apperrors.ErrRateNotFound) {
		return domain.ResolvedRate{}, err
	}

	opposite, err := lookup(quoteCurrencyID, baseCurrencyID)
	if err != nil {
		return domain.ResolvedRate{}, err
	}
	if opposite.Rate.IsZero() {
		return domain.ResolvedRate{}, apperrors.NewValidationError("stored inverse rate is zero")
	}
	return domain.ResolvedRate{
		BaseCurrencyID:  baseCurrencyID,
		QuoteCurrencyID: quoteCurrencyID,
		Rate:            InvertRate(opposite.Rate),
		Derived:         true,
	}, nil
}

// InvertRate derives the opposite-direction rate, rounded to RateScale digits.
func InvertRate(rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).DivRound(rate, RateScale)
}

// ConvertAmount computes the destination amount for a source amount and a
// resolved rate, rounded to AmountScale digits.
func ConvertAmount(amount, rate decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: rate must be positive", apperrors.ErrValidation)
	}
	return amount.Mul(rate).Round(AmountScale), nil
}

// InvertAmount computes the source amount that produces the given destination
// amount under the rate. Used when the destination side of the form is edited.
func InvertAmount(toAmount, rate decimal.Decimal) (decimal.Decimal, error) {
	if toAmount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: rate must be positive", apperrors.ErrValidation)
	}
	return toAmount.DivRound(rate, AmountScale), nil
}

// SignedAmount applies the ledger sign convention to a balance transaction:
// ADD and CONVERSION_IN increase the balance, SUBTRACT and CONVERSION_OUT
// decrease it. The stored amount itself is always positive.
func SignedAmount(txn domain.BalanceTransaction) (decimal.Decimal, error) {
	switch txn.Type {
	case domain.BalanceAdd, domain.BalanceConversionIn:
		return txn.Amount, nil
	case domain.BalanceSubtract, domain.BalanceConversionOut:
		return txn.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown balance transaction type '%s' for transaction ID %s", txn.Type, txn.TransactionID)
	}
}
