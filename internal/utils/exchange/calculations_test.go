package exchange_test

import (
	"testing"

	"github.com/samandar-s/exchange_office_app/internal/apperrors"
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	"github.com/samandar-s/exchange_office_app/internal/utils/exchange"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rate(base, quote, value string) domain.ExchangeRate {
	return domain.ExchangeRate{
		BaseCurrencyID:  base,
		QuoteCurrencyID: quote,
		Rate:            decimal.RequireFromString(value),
	}
}

// lookupFrom builds a RateLookup over a fixed set of stored rates.
func lookupFrom(rates ...domain.ExchangeRate) exchange.RateLookup {
	return func(base, quote string) (*domain.ExchangeRate, error) {
		for _, r := range rates {
			if r.BaseCurrencyID == base && r.QuoteCurrencyID == quote {
				found := r
				return &found, nil
			}
		}
		return nil, apperrors.ErrRateNotFound
	}
}

func TestResolve(t *testing.T) {
	stored := lookupFrom(
		rate("usd", "eur", "0.92"),
		rate("usd", "gbp", "0.79"),
	)

	t.Run("direct rate wins", func(t *testing.T) {
		resolved, err := exchange.Resolve("usd", "eur", stored)
		require.NoError(t, err)
		assert.Equal(t, "0.92", resolved.Rate.String())
		assert.False(t, resolved.Derived)
	})

	t.Run("inverse derived when only opposite direction stored", func(t *testing.T) {
		resolved, err := exchange.Resolve("eur", "usd", stored)
		require.NoError(t, err)
		assert.Equal(t, "1.086957", resolved.Rate.String())
		assert.True(t, resolved.Derived)
	})

	t.Run("direct preferred over stored opposite direction", func(t *testing.T) {
		both := lookupFrom(
			rate("usd", "eur", "0.92"),
			rate("eur", "usd", "1.10"),
		)
		resolved, err := exchange.Resolve("usd", "eur", both)
		require.NoError(t, err)
		assert.Equal(t, "0.92", resolved.Rate.String())
		assert.False(t, resolved.Derived)
	})

	t.Run("same currency rejected without a lookup", func(t *testing.T) {
		_, err := exchange.Resolve("usd", "usd", func(string, string) (*domain.ExchangeRate, error) {
			t.Fatal("lookup should not be called")
			return nil, nil
		})
		assert.ErrorIs(t, err, apperrors.ErrSameCurrency)
	})

	t.Run("missing pair not resolved transitively", func(t *testing.T) {
		// eur->gbp is reachable through usd but no hop is attempted.
		_, err := exchange.Resolve("eur", "gbp", stored)
		assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
	})
}

func TestInvertRate(t *testing.T) {
	tests := []struct {
		name string
		rate string
		want string
	}{
		{"usd to eur", "0.92", "1.086957"},
		{"round number", "2", "0.5"},
		{"long division", "3", "0.333333"},
		{"greater than one", "1.086957", "0.92"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exchange.InvertRate(decimal.RequireFromString(tt.rate))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestConvertAmount(t *testing.T) {
	t.Run("rounds to two decimal places", func(t *testing.T) {
		got, err := exchange.ConvertAmount(decimal.RequireFromString("100"), decimal.RequireFromString("0.92"))
		require.NoError(t, err)
		assert.Equal(t, "92", got.String())
	})

	t.Run("half rounds away from zero", func(t *testing.T) {
		got, err := exchange.ConvertAmount(decimal.RequireFromString("10.05"), decimal.RequireFromString("0.5"))
		require.NoError(t, err)
		assert.Equal(t, "5.03", got.String())
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := exchange.ConvertAmount(decimal.RequireFromString("-1"), decimal.RequireFromString("0.92"))
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("non-positive rate rejected", func(t *testing.T) {
		_, err := exchange.ConvertAmount(decimal.RequireFromString("100"), decimal.Zero)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestInvertAmount(t *testing.T) {
	t.Run("destination edit recomputes source", func(t *testing.T) {
		got, err := exchange.InvertAmount(decimal.RequireFromString("100"), decimal.RequireFromString("0.92"))
		require.NoError(t, err)
		assert.Equal(t, "108.7", got.String())
	})

	t.Run("round trip stays within a cent", func(t *testing.T) {
		r := decimal.RequireFromString("0.92")
		forward, err := exchange.ConvertAmount(decimal.RequireFromString("250"), r)
		require.NoError(t, err)
		back, err := exchange.InvertAmount(forward, r)
		require.NoError(t, err)
		diff := back.Sub(decimal.RequireFromString("250")).Abs()
		assert.True(t, diff.LessThanOrEqual(decimal.RequireFromString("0.01")), "diff %s", diff)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := exchange.InvertAmount(decimal.RequireFromString("-5"), decimal.RequireFromString("0.92"))
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		txnType domain.BalanceTransactionType
		want    string
	}{
		{domain.BalanceAdd, "50"},
		{domain.BalanceConversionIn, "50"},
		{domain.BalanceSubtract, "-50"},
		{domain.BalanceConversionOut, "-50"},
	}

	for _, tt := range tests {
		t.Run(string(tt.txnType), func(t *testing.T) {
			got, err := exchange.SignedAmount(domain.BalanceTransaction{
				Type:   tt.txnType,
				Amount: decimal.RequireFromString("50"),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	t.Run("unknown type errors", func(t *testing.T) {
		_, err := exchange.SignedAmount(domain.BalanceTransaction{Type: "TRANSFER"})
		assert.Error(t, err)
	})
}
