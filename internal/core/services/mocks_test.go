package services_test

import (
	"context"
	"time"

	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---

type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock ExchangeRateRepository ---

type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) FindLatestRate(ctx context.Context, baseCurrencyID, quoteCurrencyID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, baseCurrencyID, quoteCurrencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context, page, pageSize int) ([]domain.ExchangeRate, int, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Int(1), args.Error(2)
}

// --- Mock ConversionRepository ---

type MockConversionRepository struct {
	mock.Mock
}

func (m *MockConversionRepository) SaveConversion(ctx context.Context, conversion domain.Conversion, ledgerEntries []domain.BalanceTransaction) error {
	args := m.Called(ctx, conversion, ledgerEntries)
	return args.Error(0)
}

func (m *MockConversionRepository) FindConversionByID(ctx context.Context, conversionID string) (*domain.Conversion, error) {
	args := m.Called(ctx, conversionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversion), args.Error(1)
}

func (m *MockConversionRepository) ListConversions(ctx context.Context, branchID *string, page, pageSize int) ([]domain.Conversion, int, error) {
	args := m.Called(ctx, branchID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Conversion), args.Int(1), args.Error(2)
}

// --- Mock BalanceRepository ---

type MockBalanceRepository struct {
	mock.Mock
}

func (m *MockBalanceRepository) SaveBalanceTransaction(ctx context.Context, txn domain.BalanceTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockBalanceRepository) ListBalanceTransactions(ctx context.Context, currencyID, branchID *string, page, pageSize int) ([]domain.BalanceTransaction, int, error) {
	args := m.Called(ctx, currencyID, branchID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.BalanceTransaction), args.Int(1), args.Error(2)
}

func (m *MockBalanceRepository) ListDailyBalances(ctx context.Context, branchID *string, from, to time.Time) ([]domain.DailyBalance, error) {
	args := m.Called(ctx, branchID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyBalance), args.Error(1)
}

func (m *MockBalanceRepository) GetCurrentBalance(ctx context.Context, currencyID, branchID string) (decimal.Decimal, error) {
	args := m.Called(ctx, currencyID, branchID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock ExchangeRateReaderSvc ---

type MockExchangeRateReaderSvc struct {
	mock.Mock
}

func (m *MockExchangeRateReaderSvc) ResolveRate(ctx context.Context, baseCurrencyID, quoteCurrencyID string) (*domain.ResolvedRate, error) {
	args := m.Called(ctx, baseCurrencyID, quoteCurrencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResolvedRate), args.Error(1)
}

func (m *MockExchangeRateReaderSvc) ListExchangeRates(ctx context.Context, page, pageSize int) ([]domain.ExchangeRate, int, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Int(1), args.Error(2)
}

// Test actors shared across suites.
func adminActor() domain.Actor {
	return domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin}
}

func managerActor(branchIDs ...string) domain.Actor {
	return domain.Actor{UserID: "manager-1", Role: domain.RoleManager, BranchIDs: branchIDs}
}
