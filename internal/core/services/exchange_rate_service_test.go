package services_test

import (
	"context"
	"testing"

	"github.com/samandar-s/exchange_office_app/internal/apperrors"
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	portssvc "github.com/samandar-s/exchange_office_app/internal/core/ports/services"
	"github.com/samandar-s/exchange_office_app/internal/core/services"
	"github.com/samandar-s/exchange_office_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo     *MockExchangeRateRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.ExchangeRateSvcFacade
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewExchangeRateService(suite.mockRateRepo, suite.mockCurrencyRepo, services.NewAuthorizerService())
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_Success() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{
		BaseCurrencyID:  "usd-id",
		QuoteCurrencyID: "eur-id",
		Rate:            decimal.RequireFromString("0.92"),
	}

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, "usd-id").Return(&domain.Currency{CurrencyID: "usd-id", Code: "USD"}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, "eur-id").Return(&domain.Currency{CurrencyID: "eur-id", Code: "EUR"}, nil).Once()
	suite.mockRateRepo.On("SaveExchangeRate", ctx, mock.AnythingOfType("domain.ExchangeRate")).Return(nil).Once()

	rate, err := suite.service.CreateExchangeRate(ctx, adminActor(), req)

	suite.Require().NoError(err)
	suite.Require().NotNil(rate)
	suite.NotEmpty(rate.ExchangeRateID)
	suite.Equal("usd-id", rate.BaseCurrencyID)
	suite.Equal("eur-id", rate.QuoteCurrencyID)
	suite.True(req.Rate.Equal(rate.Rate))
	suite.Equal(adminActor().UserID, rate.CreatedBy)
	suite.mockRateRepo.AssertExpectations(suite.T())
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_SameCurrency() {
	req := dto.CreateExchangeRateRequest{
		BaseCurrencyID:  "usd-id",
		QuoteCurrencyID: "usd-id",
		Rate:            decimal.RequireFromString("1.5"),
	}

	_, err := suite.service.CreateExchangeRate(context.Background(), adminActor(), req)

	suite.ErrorIs(err, apperrors.ErrSameCurrency)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveExchangeRate")
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_NonPositiveRate() {
	req := dto.CreateExchangeRateRequest{
		BaseCurrencyID:  "usd-id",
		QuoteCurrencyID: "eur-id",
		Rate:            decimal.Zero,
	}

	_, err := suite.service.CreateExchangeRate(context.Background(), adminActor(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_UnknownCurrency() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{
		BaseCurrencyID:  "missing-id",
		QuoteCurrencyID: "eur-id",
		Rate:            decimal.RequireFromString("0.92"),
	}

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, "missing-id").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateExchangeRate(ctx, adminActor(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveExchangeRate")
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_ManagerForbidden() {
	req := dto.CreateExchangeRateRequest{
		BaseCurrencyID:  "usd-id",
		QuoteCurrencyID: "eur-id",
		Rate:            decimal.RequireFromString("0.92"),
	}

	_, err := suite.service.CreateExchangeRate(context.Background(), managerActor("branch-1"), req)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveExchangeRate")
}

func (suite *ExchangeRateServiceTestSuite) TestResolveRate_Direct() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindLatestRate", ctx, "usd-id", "eur-id").Return(&domain.ExchangeRate{
		BaseCurrencyID: "usd-id", QuoteCurrencyID: "eur-id", Rate: decimal.RequireFromString("0.92"),
	}, nil).Once()

	resolved, err := suite.service.ResolveRate(ctx, "usd-id", "eur-id")

	suite.Require().NoError(err)
	suite.Equal("0.92", resolved.Rate.String())
	suite.False(resolved.Derived)
	// A direct hit never looks at the opposite direction.
	suite.mockRateRepo.AssertNumberOfCalls(suite.T(), "FindLatestRate", 1)
}

func (suite *ExchangeRateServiceTestSuite) TestResolveRate_DerivedInverse() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindLatestRate", ctx, "eur-id", "usd-id").Return(nil, apperrors.ErrRateNotFound).Once()
	suite.mockRateRepo.On("FindLatestRate", ctx, "usd-id", "eur-id").Return(&domain.ExchangeRate{
		BaseCurrencyID: "usd-id", QuoteCurrencyID: "eur-id", Rate: decimal.RequireFromString("0.92"),
	}, nil).Once()

	resolved, err := suite.service.ResolveRate(ctx, "eur-id", "usd-id")

	suite.Require().NoError(err)
	suite.Equal("1.086957", resolved.Rate.String())
	suite.True(resolved.Derived)
}

func (suite *ExchangeRateServiceTestSuite) TestResolveRate_SameCurrency() {
	_, err := suite.service.ResolveRate(context.Background(), "usd-id", "usd-id")

	suite.ErrorIs(err, apperrors.ErrSameCurrency)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindLatestRate")
}

func (suite *ExchangeRateServiceTestSuite) TestResolveRate_NotFound() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindLatestRate", ctx, "usd-id", "gbp-id").Return(nil, apperrors.ErrRateNotFound).Once()
	suite.mockRateRepo.On("FindLatestRate", ctx, "gbp-id", "usd-id").Return(nil, apperrors.ErrRateNotFound).Once()

	_, err := suite.service.ResolveRate(ctx, "usd-id", "gbp-id")

	suite.ErrorIs(err, apperrors.ErrRateNotFound)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestListExchangeRates_ClampsPagination() {
	ctx := context.Background()
	suite.mockRateRepo.On("ListExchangeRates", ctx, 1, 20).Return([]domain.ExchangeRate{}, 0, nil).Once()

	_, _, err := suite.service.ListExchangeRates(ctx, 0, 500)

	suite.Require().NoError(err)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
