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

type ConversionServiceTestSuite struct {
	suite.Suite
	mockConversionRepo *MockConversionRepository
	mockCurrencyRepo   *MockCurrencyRepository
	mockRateSvc        *MockExchangeRateReaderSvc
	service            portssvc.ConversionSvcFacade
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	suite.mockConversionRepo = new(MockConversionRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockRateSvc = new(MockExchangeRateReaderSvc)
	suite.service = services.NewConversionService(suite.mockConversionRepo, suite.mockCurrencyRepo, suite.mockRateSvc, services.NewAuthorizerService())
}

func (suite *ConversionServiceTestSuite) resolvedUSDtoEUR() *domain.ResolvedRate {
	return &domain.ResolvedRate{
		BaseCurrencyID:  "usd-id",
		QuoteCurrencyID: "eur-id",
		Rate:            decimal.RequireFromString("0.92"),
	}
}

func (suite *ConversionServiceTestSuite) TestPreviewConversion_FromAmount() {
	ctx := context.Background()
	fromAmount := decimal.RequireFromString("100")
	req := dto.ConversionPreviewRequest{
		FromCurrencyID: "usd-id",
		ToCurrencyID:   "eur-id",
		FromAmount:     &fromAmount,
	}

	suite.mockRateSvc.On("ResolveRate", ctx, "usd-id", "eur-id").Return(suite.resolvedUSDtoEUR(), nil).Once()

	preview, err := suite.service.PreviewConversion(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("92", preview.ToAmount.String())
	suite.Equal("100", preview.FromAmount.String())
	suite.Equal("0.92", preview.Rate.String())
}

func (suite *ConversionServiceTestSuite) TestPreviewConversion_ToAmount() {
	ctx := context.Background()
	toAmount := decimal.RequireFromString("100")
	req := dto.ConversionPreviewRequest{
		FromCurrencyID: "usd-id",
		ToCurrencyID:   "eur-id",
		ToAmount:       &toAmount,
	}

	suite.mockRateSvc.On("ResolveRate", ctx, "usd-id", "eur-id").Return(suite.resolvedUSDtoEUR(), nil).Once()

	preview, err := suite.service.PreviewConversion(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("108.7", preview.FromAmount.String())
	suite.Equal("100", preview.ToAmount.String())
}

func (suite *ConversionServiceTestSuite) TestPreviewConversion_BothSidesSet() {
	amount := decimal.RequireFromString("100")
	req := dto.ConversionPreviewRequest{
		FromCurrencyID: "usd-id",
		ToCurrencyID:   "eur-id",
		FromAmount:     &amount,
		ToAmount:       &amount,
	}

	_, err := suite.service.PreviewConversion(context.Background(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateSvc.AssertNotCalled(suite.T(), "ResolveRate")
}

func (suite *ConversionServiceTestSuite) TestPreviewConversion_NeitherSideSet() {
	req := dto.ConversionPreviewRequest{
		FromCurrencyID: "usd-id",
		ToCurrencyID:   "eur-id",
	}

	_, err := suite.service.PreviewConversion(context.Background(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ConversionServiceTestSuite) TestRecordConversion_Success() {
	ctx := context.Background()
	actor := managerActor("branch-1")
	req := dto.RecordConversionRequest{
		FromCurrencyID: "usd-id",
		ToCurrencyID:   "eur-id",
		FromAmount:     decimal.RequireFromString("100"),
		BranchID:       "branch-1",
	}

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, "usd-id").Return(&domain.Currency{CurrencyID: "usd-id", Code: "USD"}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, "eur-id").Return(&domain.Currency{CurrencyID: "eur-id", Code: "EUR"}, nil).Once()
	suite.mockRateSvc.On("ResolveRate", ctx, "usd-id", "eur-id").Return(suite.resolvedUSDtoEUR(), nil).Once()

	var savedEntries []domain.BalanceTransaction
	suite.mockConversionRepo.On("SaveConversion", ctx, mock.AnythingOfType("domain.Conversion"), mock.AnythingOfType("[]domain.BalanceTransaction")).
		Run(func(args mock.Arguments) {
			savedEntries = args.Get(2).([]domain.BalanceTransaction)
		}).Return(nil).Once()

	conversion, err := suite.service.RecordConversion(ctx, actor, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(conversion)
	suite.Equal("92", conversion.ToAmount.String())
	suite.Equal(actor.UserID, conversion.UserID)
	suite.Equal("branch-1", conversion.BranchID)

	suite.Require().Len(savedEntries, 2)
	out, in := savedEntries[0], savedEntries[1]
	suite.Equal(domain.BalanceConversionOut, out.Type)
	suite.Equal("usd-id", out.CurrencyID)
	suite.Equal("100", out.Amount.String())
	suite.Equal(domain.BalanceConversionIn, in.Type)
	suite.Equal("eur-id", in.CurrencyID)
	suite.Equal("92", in.Amount.String())
	suite.Equal("Exchange USD to EUR", out.Description)
	suite.Equal(out.Description, in.Description)
	suite.Equal("branch-1", out.BranchID)
	suite.Equal("branch-1", in.BranchID)
}

func (suite *ConversionServiceTestSuite) TestRecordConversion_ManagerWrongBranch() {
	req := dto.RecordConversionRequest{
		FromCurrencyID: "usd-id",
		ToCurrencyID:   "eur-id",
		FromAmount:     decimal.RequireFromString("100"),
		BranchID:       "branch-2",
	}

	_, err := suite.service.RecordConversion(context.Background(), managerActor("branch-1"), req)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockConversionRepo.AssertNotCalled(suite.T(), "SaveConversion")
}

func (suite *ConversionServiceTestSuite) TestRecordConversion_CombinedBranchRejected() {
	req := dto.RecordConversionRequest{
		FromCurrencyID: "usd-id",
		ToCurrencyID:   "eur-id",
		FromAmount:     decimal.RequireFromString("100"),
		BranchID:       domain.CombinedBranchID,
	}

	_, err := suite.service.RecordConversion(context.Background(), adminActor(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockConversionRepo.AssertNotCalled(suite.T(), "SaveConversion")
}

func (suite *ConversionServiceTestSuite) TestRecordConversion_NonPositiveAmount() {
	req := dto.RecordConversionRequest{
		FromCurrencyID: "usd-id",
		ToCurrencyID:   "eur-id",
		FromAmount:     decimal.Zero,
		BranchID:       "branch-1",
	}

	_, err := suite.service.RecordConversion(context.Background(), adminActor(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ConversionServiceTestSuite) TestRecordConversion_RateNotFound() {
	ctx := context.Background()
	req := dto.RecordConversionRequest{
		FromCurrencyID: "usd-id",
		ToCurrencyID:   "gbp-id",
		FromAmount:     decimal.RequireFromString("100"),
		BranchID:       "branch-1",
	}

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, "usd-id").Return(&domain.Currency{CurrencyID: "usd-id", Code: "USD"}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, "gbp-id").Return(&domain.Currency{CurrencyID: "gbp-id", Code: "GBP"}, nil).Once()
	suite.mockRateSvc.On("ResolveRate", ctx, "usd-id", "gbp-id").Return(nil, apperrors.ErrRateNotFound).Once()

	_, err := suite.service.RecordConversion(ctx, adminActor(), req)

	suite.ErrorIs(err, apperrors.ErrRateNotFound)
	suite.mockConversionRepo.AssertNotCalled(suite.T(), "SaveConversion")
}

func (suite *ConversionServiceTestSuite) TestListConversions_ManagerSingleBranchDefault() {
	ctx := context.Background()
	actor := managerActor("branch-1")

	suite.mockConversionRepo.On("ListConversions", ctx, mock.MatchedBy(func(branchID *string) bool {
		return branchID != nil && *branchID == "branch-1"
	}), 1, 20).Return([]domain.Conversion{}, 0, nil).Once()

	_, _, err := suite.service.ListConversions(ctx, actor, nil, 1, 20)

	suite.Require().NoError(err)
	suite.mockConversionRepo.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestListConversions_ManagerMultiBranchNeedsFilter() {
	_, _, err := suite.service.ListConversions(context.Background(), managerActor("branch-1", "branch-2"), nil, 1, 20)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockConversionRepo.AssertNotCalled(suite.T(), "ListConversions")
}

func TestConversionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}
