package services_test

import (
	"context"
	"testing"

	"github.com/samandar-s/exchange_office_app/internal/apperrors"
	portssvc "github.com/samandar-s/exchange_office_app/internal/core/ports/services"
	"github.com/samandar-s/exchange_office_app/internal/core/services"
	"github.com/samandar-s/exchange_office_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo, services.NewAuthorizerService())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	actor := adminActor()
	req := dto.CreateCurrencyRequest{Code: "USD", Name: "US Dollar", DisplayOrder: 1}

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, actor, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.NotEmpty(currency.CurrencyID)
	suite.Equal("USD", currency.Code)
	suite.Equal(actor.UserID, currency.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_ManagerForbidden() {
	req := dto.CreateCurrencyRequest{Code: "USD", Name: "US Dollar"}

	_, err := suite.service.CreateCurrency(context.Background(), managerActor("branch-1"), req)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrency")
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{Code: "USD", Name: "US Dollar"}

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateCurrency(ctx, adminActor(), req)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_EmptyRegistry() {
	ctx := context.Background()

	suite.mockRepo.On("ListCurrencies", ctx).Return(nil, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetCurrencyByID(ctx, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
