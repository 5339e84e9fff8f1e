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

type BalanceServiceTestSuite struct {
	suite.Suite
	mockBalanceRepo  *MockBalanceRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.BalanceSvcFacade
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.mockBalanceRepo = new(MockBalanceRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewBalanceService(suite.mockBalanceRepo, suite.mockCurrencyRepo, services.NewAuthorizerService())
}

func (suite *BalanceServiceTestSuite) validRequest() dto.CreateBalanceTransactionRequest {
	return dto.CreateBalanceTransactionRequest{
		Type:        "ADD",
		CurrencyID:  "usd-id",
		Amount:      decimal.RequireFromString("500"),
		Description: "Opening float",
		BranchID:    "branch-1",
	}
}

func (suite *BalanceServiceTestSuite) TestRecordBalanceTransaction_Success() {
	ctx := context.Background()
	actor := managerActor("branch-1")
	req := suite.validRequest()

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, "usd-id").Return(&domain.Currency{CurrencyID: "usd-id", Code: "USD"}, nil).Once()
	suite.mockBalanceRepo.On("SaveBalanceTransaction", ctx, mock.AnythingOfType("domain.BalanceTransaction")).Return(nil).Once()

	txn, err := suite.service.RecordBalanceTransaction(ctx, actor, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(domain.BalanceAdd, txn.Type)
	suite.Equal(actor.UserID, txn.UserID)
	suite.Equal("branch-1", txn.BranchID)
	suite.False(txn.CreatedAt.IsZero())
	suite.mockBalanceRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestRecordBalanceTransaction_ZeroAmount() {
	req := suite.validRequest()
	req.Amount = decimal.Zero

	_, err := suite.service.RecordBalanceTransaction(context.Background(), adminActor(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBalanceRepo.AssertNotCalled(suite.T(), "SaveBalanceTransaction")
}

func (suite *BalanceServiceTestSuite) TestRecordBalanceTransaction_BlankDescription() {
	req := suite.validRequest()
	req.Description = "   "

	_, err := suite.service.RecordBalanceTransaction(context.Background(), adminActor(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BalanceServiceTestSuite) TestRecordBalanceTransaction_ConversionTypeRejected() {
	req := suite.validRequest()
	req.Type = "CONVERSION_IN"

	_, err := suite.service.RecordBalanceTransaction(context.Background(), adminActor(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BalanceServiceTestSuite) TestRecordBalanceTransaction_ManagerWrongBranch() {
	req := suite.validRequest()
	req.BranchID = "branch-2"

	_, err := suite.service.RecordBalanceTransaction(context.Background(), managerActor("branch-1"), req)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockBalanceRepo.AssertNotCalled(suite.T(), "SaveBalanceTransaction")
}

func (suite *BalanceServiceTestSuite) TestRecordBalanceTransaction_CombinedBranchRejected() {
	req := suite.validRequest()
	req.BranchID = domain.CombinedBranchID

	_, err := suite.service.RecordBalanceTransaction(context.Background(), adminActor(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BalanceServiceTestSuite) TestGetCurrentBalance_Success() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, "usd-id").Return(&domain.Currency{CurrencyID: "usd-id", Code: "USD"}, nil).Once()
	suite.mockBalanceRepo.On("GetCurrentBalance", ctx, "usd-id", "branch-1").Return(decimal.RequireFromString("1250.50"), nil).Once()

	balance, err := suite.service.GetCurrentBalance(ctx, managerActor("branch-1"), "usd-id", "branch-1")

	suite.Require().NoError(err)
	suite.Equal("1250.5", balance.String())
}

func (suite *BalanceServiceTestSuite) TestGetCurrentBalance_CombinedRejected() {
	_, err := suite.service.GetCurrentBalance(context.Background(), adminActor(), "usd-id", domain.CombinedBranchID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBalanceRepo.AssertNotCalled(suite.T(), "GetCurrentBalance")
}

func (suite *BalanceServiceTestSuite) TestListBalanceTransactions_ManagerMultiBranchNeedsFilter() {
	_, _, err := suite.service.ListBalanceTransactions(context.Background(), managerActor("branch-1", "branch-2"), nil, nil, 1, 20)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBalanceRepo.AssertNotCalled(suite.T(), "ListBalanceTransactions")
}

func (suite *BalanceServiceTestSuite) TestListBalanceTransactions_AdminUnfiltered() {
	ctx := context.Background()

	suite.mockBalanceRepo.On("ListBalanceTransactions", ctx, (*string)(nil), (*string)(nil), 1, 20).
		Return([]domain.BalanceTransaction{}, 0, nil).Once()

	_, _, err := suite.service.ListBalanceTransactions(ctx, adminActor(), nil, nil, 1, 20)

	suite.Require().NoError(err)
	suite.mockBalanceRepo.AssertExpectations(suite.T())
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
