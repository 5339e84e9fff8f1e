package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/samandar-s/exchange_office_app/internal/apperrors"
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	portssvc "github.com/samandar-s/exchange_office_app/internal/core/ports/services"
	"github.com/samandar-s/exchange_office_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockBalanceRepo  *MockBalanceRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.ReportingSvcFacade
	now              time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockBalanceRepo = new(MockBalanceRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.now = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	suite.service = services.NewReportingService(
		suite.mockBalanceRepo,
		suite.mockCurrencyRepo,
		services.NewAuthorizerService(),
		services.WithClock(func() time.Time { return suite.now }),
	)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (suite *ReportingServiceTestSuite) usdCurrency() domain.Currency {
	return domain.Currency{CurrencyID: "usd-id", Code: "USD", Name: "US Dollar"}
}

func (suite *ReportingServiceTestSuite) TestBalanceReport_Weekly() {
	ctx := context.Background()
	from, to := day(2025, 6, 8), day(2025, 6, 15)

	suite.mockCurrencyRepo.On("ListCurrencies", ctx).Return([]domain.Currency{suite.usdCurrency()}, nil).Once()
	suite.mockBalanceRepo.On("ListDailyBalances", ctx, &[]string{"branch-1"}[0], from, to).Return([]domain.DailyBalance{
		{Date: from, CurrencyID: "usd-id", BranchID: "branch-1", Balance: decimal.RequireFromString("14200")},
		{Date: day(2025, 6, 10), CurrencyID: "usd-id", BranchID: "branch-1", Balance: decimal.RequireFromString("14890")},
		{Date: to, CurrencyID: "usd-id", BranchID: "branch-1", Balance: decimal.RequireFromString("15420.50")},
	}, nil).Once()

	reports, window, err := suite.service.BalanceReport(ctx, managerActor("branch-1"), domain.PeriodWeekly, "branch-1", time.Time{}, time.Time{})

	suite.Require().NoError(err)
	suite.Require().Len(reports, 1)
	suite.Equal(from, window.From)
	suite.Equal(to, window.To)
	report := reports[0]

	suite.Equal("usd-id", report.CurrencyID)
	suite.Equal("14200", report.StartBalance.String())
	suite.Equal("15420.5", report.EndBalance.String())
	suite.Equal("1220.5", report.NetChange.String())
	suite.Equal("8.6", report.ChangePercentage.String())

	// Only the stored snapshots appear, ascending; days without one are
	// absent from the series.
	suite.Require().Len(report.DailyData, 3)
	suite.Equal(from, report.DailyData[0].Date)
	suite.Equal("14890", report.DailyData[1].Balance.String())
	suite.Equal(to, report.DailyData[2].Date)
}

func (suite *ReportingServiceTestSuite) TestBalanceReport_ZeroStartGivesZeroPercentage() {
	ctx := context.Background()
	from, to := day(2025, 6, 14), day(2025, 6, 15)

	suite.mockCurrencyRepo.On("ListCurrencies", ctx).Return([]domain.Currency{suite.usdCurrency()}, nil).Once()
	suite.mockBalanceRepo.On("ListDailyBalances", ctx, &[]string{"branch-1"}[0], from, to).Return([]domain.DailyBalance{
		{Date: to, CurrencyID: "usd-id", BranchID: "branch-1", Balance: decimal.RequireFromString("300")},
	}, nil).Once()

	reports, _, err := suite.service.BalanceReport(ctx, adminActor(), domain.PeriodDaily, "branch-1", time.Time{}, time.Time{})

	suite.Require().NoError(err)
	suite.Require().Len(reports, 1)
	suite.Equal("0", reports[0].StartBalance.String())
	suite.Equal("300", reports[0].NetChange.String())
	suite.Equal("0", reports[0].ChangePercentage.String())

	// The snapshotless start day contributes the zero start balance but no
	// series point.
	suite.Require().Len(reports[0].DailyData, 1)
	suite.Equal(to, reports[0].DailyData[0].Date)
	suite.Equal("300", reports[0].DailyData[0].Balance.String())
}

func (suite *ReportingServiceTestSuite) TestBalanceReport_CombinedSumsBranches() {
	ctx := context.Background()
	from, to := day(2025, 6, 14), day(2025, 6, 15)

	suite.mockCurrencyRepo.On("ListCurrencies", ctx).Return([]domain.Currency{suite.usdCurrency()}, nil).Once()
	suite.mockBalanceRepo.On("ListDailyBalances", ctx, (*string)(nil), from, to).Return([]domain.DailyBalance{
		{Date: from, CurrencyID: "usd-id", BranchID: "branch-1", Balance: decimal.RequireFromString("100")},
		{Date: from, CurrencyID: "usd-id", BranchID: "branch-2", Balance: decimal.RequireFromString("250")},
		{Date: to, CurrencyID: "usd-id", BranchID: "branch-1", Balance: decimal.RequireFromString("120")},
		{Date: to, CurrencyID: "usd-id", BranchID: "branch-2", Balance: decimal.RequireFromString("280")},
	}, nil).Once()

	reports, _, err := suite.service.BalanceReport(ctx, adminActor(), domain.PeriodDaily, domain.CombinedBranchID, time.Time{}, time.Time{})

	suite.Require().NoError(err)
	suite.Require().Len(reports, 1)
	suite.Equal("350", reports[0].StartBalance.String())
	suite.Equal("400", reports[0].EndBalance.String())
	suite.Equal("50", reports[0].NetChange.String())
}

func (suite *ReportingServiceTestSuite) TestBalanceReport_ManagerDeniedCombined() {
	_, _, err := suite.service.BalanceReport(context.Background(), managerActor("branch-1"), domain.PeriodDaily, domain.CombinedBranchID, time.Time{}, time.Time{})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockBalanceRepo.AssertNotCalled(suite.T(), "ListDailyBalances")
}

func (suite *ReportingServiceTestSuite) TestBalanceReport_CustomWindow() {
	ctx := context.Background()
	from, to := day(2025, 5, 1), day(2025, 5, 3)

	suite.mockCurrencyRepo.On("ListCurrencies", ctx).Return([]domain.Currency{suite.usdCurrency()}, nil).Once()
	suite.mockBalanceRepo.On("ListDailyBalances", ctx, &[]string{"branch-1"}[0], from, to).
		Return([]domain.DailyBalance{}, nil).Once()

	reports, window, err := suite.service.BalanceReport(ctx, adminActor(), domain.PeriodCustom, "branch-1", from, to)

	suite.Require().NoError(err)
	suite.Require().Len(reports, 1)
	suite.Equal(from, window.From)
	suite.Equal(to, window.To)
	suite.Empty(reports[0].DailyData)
	suite.Equal("0", reports[0].StartBalance.String())
}

func (suite *ReportingServiceTestSuite) TestBalanceReport_CustomWindowInverted() {
	from, to := day(2025, 5, 3), day(2025, 5, 1)

	_, _, err := suite.service.BalanceReport(context.Background(), adminActor(), domain.PeriodCustom, "branch-1", from, to)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBalanceRepo.AssertNotCalled(suite.T(), "ListDailyBalances")
}

func (suite *ReportingServiceTestSuite) TestBalanceReport_UnknownPeriod() {
	_, _, err := suite.service.BalanceReport(context.Background(), adminActor(), domain.ReportPeriod("yearly"), "branch-1", time.Time{}, time.Time{})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestBalanceReport_CurrenciesInRegistryOrder() {
	ctx := context.Background()
	from, to := day(2025, 6, 14), day(2025, 6, 15)

	eur := domain.Currency{CurrencyID: "eur-id", Code: "EUR", Name: "Euro"}
	suite.mockCurrencyRepo.On("ListCurrencies", ctx).Return([]domain.Currency{suite.usdCurrency(), eur}, nil).Once()
	suite.mockBalanceRepo.On("ListDailyBalances", ctx, &[]string{"branch-1"}[0], from, to).
		Return([]domain.DailyBalance{}, nil).Once()

	reports, _, err := suite.service.BalanceReport(ctx, adminActor(), domain.PeriodDaily, "branch-1", time.Time{}, time.Time{})

	suite.Require().NoError(err)
	suite.Require().Len(reports, 2)
	suite.Equal("usd-id", reports[0].CurrencyID)
	suite.Equal("eur-id", reports[1].CurrencyID)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
