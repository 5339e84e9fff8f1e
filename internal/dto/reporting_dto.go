package dto

import (
	"time"

	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalancePointResponse is one dated balance in a report series.
type BalancePointResponse struct {
	Date    string          `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// BalancePeriodReportResponse is the per-currency balance report.
type BalancePeriodReportResponse struct {
	CurrencyID       string                 `json:"currencyID"`
	Currency         CurrencyResponse       `json:"currency"`
	StartBalance     decimal.Decimal        `json:"startBalance"`
	EndBalance       decimal.Decimal        `json:"endBalance"`
	NetChange        decimal.Decimal        `json:"netChange"`
	ChangePercentage decimal.Decimal        `json:"changePercentage"`
	DailyData        []BalancePointResponse `json:"dailyData"`
}

// BalanceReportResponse wraps the per-currency reports with the resolved window.
type BalanceReportResponse struct {
	Period   string                        `json:"period"`
	BranchID string                        `json:"branchID"`
	From     string                        `json:"from"`
	To       string                        `json:"to"`
	Reports  []BalancePeriodReportResponse `json:"reports"`
}

// ToBalanceReportResponse converts domain reports to a DTO response.
func ToBalanceReportResponse(reports []domain.BalancePeriodReport, period domain.ReportPeriod, branchID string, from, to time.Time) BalanceReportResponse {
	response := BalanceReportResponse{
		Period:   string(period),
		BranchID: branchID,
		From:     from.Format("2006-01-02"),
		To:       to.Format("2006-01-02"),
		Reports:  make([]BalancePeriodReportResponse, len(reports)),
	}

	for i, r := range reports {
		points := make([]BalancePointResponse, len(r.DailyData))
		for j, p := range r.DailyData {
			points[j] = BalancePointResponse{
				Date:    p.Date.Format("2006-01-02"),
				Balance: p.Balance,
			}
		}
		response.Reports[i] = BalancePeriodReportResponse{
			CurrencyID:       r.CurrencyID,
			Currency:         ToCurrencyResponse(&r.Currency),
			StartBalance:     r.StartBalance,
			EndBalance:       r.EndBalance,
			NetChange:        r.NetChange,
			ChangePercentage: r.ChangePercentage,
			DailyData:        points,
		}
	}

	return response
}
