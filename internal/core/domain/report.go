package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportPeriod selects the aggregation window for balance reports.
type ReportPeriod string

const (
	PeriodDaily   ReportPeriod = "daily"
	PeriodWeekly  ReportPeriod = "weekly"
	PeriodMonthly ReportPeriod = "monthly"
	PeriodCustom  ReportPeriod = "custom"
)

// ReportWindow is the concrete [From, To] date range a report was built over,
// after named periods have been anchored at the current date.
type ReportWindow struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// BalancePoint is one dated balance value in a report series.
type BalancePoint struct {
	Date    time.Time       `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// BalancePeriodReport is the per-currency output of the balance aggregator.
type BalancePeriodReport struct {
	CurrencyID       string          `json:"currencyID"`
	Currency         Currency        `json:"currency"`
	StartBalance     decimal.Decimal `json:"startBalance"` // Zero when no snapshot exists at window start
	EndBalance       decimal.Decimal `json:"endBalance"`   // Zero when no snapshot exists at window end
	NetChange        decimal.Decimal `json:"netChange"`
	ChangePercentage decimal.Decimal `json:"changePercentage"` // Defined as 0 when StartBalance is 0
	DailyData        []BalancePoint  `json:"dailyData"`        // Stored snapshots only, ascending by date
}
