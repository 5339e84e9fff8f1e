package services

import (
	"context"
	"time"

	"github.com/samandar-s/exchange_office_app/internal/core/domain"
)

// ReportingSvcFacade defines operations for period balance reporting
type ReportingSvcFacade interface {
	// BalanceReport builds a per-currency balance report for the requested
	// period and branch, returning the resolved window alongside the
	// reports. For custom periods from and to bound the window; for the
	// named periods they are ignored.
	BalanceReport(ctx context.Context, actor domain.Actor, period domain.ReportPeriod, branchID string, from, to time.Time) ([]domain.BalancePeriodReport, domain.ReportWindow, error)
}
