package services

import (
	"context"
	"fmt"
	"time"

	"github.com/samandar-s/exchange_office_app/internal/apperrors"
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	portsrepo "github.com/samandar-s/exchange_office_app/internal/core/ports/repositories"
	portssvc "github.com/samandar-s/exchange_office_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService builds per-currency balance reports over daily snapshots.
type reportingService struct {
	BaseService
	balanceRepo  portsrepo.BalanceRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
	now          func() time.Time
}

// ReportingServiceOption configures the reporting service.
type ReportingServiceOption func(*reportingService)

// WithClock overrides the time source used to anchor report windows.
func WithClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service.
func NewReportingService(balanceRepo portsrepo.BalanceRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade, authorizer portssvc.AuthorizerSvc, opts ...ReportingServiceOption) portssvc.ReportingSvcFacade {
	s := &reportingService{
		BaseService:  BaseService{Authorizer: authorizer},
		balanceRepo:  balanceRepo,
		currencyRepo: currencyRepo,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// resolveWindow turns a period into a concrete [from, to] date range anchored
// at the service clock. Custom periods use the caller-provided bounds.
func (s *reportingService) resolveWindow(period domain.ReportPeriod, from, to time.Time) (time.Time, time.Time, error) {
	end := dateOnly(s.now())
	switch period {
	case domain.PeriodDaily:
		return end.AddDate(0, 0, -1), end, nil
	case domain.PeriodWeekly:
		return end.AddDate(0, 0, -7), end, nil
	case domain.PeriodMonthly:
		return end.AddDate(0, 0, -30), end, nil
	case domain.PeriodCustom:
		from, to = dateOnly(from), dateOnly(to)
		if from.After(to) {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: custom range start must not be after its end", apperrors.ErrValidation)
		}
		return from, to, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown report period %q", apperrors.ErrValidation, period)
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BalanceReport builds the per-currency balance report for the requested
// period and branch. Currencies are reported in registry order; a missing
// snapshot at a window bound counts as zero rather than being an error.
func (s *reportingService) BalanceReport(ctx context.Context, actor domain.Actor, period domain.ReportPeriod, branchID string, from, to time.Time) ([]domain.BalancePeriodReport, domain.ReportWindow, error) {
	if err := s.Authorize(ctx, actor, domain.ActionViewReports, domain.Resource{BranchID: branchID}); err != nil {
		return nil, domain.ReportWindow{}, err
	}

	windowFrom, windowTo, err := s.resolveWindow(period, from, to)
	if err != nil {
		return nil, domain.ReportWindow{}, err
	}
	window := domain.ReportWindow{From: windowFrom, To: windowTo}

	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, window, fmt.Errorf("failed to list currencies for report: %w", err)
	}

	var branchFilter *string
	if branchID != domain.CombinedBranchID {
		branchFilter = &branchID
	}

	snapshots, err := s.balanceRepo.ListDailyBalances(ctx, branchFilter, windowFrom, windowTo)
	if err != nil {
		return nil, window, fmt.Errorf("failed to load daily balances: %w", err)
	}

	// Index snapshots by currency and date. For the combined view the same
	// currency and date appear once per branch and are summed.
	byCurrency := make(map[string]map[string]decimal.Decimal)
	for _, snap := range snapshots {
		dateKey := dateOnly(snap.Date).Format("2006-01-02")
		if byCurrency[snap.CurrencyID] == nil {
			byCurrency[snap.CurrencyID] = make(map[string]decimal.Decimal)
		}
		byCurrency[snap.CurrencyID][dateKey] = byCurrency[snap.CurrencyID][dateKey].Add(snap.Balance)
	}

	reports := make([]domain.BalancePeriodReport, 0, len(currencies))
	for _, currency := range currencies {
		balances := byCurrency[currency.CurrencyID]

		// The series carries stored snapshots only. Days without a
		// snapshot are absent, not zero points.
		dailyData := make([]domain.BalancePoint, 0, len(balances))
		for day := windowFrom; !day.After(windowTo); day = day.AddDate(0, 0, 1) {
			if b, ok := balances[day.Format("2006-01-02")]; ok {
				dailyData = append(dailyData, domain.BalancePoint{Date: day, Balance: b})
			}
		}

		startBalance := balanceAt(balances, windowFrom)
		endBalance := balanceAt(balances, windowTo)
		netChange := endBalance.Sub(startBalance)

		changePercentage := decimal.Zero
		if !startBalance.IsZero() {
			changePercentage = netChange.Div(startBalance).Mul(decimal.NewFromInt(100)).Round(2)
		}

		reports = append(reports, domain.BalancePeriodReport{
			CurrencyID:       currency.CurrencyID,
			Currency:         currency,
			StartBalance:     startBalance,
			EndBalance:       endBalance,
			NetChange:        netChange,
			ChangePercentage: changePercentage,
			DailyData:        dailyData,
		})
	}

	return reports, window, nil
}

// balanceAt looks up the summed snapshot for a date, zero when absent.
func balanceAt(balances map[string]decimal.Decimal, day time.Time) decimal.Decimal {
	if b, ok := balances[day.Format("2006-01-02")]; ok {
		return b
	}
	return decimal.Zero
}
