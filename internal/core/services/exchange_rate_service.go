package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samandar-s/exchange_office_app/internal/apperrors"
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	portsrepo "github.com/samandar-s/exchange_office_app/internal/core/ports/repositories"
	portssvc "github.com/samandar-s/exchange_office_app/internal/core/ports/services"
	"github.com/samandar-s/exchange_office_app/internal/dto"
	"github.com/samandar-s/exchange_office_app/internal/utils/exchange"
	"github.com/shopspring/decimal"
)

// exchangeRateService provides business logic for manual exchange rates and
// pair resolution.
type exchangeRateService struct {
	BaseService
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade, authorizer portssvc.AuthorizerSvc) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		BaseService:  BaseService{Authorizer: authorizer},
		rateRepo:     rateRepo,
		currencyRepo: currencyRepo,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// CreateExchangeRate records a manually entered rate.
func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, actor domain.Actor, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	if err := s.Authorize(ctx, actor, domain.ActionManageRates, domain.Resource{}); err != nil {
		return nil, err
	}

	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if req.BaseCurrencyID == req.QuoteCurrencyID {
		return nil, fmt.Errorf("%w: base and quote currencies cannot be the same", apperrors.ErrSameCurrency)
	}

	// Check both currencies exist
	if _, err := s.currencyRepo.FindCurrencyByID(ctx, req.BaseCurrencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: base currency %s not found", apperrors.ErrValidation, req.BaseCurrencyID)
		}
		return nil, fmt.Errorf("failed to validate base currency: %w", err)
	}
	if _, err := s.currencyRepo.FindCurrencyByID(ctx, req.QuoteCurrencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: quote currency %s not found", apperrors.ErrValidation, req.QuoteCurrencyID)
		}
		return nil, fmt.Errorf("failed to validate quote currency: %w", err)
	}

	now := time.Now()
	rate := domain.ExchangeRate{
		ExchangeRateID:  uuid.NewString(),
		BaseCurrencyID:  req.BaseCurrencyID,
		QuoteCurrencyID: req.QuoteCurrencyID,
		Rate:            req.Rate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate",
			"base_currency_id", req.BaseCurrencyID, "quote_currency_id", req.QuoteCurrencyID)
		return nil, fmt.Errorf("failed to create exchange rate: %w", err)
	}

	return &rate, nil
}

// ResolveRate finds the applicable rate for a pair. A direct entry wins;
// failing that, the inverse of the opposite direction is derived. Identical
// currencies are an error, never a silent 1:1.
func (s *exchangeRateService) ResolveRate(ctx context.Context, baseCurrencyID, quoteCurrencyID string) (*domain.ResolvedRate, error) {
	if baseCurrencyID == quoteCurrencyID {
		return nil, fmt.Errorf("%w: cannot resolve a rate between %s and itself", apperrors.ErrSameCurrency, baseCurrencyID)
	}

	resolved, err := exchange.Resolve(baseCurrencyID, quoteCurrencyID, func(base, quote string) (*domain.ExchangeRate, error) {
		return s.rateRepo.FindLatestRate(ctx, base, quote)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrRateNotFound) {
			// No transitive hops through intermediate currencies.
			return nil, fmt.Errorf("%w: no rate stored between %s and %s in either direction",
				apperrors.ErrRateNotFound, baseCurrencyID, quoteCurrencyID)
		}
		return nil, err
	}

	return &resolved, nil
}

// ListExchangeRates retrieves stored rates newest first, paginated.
func (s *exchangeRateService) ListExchangeRates(ctx context.Context, page, pageSize int) ([]domain.ExchangeRate, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	rates, total, err := s.rateRepo.ListExchangeRates(ctx, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	return rates, total, nil
}
