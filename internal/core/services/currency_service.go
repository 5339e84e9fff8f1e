package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	portsrepo "github.com/samandar-s/exchange_office_app/internal/core/ports/repositories"
	portssvc "github.com/samandar-s/exchange_office_app/internal/core/ports/services"
	"github.com/samandar-s/exchange_office_app/internal/dto"
)

// currencyService provides business logic for the currency registry.
type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, authorizer portssvc.AuthorizerSvc) portssvc.CurrencySvcFacade {
	return &currencyService{
		BaseService:  BaseService{Authorizer: authorizer},
		currencyRepo: currencyRepo,
	}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// CreateCurrency adds a currency to the registry.
func (s *currencyService) CreateCurrency(ctx context.Context, actor domain.Actor, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	if err := s.Authorize(ctx, actor, domain.ActionManageCurrencies, domain.Resource{}); err != nil {
		return nil, err
	}

	now := time.Now()
	currency := domain.Currency{
		CurrencyID:   uuid.NewString(),
		Code:         req.Code,
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to save currency", "code", req.Code)
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}

	return &currency, nil
}

// GetCurrencyByID retrieves a specific currency by id.
func (s *currencyService) GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by ID: %w", err)
	}
	return currency, nil
}

// GetCurrencyByCode retrieves a specific currency by code.
func (s *currencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves the registry in its fixed enumeration order.
func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
