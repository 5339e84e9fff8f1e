package services

import (
	"context"
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

// conversionService provides business logic for previewing and recording
// currency exchanges.
type conversionService struct {
	BaseService
	conversionRepo portsrepo.ConversionRepositoryFacade
	currencyRepo   portsrepo.CurrencyRepositoryFacade
	rateSvc        portssvc.ExchangeRateReaderSvc
}

// NewConversionService creates a new conversion service.
func NewConversionService(conversionRepo portsrepo.ConversionRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade, rateSvc portssvc.ExchangeRateReaderSvc, authorizer portssvc.AuthorizerSvc) portssvc.ConversionSvcFacade {
	return &conversionService{
		BaseService:    BaseService{Authorizer: authorizer},
		conversionRepo: conversionRepo,
		currencyRepo:   currencyRepo,
		rateSvc:        rateSvc,
	}
}

var _ portssvc.ConversionSvcFacade = (*conversionService)(nil)

// PreviewConversion resolves the rate for the pair and fills in whichever
// amount side the request left open. Editing the destination side divides
// back through the same rate, so the two directions stay consistent.
func (s *conversionService) PreviewConversion(ctx context.Context, req dto.ConversionPreviewRequest) (*dto.ConversionPreviewResponse, error) {
	if (req.FromAmount == nil) == (req.ToAmount == nil) {
		return nil, fmt.Errorf("%w: exactly one of fromAmount and toAmount must be set", apperrors.ErrValidation)
	}

	resolved, err := s.rateSvc.ResolveRate(ctx, req.FromCurrencyID, req.ToCurrencyID)
	if err != nil {
		return nil, err
	}

	var fromAmount, toAmount decimal.Decimal
	if req.FromAmount != nil {
		fromAmount = *req.FromAmount
		toAmount, err = exchange.ConvertAmount(fromAmount, resolved.Rate)
	} else {
		toAmount = *req.ToAmount
		fromAmount, err = exchange.InvertAmount(toAmount, resolved.Rate)
	}
	if err != nil {
		return nil, err
	}

	return &dto.ConversionPreviewResponse{
		FromCurrencyID: req.FromCurrencyID,
		ToCurrencyID:   req.ToCurrencyID,
		Rate:           resolved.Rate,
		RateDerived:    resolved.Derived,
		FromAmount:     fromAmount,
		ToAmount:       toAmount,
	}, nil
}

// RecordConversion validates, resolves the rate, computes the destination
// amount and persists the conversion with its paired ledger entries.
func (s *conversionService) RecordConversion(ctx context.Context, actor domain.Actor, req dto.RecordConversionRequest) (*domain.Conversion, error) {
	if err := s.Authorize(ctx, actor, domain.ActionRecordConversion, domain.Resource{BranchID: req.BranchID}); err != nil {
		return nil, err
	}

	if req.BranchID == domain.CombinedBranchID {
		return nil, fmt.Errorf("%w: conversions cannot be recorded against the combined view", apperrors.ErrValidation)
	}
	if !req.FromAmount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	fromCurrency, err := s.currencyRepo.FindCurrencyByID(ctx, req.FromCurrencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate source currency: %w", err)
	}
	toCurrency, err := s.currencyRepo.FindCurrencyByID(ctx, req.ToCurrencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate destination currency: %w", err)
	}

	resolved, err := s.rateSvc.ResolveRate(ctx, req.FromCurrencyID, req.ToCurrencyID)
	if err != nil {
		return nil, err
	}

	toAmount, err := exchange.ConvertAmount(req.FromAmount, resolved.Rate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	conversion := domain.Conversion{
		ConversionID:   uuid.NewString(),
		FromCurrencyID: req.FromCurrencyID,
		ToCurrencyID:   req.ToCurrencyID,
		FromAmount:     req.FromAmount,
		ToAmount:       toAmount,
		RateUsed:       resolved.Rate,
		UserID:         actor.UserID,
		BranchID:       req.BranchID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	// Every conversion writes two ledger entries, one per affected currency.
	ledgerEntries := []domain.BalanceTransaction{
		{
			TransactionID: uuid.NewString(),
			Type:          domain.BalanceConversionOut,
			CurrencyID:    req.FromCurrencyID,
			Amount:        req.FromAmount,
			Description:   fmt.Sprintf("Exchange %s to %s", fromCurrency.Code, toCurrency.Code),
			UserID:        actor.UserID,
			BranchID:      req.BranchID,
			CreatedAt:     now,
		},
		{
			TransactionID: uuid.NewString(),
			Type:          domain.BalanceConversionIn,
			CurrencyID:    req.ToCurrencyID,
			Amount:        toAmount,
			Description:   fmt.Sprintf("Exchange %s to %s", fromCurrency.Code, toCurrency.Code),
			UserID:        actor.UserID,
			BranchID:      req.BranchID,
			CreatedAt:     now,
		},
	}

	if err := s.conversionRepo.SaveConversion(ctx, conversion, ledgerEntries); err != nil {
		s.LogError(ctx, err, "Failed to save conversion",
			"from_currency_id", req.FromCurrencyID, "to_currency_id", req.ToCurrencyID, "branch_id", req.BranchID)
		return nil, fmt.Errorf("failed to record conversion: %w", err)
	}

	return &conversion, nil
}

// ListConversions retrieves conversion history visible to the actor.
func (s *conversionService) ListConversions(ctx context.Context, actor domain.Actor, branchID *string, page, pageSize int) ([]domain.Conversion, int, error) {
	resource := domain.Resource{}
	if branchID != nil {
		resource.BranchID = *branchID
	}
	if err := s.Authorize(ctx, actor, domain.ActionViewLedger, resource); err != nil {
		return nil, 0, err
	}

	// Managers without an explicit branch filter see only their branches; a
	// single-branch manager gets that branch, a multi-branch one must pick.
	if branchID == nil && actor.Role == domain.RoleManager {
		if len(actor.BranchIDs) != 1 {
			return nil, 0, fmt.Errorf("%w: branch filter required", apperrors.ErrValidation)
		}
		branchID = &actor.BranchIDs[0]
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	conversions, total, err := s.conversionRepo.ListConversions(ctx, branchID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list conversions: %w", err)
	}
	return conversions, total, nil
}
