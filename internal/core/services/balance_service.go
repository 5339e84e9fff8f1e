package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samandar-s/exchange_office_app/internal/apperrors"
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	portsrepo "github.com/samandar-s/exchange_office_app/internal/core/ports/repositories"
	portssvc "github.com/samandar-s/exchange_office_app/internal/core/ports/services"
	"github.com/samandar-s/exchange_office_app/internal/dto"
	"github.com/shopspring/decimal"
)

// balanceService provides business logic for the append-only balance ledger.
type balanceService struct {
	BaseService
	balanceRepo  portsrepo.BalanceRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewBalanceService creates a new balance service.
func NewBalanceService(balanceRepo portsrepo.BalanceRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade, authorizer portssvc.AuthorizerSvc) portssvc.BalanceSvcFacade {
	return &balanceService{
		BaseService:  BaseService{Authorizer: authorizer},
		balanceRepo:  balanceRepo,
		currencyRepo: currencyRepo,
	}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// RecordBalanceTransaction appends a manual ADD/SUBTRACT ledger entry. The
// id, timestamp, user and branch are stamped server-side; the client only
// chooses type, currency, amount and description.
func (s *balanceService) RecordBalanceTransaction(ctx context.Context, actor domain.Actor, req dto.CreateBalanceTransactionRequest) (*domain.BalanceTransaction, error) {
	if err := s.Authorize(ctx, actor, domain.ActionRecordBalance, domain.Resource{BranchID: req.BranchID}); err != nil {
		return nil, err
	}

	if req.BranchID == domain.CombinedBranchID {
		return nil, fmt.Errorf("%w: ledger entries cannot be recorded against the combined view", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description must not be empty", apperrors.ErrValidation)
	}

	txnType := domain.BalanceTransactionType(req.Type)
	if txnType != domain.BalanceAdd && txnType != domain.BalanceSubtract {
		return nil, fmt.Errorf("%w: type must be ADD or SUBTRACT", apperrors.ErrValidation)
	}

	if _, err := s.currencyRepo.FindCurrencyByID(ctx, req.CurrencyID); err != nil {
		return nil, fmt.Errorf("failed to validate currency: %w", err)
	}

	txn := domain.BalanceTransaction{
		TransactionID: uuid.NewString(),
		Type:          txnType,
		CurrencyID:    req.CurrencyID,
		Amount:        req.Amount,
		Description:   strings.TrimSpace(req.Description),
		UserID:        actor.UserID,
		BranchID:      req.BranchID,
		CreatedAt:     time.Now(),
	}

	if err := s.balanceRepo.SaveBalanceTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save balance transaction",
			"currency_id", req.CurrencyID, "branch_id", req.BranchID)
		return nil, fmt.Errorf("failed to record balance transaction: %w", err)
	}

	return &txn, nil
}

// ListBalanceTransactions retrieves ledger history visible to the actor.
func (s *balanceService) ListBalanceTransactions(ctx context.Context, actor domain.Actor, currencyID, branchID *string, page, pageSize int) ([]domain.BalanceTransaction, int, error) {
	resource := domain.Resource{}
	if branchID != nil {
		resource.BranchID = *branchID
	}
	if err := s.Authorize(ctx, actor, domain.ActionViewLedger, resource); err != nil {
		return nil, 0, err
	}

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

	txns, total, err := s.balanceRepo.ListBalanceTransactions(ctx, currencyID, branchID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list balance transactions: %w", err)
	}
	return txns, total, nil
}

// GetCurrentBalance computes the present balance of a currency at a branch.
func (s *balanceService) GetCurrentBalance(ctx context.Context, actor domain.Actor, currencyID, branchID string) (decimal.Decimal, error) {
	if err := s.Authorize(ctx, actor, domain.ActionViewLedger, domain.Resource{BranchID: branchID}); err != nil {
		return decimal.Zero, err
	}

	if branchID == domain.CombinedBranchID {
		return decimal.Zero, fmt.Errorf("%w: current balance is per branch; use reports for the combined view", apperrors.ErrValidation)
	}

	if _, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID); err != nil {
		return decimal.Zero, fmt.Errorf("failed to validate currency: %w", err)
	}

	balance, err := s.balanceRepo.GetCurrentBalance(ctx, currencyID, branchID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute current balance: %w", err)
	}
	return balance, nil
}
