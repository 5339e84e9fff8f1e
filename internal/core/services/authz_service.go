package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samandar-s/exchange_office_app/internal/apperrors"
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	portssvc "github.com/samandar-s/exchange_office_app/internal/core/ports/services"
	"github.com/samandar-s/exchange_office_app/internal/middleware"
)

// authorizerService is the single place access rules live. Handlers and other
// services never test roles inline; they ask this policy.
type authorizerService struct{}

// NewAuthorizerService creates the role/branch policy.
func NewAuthorizerService() portssvc.AuthorizerSvc {
	return &authorizerService{}
}

var _ portssvc.AuthorizerSvc = (*authorizerService)(nil)

// managerActions are the branch-scoped operations a manager may perform on
// their assigned branches. Everything else is admin-only.
var managerActions = map[domain.Action]bool{
	domain.ActionRecordConversion: true,
	domain.ActionRecordBalance:    true,
	domain.ActionViewLedger:       true,
	domain.ActionViewReports:      true,
}

// CanPerform returns nil when the actor may perform the action on the
// resource, apperrors.ErrForbidden otherwise.
func (s *authorizerService) CanPerform(ctx context.Context, actor domain.Actor, action domain.Action, resource domain.Resource) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.Role == domain.RoleAdmin {
		return nil
	}

	if actor.Role != domain.RoleManager {
		logger.Warn("Unknown role denied", slog.String("user_id", actor.UserID), slog.String("role", string(actor.Role)))
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrForbidden, actor.Role)
	}

	if !managerActions[action] {
		logger.Warn("Manager denied admin-only action",
			slog.String("user_id", actor.UserID),
			slog.String("action", string(action)))
		return fmt.Errorf("%w: action %s requires the ADMIN role", apperrors.ErrForbidden, action)
	}

	if resource.BranchID != "" && !actor.CanAccessBranch(resource.BranchID) {
		logger.Warn("Manager denied branch access",
			slog.String("user_id", actor.UserID),
			slog.String("action", string(action)),
			slog.String("branch_id", resource.BranchID))
		return fmt.Errorf("%w: no access to branch %s", apperrors.ErrForbidden, resource.BranchID)
	}

	return nil
}
