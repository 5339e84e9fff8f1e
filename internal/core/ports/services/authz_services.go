package services

import (
	"context"

	"github.com/samandar-s/exchange_office_app/internal/core/domain"
)

// AuthorizerSvc decides whether an actor may perform an action on a resource
type AuthorizerSvc interface {
	// CanPerform returns nil when the action is allowed, apperrors.ErrForbidden
	// otherwise.
	CanPerform(ctx context.Context, actor domain.Actor, action domain.Action, resource domain.Resource) error
}
