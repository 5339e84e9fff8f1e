package services

import (
	"context"
	"log/slog"

	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	portssvc "github.com/samandar-s/exchange_office_app/internal/core/ports/services"
	"github.com/samandar-s/exchange_office_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Authorizer portssvc.AuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Authorize checks the action against the configured policy.
func (s *BaseService) Authorize(ctx context.Context, actor domain.Actor, action domain.Action, resource domain.Resource) error {
	if s.Authorizer != nil {
		return s.Authorizer.CanPerform(ctx, actor, action, resource)
	}
	s.LogDebug(ctx, "No authorizer configured, access granted",
		slog.String("user_id", actor.UserID),
		slog.String("action", string(action)))
	return nil
}
