package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/trt_portal/internal/apperrors"
	"github.com/SscSPs/trt_portal/internal/core/domain"
	"github.com/SscSPs/trt_portal/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// AuthorizeSelfOrAdmin allows the action when the requester is the target user or an admin.
func (s *BaseService) AuthorizeSelfOrAdmin(ctx context.Context, requester *domain.User, targetUserID int64) error {
	if requester.UserID == targetUserID || requester.IsAdmin() {
		return nil
	}
	s.LogDebug(ctx, "Requester is neither the target user nor an admin",
		slog.Int64("requester_id", requester.UserID),
		slog.Int64("target_user_id", targetUserID))
	return apperrors.NewForbiddenError("not allowed to act on this user")
}
