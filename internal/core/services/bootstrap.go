package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/trt_portal/internal/apperrors"
	"github.com/SscSPs/trt_portal/internal/core/domain"
	portssvc "github.com/SscSPs/trt_portal/internal/core/ports/services"
	"github.com/SscSPs/trt_portal/internal/dto"
)

// systemUserID is recorded as the creator of rows written at startup.
const systemUserID int64 = 0

// EnsureAdminUser creates an admin with the given credentials unless a user
// with that username already exists. It reports whether a user was created.
func EnsureAdminUser(ctx context.Context, users portssvc.UserSvcFacade, username, email, password string) (bool, error) {
	logger := slog.Default().With(slog.String("username", username))

	existing, err := users.GetUserByUsername(ctx, username)
	if err == nil {
		if existing.Role != domain.RoleAdmin {
			logger.Warn("Bootstrap admin username belongs to a non-admin user")
		}
		return false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return false, fmt.Errorf("failed to look up bootstrap admin: %w", err)
	}

	_, err = users.CreateUser(ctx, dto.CreateUserRequest{
		Username: username,
		Email:    email,
		Password: password,
		Role:     string(domain.RoleAdmin),
	}, systemUserID)
	if err != nil {
		return false, fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	logger.Info("Bootstrap admin user created")
	return true, nil
}
