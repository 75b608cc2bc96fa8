package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/trt_portal/internal/apperrors"
	"github.com/SscSPs/trt_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/trt_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trt_portal/internal/core/ports/services"
	"github.com/SscSPs/trt_portal/internal/dto"
	"github.com/SscSPs/trt_portal/internal/utils"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID int64) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.ensureUnique(ctx, username, email); err != nil {
		return nil, err
	}

	role := domain.RoleUser
	if req.Role != "" {
		role = domain.Role(req.Role)
		if !role.IsValid() {
			return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invalid role %q", req.Role))
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password", slog.String("username", username))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	id, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("username", username))
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}
	user.UserID = id

	s.LogInfo(ctx, "User created successfully", slog.Int64("user_id", id), slog.String("role", string(role)))
	return &user, nil
}

func (s *userService) ensureUnique(ctx context.Context, username, email string) error {
	if _, err := s.userRepo.FindUserByUsername(ctx, username); err == nil {
		return apperrors.NewConflictError(fmt.Sprintf("username %q is already taken", username))
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check username uniqueness", slog.String("username", username))
		return err
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return apperrors.NewConflictError(fmt.Sprintf("email %q is already registered", email))
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check email uniqueness")
		return err
	}
	return nil
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.Int64("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest, requestingUserID int64) (*domain.User, error) {
	requester, err := s.GetUserByID(ctx, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("requesting user no longer exists")
		}
		return nil, err
	}
	if err := s.AuthorizeSelfOrAdmin(ctx, requester, userID); err != nil {
		return nil, err
	}

	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.Email {
			if existing, err := s.userRepo.FindUserByEmail(ctx, email); err == nil && existing.UserID != user.UserID {
				return nil, apperrors.NewConflictError(fmt.Sprintf("email %q is already registered", email))
			} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return nil, err
			}
			user.Email = email
			updated = true
		}
	}
	if req.Role != nil && domain.Role(*req.Role) != user.Role {
		if !requester.IsAdmin() {
			return nil, apperrors.NewForbiddenError("only admins can change roles")
		}
		role := domain.Role(*req.Role)
		if !role.IsValid() {
			return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invalid role %q", *req.Role))
		}
		user.Role = role
		updated = true
	}
	if req.Password != nil {
		if user.AuthProvider != domain.ProviderLocal {
			return nil, apperrors.NewValidationFailedError("password cannot be set for externally authenticated users")
		}
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
		updated = true
	}

	if !updated {
		return user, nil
	}

	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = requestingUserID
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to update user in service: %w", err)
	}

	s.LogInfo(ctx, "User updated successfully", slog.Int64("user_id", userID))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID int64, requestingUserID int64) error {
	if userID == requestingUserID {
		return apperrors.NewValidationFailedError("users cannot delete themselves")
	}
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete user", slog.Int64("user_id", userID))
		}
		return err
	}
	s.LogInfo(ctx, "User deleted", slog.Int64("user_id", userID), slog.Int64("deleted_by", requestingUserID))
	return nil
}

func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Login attempt for unknown user", slog.String("username", username))
			return nil, apperrors.NewUnauthorizedError("invalid username or password")
		}
		s.LogError(ctx, err, "Failed to find user for login")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Login attempt with wrong password", slog.Int64("user_id", user.UserID))
		return nil, apperrors.NewUnauthorizedError("invalid username or password")
	}
	return user, nil
}
