package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/trt_portal/internal/apperrors"
	"github.com/SscSPs/trt_portal/internal/core/domain"
	"github.com/SscSPs/trt_portal/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnsureAdminUser_CreatesMissingAdmin(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	repo.On("FindUserByUsername", ctx, "admin").Return(nil, apperrors.ErrNotFound).Twice()
	repo.On("FindUserByEmail", ctx, "admin@example.com").Return(nil, apperrors.ErrNotFound).Once()
	repo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "admin" && u.Role == domain.RoleAdmin && u.CreatedBy == 0
	})).Return(int64(1), nil).Once()

	created, err := services.EnsureAdminUser(ctx, services.NewUserService(repo), "admin", "admin@example.com", "changeme")

	require.NoError(t, err)
	assert.True(t, created)
	repo.AssertExpectations(t)
}

func TestEnsureAdminUser_ExistingUserIsLeftAlone(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	repo.On("FindUserByUsername", ctx, "admin").Return(&domain.User{UserID: 1, Username: "admin", Role: domain.RoleAdmin}, nil).Once()

	created, err := services.EnsureAdminUser(ctx, services.NewUserService(repo), "admin", "admin@example.com", "changeme")

	require.NoError(t, err)
	assert.False(t, created)
	repo.AssertNotCalled(t, "SaveUser", mock.Anything, mock.Anything)
}

func TestEnsureAdminUser_LookupFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	repo.On("FindUserByUsername", ctx, "admin").Return(nil, errors.New("connection refused")).Once()

	created, err := services.EnsureAdminUser(ctx, services.NewUserService(repo), "admin", "admin@example.com", "changeme")

	require.Error(t, err)
	assert.False(t, created)
}
