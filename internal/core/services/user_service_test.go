package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/trt_portal/internal/apperrors"
	"github.com/SscSPs/trt_portal/internal/core/domain"
	portssvc "github.com/SscSPs/trt_portal/internal/core/ports/services"
	"github.com/SscSPs/trt_portal/internal/core/services"
	"github.com/SscSPs/trt_portal/internal/dto"
	"github.com/SscSPs/trt_portal/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- CreateUser Tests ---
func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "jdoe",
		Email:    "JDoe@Example.com",
		Password: "password123",
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "jdoe").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "jdoe@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "jdoe" &&
			user.Email == "jdoe@example.com" &&
			user.Role == domain.RoleUser &&
			user.PasswordHash != "" && user.PasswordHash != req.Password &&
			user.CreatedBy == 1
	})).Return(int64(42), nil).Once()

	created, err := suite.service.CreateUser(ctx, req, 1)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(int64(42), created.UserID)
	suite.Equal(domain.ProviderLocal, created.AuthProvider)
	suite.True(utils.CheckPasswordHash(req.Password, created.PasswordHash))

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "jdoe", Email: "jdoe@example.com", Password: "password123"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "jdoe").Return(&domain.User{UserID: 7}, nil).Once()

	created, err := suite.service.CreateUser(ctx, req, 1)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_SaveError() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "jdoe", Email: "jdoe@example.com", Password: "password123", Role: "admin"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "jdoe").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "jdoe@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(int64(0), assert.AnError).Once()

	created, err := suite.service.CreateUser(ctx, req, 1)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, assert.AnError)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- GetUserByID Tests ---
func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(5)).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, 5)

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- ListUsers Tests ---
func (suite *UserServiceTestSuite) TestListUsers_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUsers", ctx, 20, 0).Return(nil, nil).Once()

	users, err := suite.service.ListUsers(ctx, 0, -3)

	suite.Require().NoError(err)
	suite.NotNil(users)
	suite.Empty(users)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- UpdateUser Tests ---
func (suite *UserServiceTestSuite) TestUpdateUser_SelfEmailChange() {
	ctx := context.Background()
	self := &domain.User{UserID: 3, Username: "jdoe", Email: "old@example.com", Role: domain.RoleUser}

	suite.mockUserRepo.On("FindUserByID", ctx, int64(3)).Return(self, nil).Twice()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == 3 && u.Email == "new@example.com" && u.LastUpdatedBy == 3
	})).Return(nil).Once()

	updated, err := suite.service.UpdateUser(ctx, 3, dto.UpdateUserRequest{Email: strPtr("New@Example.com")}, 3)

	suite.Require().NoError(err)
	suite.Equal("new@example.com", updated.Email)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_OtherUserForbidden() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(3)).Return(&domain.User{UserID: 3, Role: domain.RoleUser}, nil).Once()

	updated, err := suite.service.UpdateUser(ctx, 9, dto.UpdateUserRequest{Email: strPtr("x@example.com")}, 3)

	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUser_RoleChangeRequiresAdmin() {
	ctx := context.Background()
	self := &domain.User{UserID: 3, Role: domain.RoleUser}
	suite.mockUserRepo.On("FindUserByID", ctx, int64(3)).Return(self, nil).Twice()

	updated, err := suite.service.UpdateUser(ctx, 3, dto.UpdateUserRequest{Role: strPtr("admin")}, 3)

	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestUpdateUser_AdminPromotesUser() {
	ctx := context.Background()
	admin := &domain.User{UserID: 1, Role: domain.RoleAdmin}
	target := &domain.User{UserID: 3, Role: domain.RoleUser}
	suite.mockUserRepo.On("FindUserByID", ctx, int64(1)).Return(admin, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(3)).Return(target, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == 3 && u.Role == domain.RoleAdmin
	})).Return(nil).Once()

	updated, err := suite.service.UpdateUser(ctx, 3, dto.UpdateUserRequest{Role: strPtr("admin")}, 1)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, updated.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_NoChange() {
	ctx := context.Background()
	self := &domain.User{UserID: 3, Email: "same@example.com", Role: domain.RoleUser}
	suite.mockUserRepo.On("FindUserByID", ctx, int64(3)).Return(self, nil).Twice()

	updated, err := suite.service.UpdateUser(ctx, 3, dto.UpdateUserRequest{Email: strPtr("same@example.com")}, 3)

	suite.Require().NoError(err)
	suite.Equal(self, updated)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

// --- DeleteUser Tests ---
func (suite *UserServiceTestSuite) TestDeleteUser_Self() {
	err := suite.service.DeleteUser(context.Background(), 4, 4)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "DeleteUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_NotFound() {
	ctx := context.Background()
	suite.mockUserRepo.On("DeleteUser", ctx, int64(4)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteUser(ctx, 4, 1)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- AuthenticateUser Tests ---
func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	user := &domain.User{UserID: 2, Username: "jdoe", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "jdoe").Return(user, nil)
	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	got, err := suite.service.AuthenticateUser(ctx, "jdoe", "correct-horse")
	suite.Require().NoError(err)
	suite.Equal(int64(2), got.UserID)

	_, err = suite.service.AuthenticateUser(ctx, "jdoe", "wrong")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.AuthenticateUser(ctx, "ghost", "whatever")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_GoogleAccountHasNoPassword() {
	ctx := context.Background()
	user := &domain.User{UserID: 2, Username: "guser", AuthProvider: domain.ProviderGoogle}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "guser").Return(user, nil).Once()

	_, err := suite.service.AuthenticateUser(ctx, "guser", "")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
