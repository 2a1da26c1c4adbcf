package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	mockRepo "courier/internal/mocks/repository"
	mockSvc "courier/internal/mocks/service"
	"courier/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		UserRepo:       userRepo,
		PasswordHasher: hasher,
		TokenService:   tokenService,
		Logger:         logger,
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 1
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, user.Email)
	assert.Equal(t, "hashed_password", user.PasswordHash)
	assert.Equal(t, entity.RoleCustomer, user.Role)
	assert.True(t, user.IsActive)
}

func TestUserService_Register_EmailAlreadyExists(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.User{ID: 7, Email: input.Email}, nil)

	user, err := fx.service.Register(ctx, input)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestUserService_Register_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
		Role:     entity.Role("superuser"),
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.Register(ctx, input)

	assert.Nil(t, user)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           42,
		Email:        "agent@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleDeliveryAgent,
		IsActive:     true,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateTokens(user).Return("access", "refresh", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           42,
		Email:        "agent@example.com",
		PasswordHash: "hashed_password",
		IsActive:     true,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "wrong",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_DeactivatedAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           42,
		Email:        "blocked@example.com",
		PasswordHash: "hashed_password",
		IsActive:     false,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", user.PasswordHash).Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDeactivated)
}

func TestUserService_Refresh_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:       8,
		Email:    "test@example.com",
		Role:     entity.RoleCustomer,
		IsActive: true,
	}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old_refresh_token").
		Return(&service.Claims{UserID: user.ID, Type: "refresh"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(user).
		Return("new_access_token", "new_refresh_token", nil)

	output, err := fx.service.Refresh(ctx, "old_refresh_token")

	require.NoError(t, err)
	assert.Equal(t, "new_access_token", output.AccessToken)
	assert.Equal(t, "new_refresh_token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token type is not refresh"))

	output, err := fx.service.Refresh(context.Background(), "garbage")

	assert.Nil(t, output)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.ErrorCode())
}

func TestUserService_Refresh_UserDeleted(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("orphan_token").
		Return(&service.Claims{UserID: 99, Type: "refresh"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, uint(99)).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Refresh(ctx, "orphan_token")

	assert.Nil(t, output)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.ErrorCode())
}

func TestUserService_Refresh_DeactivatedAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: 8, IsActive: false}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh_token").
		Return(&service.Claims{UserID: user.ID, Type: "refresh"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	output, err := fx.service.Refresh(ctx, "refresh_token")

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDeactivated)
}

func TestUserService_FindByID_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, uint(99)).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.FindByID(ctx, 99)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListAgents(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	agents := []*entity.User{
		{ID: 1, Name: "Agent A", Role: entity.RoleDeliveryAgent, IsActive: true},
		{ID: 2, Name: "Agent B", Role: entity.RoleDeliveryAgent, IsActive: true},
	}

	fx.userRepo.EXPECT().ListActiveByRole(ctx, entity.RoleDeliveryAgent).Return(agents, nil)

	result, err := fx.service.ListAgents(ctx)

	require.NoError(t, err)
	assert.Equal(t, agents, result)
}

func TestUserService_ToggleActive(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: 5, IsActive: true}

	fx.userRepo.EXPECT().FindByID(ctx, uint(5)).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	updated, err := fx.service.ToggleActive(ctx, 5)

	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestUserService_UpdateRole_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	user, err := fx.service.UpdateRole(ctx, 5, entity.Role("superuser"))

	assert.Nil(t, user)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserService_Delete_RepoFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: 5}

	fx.userRepo.EXPECT().FindByID(ctx, uint(5)).Return(user, nil)
	fx.userRepo.EXPECT().Delete(ctx, uint(5)).Return(errors.New("db down"))

	err := fx.service.Delete(ctx, 5)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete user")
}
