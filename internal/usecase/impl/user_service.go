package impl

import (
	"context"
	"log/slog"

	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	"courier/internal/errors"
	"courier/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo       repository.UserRepository
	passwordHasher service.PasswordHasher
	tokenService   service.TokenService
	logger         *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	PasswordHasher service.PasswordHasher
	TokenService   service.TokenService
	Logger         *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:       params.UserRepo,
		passwordHasher: params.PasswordHasher,
		tokenService:   params.TokenService,
		logger:         params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account. The default role is customer.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email uniqueness")
	}

	role := input.Role
	if role == "" {
		role = entity.RoleCustomer
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + string(role))
	}

	hash, err := srv.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		Phone:        input.Phone,
		Address:      input.Address,
		IsActive:     true,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered",
		slog.Uint64("userID", uint64(user.ID)),
		slog.String("role", string(user.Role)),
	)

	return user, nil
}

// Login verifies credentials and issues a token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.passwordHasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domainerrors.ErrAccountDeactivated
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Info("User logged in", slog.Uint64("userID", uint64(user.ID)))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh redeems a refresh token for a fresh token pair. The account is
// reloaded so a deactivated or deleted user cannot keep rotating tokens.
func (srv *userService) Refresh(ctx context.Context, refreshToken string) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WithDetails("invalid refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized.WithDetails("invalid refresh token")
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	if !user.IsActive {
		return nil, domainerrors.ErrAccountDeactivated
	}

	accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Info("Tokens refreshed", slog.Uint64("userID", uint64(user.ID)))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		User:         user,
	}, nil
}

// FindByID retrieves a user by ID.
func (srv *userService) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return srv.findUser(ctx, id)
}

// List returns users, optionally filtered by role.
func (srv *userService) List(ctx context.Context, role *entity.Role) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// ListAgents returns active delivery agents.
func (srv *userService) ListAgents(ctx context.Context) ([]*entity.User, error) {
	agents, err := srv.userRepo.ListActiveByRole(ctx, entity.RoleDeliveryAgent)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list delivery agents")
	}

	return agents, nil
}

// Update applies a partial profile edit.
func (srv *userService) Update(ctx context.Context, id uint, input *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Address != nil {
		user.Address = *input.Address
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// ToggleActive flips the account's active flag.
func (srv *userService) ToggleActive(ctx context.Context, id uint) (*entity.User, error) {
	user, err := srv.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsActive = !user.IsActive

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to toggle user active flag")
	}

	srv.log(ctx).Info("User active flag toggled",
		slog.Uint64("userID", uint64(user.ID)),
		slog.Bool("isActive", user.IsActive),
	)

	return user, nil
}

// UpdateRole changes the account's role.
func (srv *userService) UpdateRole(ctx context.Context, id uint, role entity.Role) (*entity.User, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + string(role))
	}

	user, err := srv.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = role

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user role")
	}

	return user, nil
}

// Delete removes a user account.
func (srv *userService) Delete(ctx context.Context, id uint) error {
	if _, err := srv.findUser(ctx, id); err != nil {
		return err
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}

func (srv *userService) findUser(ctx context.Context, id uint) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return user, nil
}
