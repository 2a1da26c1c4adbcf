package usecase

import (
	"context"

	"courier/internal/domain/entity"
)

// RegisterInput represents the input for creating an account.
type RegisterInput struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=6"`
	Role     entity.Role `json:"role"`
	Phone    string      `json:"phone,omitempty"`
	Address  string      `json:"address,omitempty"`
}

// LoginInput represents the credentials for logging in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the issued tokens and the authenticated user.
type LoginOutput struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

// UpdateUserInput represents a partial user update. Nil fields are untouched.
type UpdateUserInput struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// UserUsecase covers registration, login and user administration.
type UserUsecase interface {
	// Register creates an account. The default role is customer.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues a token pair. Deactivated
	// accounts are rejected even with a correct password.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Refresh redeems a refresh token for a fresh token pair. The account
	// must still exist and be active.
	Refresh(ctx context.Context, refreshToken string) (*LoginOutput, error)

	FindByID(ctx context.Context, id uint) (*entity.User, error)
	List(ctx context.Context, role *entity.Role) ([]*entity.User, error)

	// ListAgents returns active delivery agents, for assignment pickers.
	ListAgents(ctx context.Context) ([]*entity.User, error)

	Update(ctx context.Context, id uint, input *UpdateUserInput) (*entity.User, error)

	// ToggleActive flips the account's active flag.
	ToggleActive(ctx context.Context, id uint) (*entity.User, error)

	// UpdateRole changes the account's role.
	UpdateRole(ctx context.Context, id uint, role entity.Role) (*entity.User, error)

	Delete(ctx context.Context, id uint) error
}
