package usecase

import "context"

// RegisterInput defines the data required to register a new account.
// Roles is optional; an empty set defaults to {USER}.
type RegisterInput struct {
	Name     string   `json:"name" validate:"required,max=255"`
	Family   string   `json:"family" validate:"required,max=255"`
	Email    string   `json:"email" validate:"required,email,max=255"`
	Phone    string   `json:"phone" validate:"omitempty,max=20"`
	Password string   `json:"password" validate:"required,min=8,max=72"`
	Roles    []string `json:"roles" validate:"omitempty,dive,oneof=USER ADMIN SERVICE_WORKER VISITOR"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput returns the token pair issued after a successful login.
type LoginOutput struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	User         *UserView `json:"user"`
}

// UserUsecase defines identity operations.
type UserUsecase interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, input *RegisterInput) (*UserView, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Current returns the account identified by userID.
	Current(ctx context.Context, userID uint) (*UserView, error)

	// List returns all accounts. Admin-only surface.
	List(ctx context.Context) ([]*UserView, error)
}
