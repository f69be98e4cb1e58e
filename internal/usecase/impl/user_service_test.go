package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
	tokens   *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Tokens:   tokens,
		Logger:   logger,
	})

	return userServiceFixtures{
		service:  svc,
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "sara",
		Family:   "mohammadi",
		Email:    "sara@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "sara@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("Password123!").Return("$2a$10$hash", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "$2a$10$hash", user.PasswordHash)
			// An empty role set defaults to USER.
			assert.Equal(t, entity.Roles{entity.RoleUser}, user.Roles)
			user.ID = 7
		}).
		Return(nil)

	view, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, uint(7), view.ID)
	assert.Equal(t, "sara@example.com", view.Email)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "sara@example.com").
		Return(&entity.User{ID: 7, Email: "sara@example.com"}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "sara@example.com", Password: "Password123!"})
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestUserService_Register_ExplicitRoles(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "reza@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("Password123!").Return("$2a$10$hash", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, entity.Roles{entity.RoleServiceWorker}, user.Roles)
		}).
		Return(nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "reza@example.com",
		Password: "Password123!",
		Roles:    []string{"SERVICE_WORKER"},
	})
	require.NoError(t, err)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           7,
		Email:        "sara@example.com",
		PasswordHash: "$2a$10$hash",
		Roles:        entity.Roles{entity.RoleUser},
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "sara@example.com").Return(user, nil)
	fx.hasher.EXPECT().Compare("$2a$10$hash", "Password123!").Return(nil)
	fx.tokens.EXPECT().GenerateTokens(uint(7), []string{"USER"}).Return("access", "refresh", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "sara@example.com", Password: "Password123!"})
	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	require.NotNil(t, output.User)
	assert.Equal(t, uint(7), output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "sara@example.com").
		Return(&entity.User{ID: 7, PasswordHash: "$2a$10$hash"}, nil)
	fx.hasher.EXPECT().Compare("$2a$10$hash", "wrong").Return(errors.New("hash mismatch"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "sara@example.com", Password: "wrong"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmailSameError(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Current(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, uint(7)).
		Return(&entity.User{ID: 7, Name: "sara", Family: "mohammadi"}, nil)

	view, err := fx.service.Current(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "sara", view.Name)
}

func TestUserService_List(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		List(ctx).
		Return([]*entity.User{{ID: 7}, {ID: 8}}, nil)

	views, err := fx.service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, views, 2)
}
