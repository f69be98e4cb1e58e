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
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBusinessService(t *testing.T) (usecase.BusinessUsecase, *mockRepo.MockBusinessRepository) {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewBusinessService(BusinessServiceParams{
		BusinessRepo: businessRepo,
		Logger:       logger,
	})

	return svc, businessRepo
}

func sampleBusinessInput() *usecase.BusinessInput {
	return &usecase.BusinessInput{
		Name:         "ali",
		Family:       "ahmadi",
		BusinessName: "Ahmadi Market",
		Address:      "Valiasr St 12",
		Mobile:       "09121234567",
		NationalID:   "0012345678",
	}
}

func TestBusinessService_Create_Success(t *testing.T) {
	svc, businessRepo := createTestBusinessService(t)
	ctx := context.Background()

	businessRepo.EXPECT().MobileExists(ctx, "09121234567", uint(0)).Return(false, nil)
	businessRepo.EXPECT().NationalIDExists(ctx, "0012345678", uint(0)).Return(false, nil)
	businessRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Business")).
		Run(func(_ context.Context, business *entity.Business) {
			assert.Equal(t, uint(7), business.StoreUserID)
			business.ID = 3
		}).
		Return(nil)

	view, err := svc.Create(ctx, 7, sampleBusinessInput())
	require.NoError(t, err)
	assert.Equal(t, uint(3), view.ID)
	assert.Equal(t, "Ahmadi Market", view.BusinessName)
}

func TestBusinessService_Create_DuplicateMobile(t *testing.T) {
	svc, businessRepo := createTestBusinessService(t)
	ctx := context.Background()

	businessRepo.EXPECT().MobileExists(ctx, "09121234567", uint(0)).Return(true, nil)

	_, err := svc.Create(ctx, 7, sampleBusinessInput())

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Errors, "The mobile has already been taken.")
}

func TestBusinessService_Create_DuplicateNationalID(t *testing.T) {
	svc, businessRepo := createTestBusinessService(t)
	ctx := context.Background()

	businessRepo.EXPECT().MobileExists(ctx, "09121234567", uint(0)).Return(false, nil)
	businessRepo.EXPECT().NationalIDExists(ctx, "0012345678", uint(0)).Return(true, nil)

	_, err := svc.Create(ctx, 7, sampleBusinessInput())

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Errors, "The national id has already been taken.")
}

func TestBusinessService_Create_EmptyNationalIDSkipsCheck(t *testing.T) {
	svc, businessRepo := createTestBusinessService(t)
	ctx := context.Background()

	input := sampleBusinessInput()
	input.NationalID = ""

	businessRepo.EXPECT().MobileExists(ctx, "09121234567", uint(0)).Return(false, nil)
	businessRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Business")).Return(nil)

	_, err := svc.Create(ctx, 7, input)
	require.NoError(t, err)
}

func TestBusinessService_Update_ExcludesOwnRowFromUniqueness(t *testing.T) {
	svc, businessRepo := createTestBusinessService(t)
	ctx := context.Background()

	businessRepo.EXPECT().
		FindByID(ctx, uint(3)).
		Return(&entity.Business{ID: 3, Name: "old", Mobile: "09120000000", StoreUserID: 7}, nil)
	businessRepo.EXPECT().MobileExists(ctx, "09121234567", uint(3)).Return(false, nil)
	businessRepo.EXPECT().NationalIDExists(ctx, "0012345678", uint(3)).Return(false, nil)
	businessRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Business")).
		Run(func(_ context.Context, business *entity.Business) {
			assert.Equal(t, "ali", business.Name)
			assert.Equal(t, "09121234567", business.Mobile)
			// Ownership is immutable through update.
			assert.Equal(t, uint(7), business.StoreUserID)
		}).
		Return(nil)

	view, err := svc.Update(ctx, 3, sampleBusinessInput())
	require.NoError(t, err)
	assert.Equal(t, "ali", view.Name)
}

func TestBusinessService_Update_NotFound(t *testing.T) {
	svc, businessRepo := createTestBusinessService(t)
	ctx := context.Background()

	businessRepo.EXPECT().FindByID(ctx, uint(404)).Return(nil, repository.ErrBusinessNotFound)

	_, err := svc.Update(ctx, 404, sampleBusinessInput())
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}

func TestBusinessService_List(t *testing.T) {
	svc, businessRepo := createTestBusinessService(t)
	ctx := context.Background()

	businessRepo.EXPECT().
		List(ctx, "market").
		Return([]*entity.Business{{ID: 3, BusinessName: "Ahmadi Market"}}, nil)

	views, err := svc.List(ctx, "market")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Ahmadi Market", views[0].BusinessName)
}

func TestBusinessService_Delete(t *testing.T) {
	svc, businessRepo := createTestBusinessService(t)
	ctx := context.Background()

	businessRepo.EXPECT().FindByID(ctx, uint(3)).Return(&entity.Business{ID: 3}, nil)
	businessRepo.EXPECT().Delete(ctx, uint(3)).Return(nil)

	require.NoError(t, svc.Delete(ctx, 3))
}
