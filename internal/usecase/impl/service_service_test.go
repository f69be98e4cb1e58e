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

func createTestServiceCatalog(t *testing.T) (usecase.ServiceUsecase, *mockRepo.MockServiceRepository) {
	serviceRepo := mockRepo.NewMockServiceRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewServiceCatalogService(ServiceCatalogParams{
		ServiceRepo: serviceRepo,
		Logger:      logger,
	})

	return svc, serviceRepo
}

func TestServiceCatalog_Create_Success(t *testing.T) {
	svc, serviceRepo := createTestServiceCatalog(t)
	ctx := context.Background()

	serviceRepo.EXPECT().NameExists(ctx, "POS repair", uint(0)).Return(false, nil)
	serviceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Service")).
		Run(func(_ context.Context, offered *entity.Service) {
			assert.Equal(t, uint(7), offered.StoreUserID)
			offered.ID = 5
		}).
		Return(nil)

	view, err := svc.Create(ctx, 7, &usecase.ServiceInput{Name: "POS repair", Price: "250000"})
	require.NoError(t, err)
	assert.Equal(t, uint(5), view.ID)
	assert.Equal(t, "POS repair", view.Name)
}

func TestServiceCatalog_Create_DuplicateName(t *testing.T) {
	svc, serviceRepo := createTestServiceCatalog(t)
	ctx := context.Background()

	serviceRepo.EXPECT().NameExists(ctx, "POS repair", uint(0)).Return(true, nil)

	_, err := svc.Create(ctx, 7, &usecase.ServiceInput{Name: "POS repair"})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Errors, "The name has already been taken.")
}

func TestServiceCatalog_Update_ExcludesOwnRow(t *testing.T) {
	svc, serviceRepo := createTestServiceCatalog(t)
	ctx := context.Background()

	serviceRepo.EXPECT().
		FindByID(ctx, uint(5)).
		Return(&entity.Service{ID: 5, Name: "POS repair", StoreUserID: 7}, nil)
	serviceRepo.EXPECT().NameExists(ctx, "POS repair", uint(5)).Return(false, nil)
	serviceRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Service")).
		Run(func(_ context.Context, offered *entity.Service) {
			assert.Equal(t, "300000", offered.Price)
		}).
		Return(nil)

	view, err := svc.Update(ctx, 5, &usecase.ServiceInput{Name: "POS repair", Price: "300000"})
	require.NoError(t, err)
	assert.Equal(t, "300000", view.Price)
}

func TestServiceCatalog_Update_NotFound(t *testing.T) {
	svc, serviceRepo := createTestServiceCatalog(t)
	ctx := context.Background()

	serviceRepo.EXPECT().FindByID(ctx, uint(404)).Return(nil, repository.ErrServiceNotFound)

	_, err := svc.Update(ctx, 404, &usecase.ServiceInput{Name: "x"})
	assert.True(t, errors.Is(err, domainerrors.ErrServiceNotFound))
}

func TestServiceCatalog_Delete(t *testing.T) {
	svc, serviceRepo := createTestServiceCatalog(t)
	ctx := context.Background()

	serviceRepo.EXPECT().FindByID(ctx, uint(5)).Return(&entity.Service{ID: 5}, nil)
	serviceRepo.EXPECT().Delete(ctx, uint(5)).Return(nil)

	require.NoError(t, svc.Delete(ctx, 5))
}
