package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service      usecase.OrderUsecase
	orderRepo    *mockRepo.MockOrderRepository
	businessRepo *mockRepo.MockBusinessRepository
	userRepo     *mockRepo.MockUserRepository
	dispatcher   *mockSvc.MockSMSDispatcher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	dispatcher := mockSvc.NewMockSMSDispatcher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewOrderService(OrderServiceParams{
		OrderRepo:    orderRepo,
		BusinessRepo: businessRepo,
		UserRepo:     userRepo,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})

	return orderServiceFixtures{
		service:      svc,
		orderRepo:    orderRepo,
		businessRepo: businessRepo,
		userRepo:     userRepo,
		dispatcher:   dispatcher,
	}
}

func sampleBusiness() *entity.Business {
	return &entity.Business{
		ID:           3,
		Name:         "ali",
		Family:       "ahmadi",
		BusinessName: "Ahmadi Market",
		Mobile:       "09121234567",
		StoreUserID:  7,
	}
}

func uintPtr(v uint) *uint {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func TestOrderService_Create_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	input := &usecase.CreateOrderInput{
		BusinessID: 3,
		Services:   "POS installation",
		Status:     1,
		FullPrice:  "150000",
	}

	fx.businessRepo.EXPECT().
		FindByID(ctx, uint(3)).
		Return(sampleBusiness(), nil)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			// The owner comes from the caller, never from the payload.
			assert.Equal(t, uint(7), order.StoreUserID)
			order.ID = 42
		}).
		Return(nil)

	fx.orderRepo.EXPECT().
		FindByID(ctx, uint(42)).
		Return(&entity.Order{
			ID:          42,
			BusinessID:  3,
			Business:    sampleBusiness(),
			Services:    "POS installation",
			Status:      1,
			FullPrice:   "150000",
			StoreUserID: 7,
		}, nil)

	fx.dispatcher.EXPECT().
		Enqueue(service.SMSMessage{
			Receptor: "09121234567",
			Template: service.TemplateNewService,
			Tokens:   []string{"ali_ahmadi", "Ahmadi Market", "42"},
		}).
		Return()

	view, err := fx.service.Create(ctx, 7, input)
	require.NoError(t, err)
	assert.Equal(t, uint(42), view.ID)
	require.NotNil(t, view.Business)
	assert.Equal(t, "Ahmadi Market", view.Business.BusinessName)
}

func TestOrderService_Create_UnknownBusinessIsValidationFailure(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().
		FindByID(ctx, uint(99)).
		Return(nil, repository.ErrBusinessNotFound)

	_, err := fx.service.Create(ctx, 7, &usecase.CreateOrderInput{
		BusinessID: 99,
		Services:   "repair",
		FullPrice:  "100",
	})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Errors, "The selected business does not exist.")
	// No row and no SMS: the order repo and dispatcher were never touched.
}

func TestOrderService_Create_UnknownServiceUserIsValidationFailure(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().
		FindByID(ctx, uint(3)).
		Return(sampleBusiness(), nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, uint(55)).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Create(ctx, 7, &usecase.CreateOrderInput{
		BusinessID:    3,
		Services:      "repair",
		FullPrice:     "100",
		ServiceUserID: uintPtr(55),
	})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Errors, "The selected service user does not exist.")
}

func TestOrderService_Update_WorkerChangeSendsServicemanSMS(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	caller := usecase.Caller{UserID: 7, Roles: entity.Roles{entity.RoleUser}}

	worker := &entity.User{ID: 21, Name: "reza", Family: "karimi", Phone: "09351112233", Roles: entity.Roles{entity.RoleServiceWorker}}

	fx.orderRepo.EXPECT().
		FindByID(ctx, uint(42)).
		Return(&entity.Order{ID: 42, BusinessID: 3, Services: "repair", FullPrice: "100", StoreUserID: 7}, nil).
		Once()
	fx.userRepo.EXPECT().
		FindByID(ctx, uint(21)).
		Return(worker, nil)
	fx.orderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			require.NotNil(t, order.ServiceUserID)
			assert.Equal(t, uint(21), *order.ServiceUserID)
			// Untouched fields keep their stored values.
			assert.Equal(t, "repair", order.Services)
			assert.Equal(t, "100", order.FullPrice)
		}).
		Return(nil)
	fx.orderRepo.EXPECT().
		FindByID(ctx, uint(42)).
		Return(&entity.Order{ID: 42, BusinessID: 3, Services: "repair", FullPrice: "100", StoreUserID: 7, ServiceUserID: uintPtr(21), ServiceUser: worker}, nil).
		Once()

	fx.dispatcher.EXPECT().
		Enqueue(service.SMSMessage{
			Receptor: "09351112233",
			Template: service.TemplateServicemanSMS,
			Tokens:   []string{"42"},
		}).
		Return().
		Once()

	view, err := fx.service.Update(ctx, caller, 42, &usecase.UpdateOrderInput{ServiceUserID: uintPtr(21)})
	require.NoError(t, err)
	require.NotNil(t, view.ServiceUser)
	assert.Equal(t, uint(21), view.ServiceUser.ID)
}

func TestOrderService_Update_SameWorkerSendsNothing(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	caller := usecase.Caller{UserID: 7, Roles: entity.Roles{entity.RoleUser}}

	worker := &entity.User{ID: 21, Phone: "09351112233"}
	stored := &entity.Order{ID: 42, BusinessID: 3, Services: "repair", FullPrice: "100", StoreUserID: 7, ServiceUserID: uintPtr(21), ServiceUser: worker}

	fx.orderRepo.EXPECT().FindByID(ctx, uint(42)).Return(stored, nil)
	fx.userRepo.EXPECT().FindByID(ctx, uint(21)).Return(worker, nil)
	fx.orderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	_, err := fx.service.Update(ctx, caller, 42, &usecase.UpdateOrderInput{ServiceUserID: uintPtr(21)})
	require.NoError(t, err)
	// The dispatcher mock fails the test if Enqueue is called.
}

func TestOrderService_Update_NonWorkerFieldsSendNothing(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	caller := usecase.Caller{UserID: 7, Roles: entity.Roles{entity.RoleUser}}

	fx.orderRepo.EXPECT().
		FindByID(ctx, uint(42)).
		Return(&entity.Order{ID: 42, BusinessID: 3, Services: "repair", Status: 0, FullPrice: "100", StoreUserID: 7}, nil)
	fx.orderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			assert.Equal(t, 2, order.Status)
			assert.Equal(t, "120", order.FullPrice)
			assert.Equal(t, "repair", order.Services)
		}).
		Return(nil)

	status := 2
	_, err := fx.service.Update(ctx, caller, 42, &usecase.UpdateOrderInput{
		Status:    &status,
		FullPrice: strPtr("120"),
	})
	require.NoError(t, err)
}

func TestOrderService_Update_NonOwnerForbidden(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByID(ctx, uint(42)).
		Return(&entity.Order{ID: 42, StoreUserID: 7}, nil)

	_, err := fx.service.Update(ctx, usecase.Caller{UserID: 8, Roles: entity.Roles{entity.RoleUser}}, 42, &usecase.UpdateOrderInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_Update_AdminBypassesOwnership(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().FindByID(ctx, uint(42)).Return(&entity.Order{ID: 42, Services: "repair", FullPrice: "100", StoreUserID: 7}, nil)
	fx.orderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	_, err := fx.service.Update(ctx, usecase.Caller{UserID: 99, Roles: entity.Roles{entity.RoleAdmin}}, 42, &usecase.UpdateOrderInput{Description: strPtr("urgent")})
	require.NoError(t, err)
}

func TestOrderService_Update_NotFound(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByID(ctx, uint(404)).
		Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.Update(ctx, usecase.Caller{UserID: 7}, 404, &usecase.UpdateOrderInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_List_PassesTermThrough(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().
		ListByStoreUser(ctx, uint(7), "ahmadi").
		Return([]*entity.Order{
			{ID: 42, BusinessID: 3, Services: "repair", FullPrice: "100", StoreUserID: 7},
			{ID: 41, BusinessID: 3, Services: "install", FullPrice: "90", StoreUserID: 7},
		}, nil)

	views, err := fx.service.List(ctx, 7, "ahmadi")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, uint(42), views[0].ID)
	assert.Equal(t, uint(41), views[1].ID)
}

func TestOrderService_Lookup_NotFound(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByID(ctx, uint(404)).
		Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.Lookup(ctx, 404)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_Delete_OwnerOnly(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().FindByID(ctx, uint(42)).Return(&entity.Order{ID: 42, StoreUserID: 7}, nil).Twice()
	fx.orderRepo.EXPECT().Delete(ctx, uint(42)).Return(nil).Once()

	require.NoError(t, fx.service.Delete(ctx, usecase.Caller{UserID: 7, Roles: entity.Roles{entity.RoleUser}}, 42))

	err := fx.service.Delete(ctx, usecase.Caller{UserID: 8, Roles: entity.Roles{entity.RoleUser}}, 42)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
