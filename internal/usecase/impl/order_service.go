// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface: the order lifecycle
// core and its notification side-effects.
type orderService struct {
	orderRepo    repository.OrderRepository
	businessRepo repository.BusinessRepository
	userRepo     repository.UserRepository
	dispatcher   service.SMSDispatcher
	logger       *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo    repository.OrderRepository
	BusinessRepo repository.BusinessRepository
	UserRepo     repository.UserRepository
	Dispatcher   service.SMSDispatcher
	Logger       *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:    params.OrderRepo,
		businessRepo: params.BusinessRepo,
		userRepo:     params.UserRepo,
		dispatcher:   params.Dispatcher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new order for the calling store user and dispatches the
// "new-service" notification. Dispatch happens after the row is persisted and
// its outcome never reaches the caller.
func (srv *orderService) Create(ctx context.Context, storeUserID uint, input *usecase.CreateOrderInput) (*usecase.OrderView, error) {
	if _, err := srv.businessRepo.FindByID(ctx, input.BusinessID); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.NewValidationError("The selected business does not exist.")
		}

		return nil, errors.Wrap(err, "failed to verify business reference")
	}

	if input.ServiceUserID != nil {
		if _, err := srv.userRepo.FindByID(ctx, *input.ServiceUserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, domainerrors.NewValidationError("The selected service user does not exist.")
			}

			return nil, errors.Wrap(err, "failed to verify service user reference")
		}
	}

	order := &entity.Order{
		BusinessID:    input.BusinessID,
		Services:      input.Services,
		Description:   input.Description,
		Status:        input.Status,
		FullPrice:     input.FullPrice,
		FeePrice:      input.FeePrice,
		ProfitPrice:   input.ProfitPrice,
		Discount:      input.Discount,
		ServiceUserID: input.ServiceUserID,
		StoreUserID:   storeUserID,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	created, err := srv.orderRepo.FindByID(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload created order")
	}

	srv.notifyBusinessOfNewOrder(ctx, created)

	srv.log(ctx).Info("Order created",
		slog.Uint64("orderID", uint64(created.ID)),
		slog.Uint64("storeUserID", uint64(storeUserID)),
	)

	return usecase.NewOrderView(created), nil
}

// Update applies a partial update. Absent fields are untouched; present
// fields are applied even when empty. A change of the assigned worker
// triggers the "serviceman-sms" notification to the new worker.
func (srv *orderService) Update(ctx context.Context, caller usecase.Caller, orderID uint, input *usecase.UpdateOrderInput) (*usecase.OrderView, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.StoreUserID != caller.UserID && !caller.Roles.Contains(entity.RoleAdmin) {
		return nil, domainerrors.ErrForbidden
	}

	if input.BusinessID != nil {
		if _, err := srv.businessRepo.FindByID(ctx, *input.BusinessID); err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return nil, domainerrors.NewValidationError("The selected business does not exist.")
			}

			return nil, errors.Wrap(err, "failed to verify business reference")
		}
	}

	if input.ServiceUserID != nil {
		if _, err := srv.userRepo.FindByID(ctx, *input.ServiceUserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, domainerrors.NewValidationError("The selected service user does not exist.")
			}

			return nil, errors.Wrap(err, "failed to verify service user reference")
		}
	}

	serviceUserChanged := input.ServiceUserID != nil &&
		(order.ServiceUserID == nil || *order.ServiceUserID != *input.ServiceUserID)

	applyOrderPatch(order, input)

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	updated, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload updated order")
	}

	if serviceUserChanged {
		srv.notifyWorkerOfAssignment(ctx, updated)
	}

	return usecase.NewOrderView(updated), nil
}

// List returns the caller's non-deleted orders, id descending.
func (srv *orderService) List(ctx context.Context, storeUserID uint, term string) ([]*usecase.OrderView, error) {
	orders, err := srv.orderRepo.ListByStoreUser(ctx, storeUserID, term)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return usecase.NewOrderViews(orders), nil
}

// Lookup returns a single order by opaque id, with no ownership filtering.
func (srv *orderService) Lookup(ctx context.Context, orderID uint) (*usecase.OrderView, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return usecase.NewOrderView(order), nil
}

// Delete soft-deletes an order owned by the caller.
func (srv *orderService) Delete(ctx context.Context, caller usecase.Caller, orderID uint) error {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to find order")
	}

	if order.StoreUserID != caller.UserID && !caller.Roles.Contains(entity.RoleAdmin) {
		return domainerrors.ErrForbidden
	}

	if err := srv.orderRepo.Delete(ctx, orderID); err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}

// notifyBusinessOfNewOrder enqueues the "new-service" SMS to the business
// mobile. A missing business relation is logged and skipped rather than
// failing the already persisted creation.
func (srv *orderService) notifyBusinessOfNewOrder(ctx context.Context, order *entity.Order) {
	if order.Business == nil {
		srv.log(ctx).Warn("Skipping new-service SMS: business relation not loaded",
			slog.Uint64("orderID", uint64(order.ID)),
		)

		return
	}

	srv.dispatcher.Enqueue(service.SMSMessage{
		Receptor: order.Business.Mobile,
		Template: service.TemplateNewService,
		Tokens: []string{
			order.Business.OwnerFullName(),
			order.Business.BusinessName,
			strconv.FormatUint(uint64(order.ID), 10),
		},
	})
}

// notifyWorkerOfAssignment enqueues the "serviceman-sms" SMS to the newly
// assigned worker.
func (srv *orderService) notifyWorkerOfAssignment(ctx context.Context, order *entity.Order) {
	if order.ServiceUser == nil {
		srv.log(ctx).Warn("Skipping serviceman SMS: worker relation not loaded",
			slog.Uint64("orderID", uint64(order.ID)),
		)

		return
	}

	srv.dispatcher.Enqueue(service.SMSMessage{
		Receptor: order.ServiceUser.Phone,
		Template: service.TemplateServicemanSMS,
		Tokens:   []string{strconv.FormatUint(uint64(order.ID), 10)},
	})
}

// applyOrderPatch copies the present fields of the patch onto the order.
func applyOrderPatch(order *entity.Order, input *usecase.UpdateOrderInput) {
	if input.BusinessID != nil {
		order.BusinessID = *input.BusinessID
	}
	if input.Services != nil {
		order.Services = *input.Services
	}
	if input.Description != nil {
		order.Description = *input.Description
	}
	if input.Status != nil {
		order.Status = *input.Status
	}
	if input.FullPrice != nil {
		order.FullPrice = *input.FullPrice
	}
	if input.FeePrice != nil {
		order.FeePrice = *input.FeePrice
	}
	if input.ProfitPrice != nil {
		order.ProfitPrice = *input.ProfitPrice
	}
	if input.Discount != nil {
		order.Discount = *input.Discount
	}
	if input.ServiceUserID != nil {
		order.ServiceUserID = input.ServiceUserID
	}
}
