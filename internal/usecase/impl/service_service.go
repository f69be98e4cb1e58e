package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// serviceCatalogService implements the ServiceUsecase interface for the
// store's offered services.
type serviceCatalogService struct {
	serviceRepo repository.ServiceRepository
	logger      *slog.Logger
}

// ServiceCatalogParams holds dependencies for serviceCatalogService, injected by Fx.
type ServiceCatalogParams struct {
	fx.In

	ServiceRepo repository.ServiceRepository
	Logger      *slog.Logger
}

// NewServiceCatalogService is the constructor for serviceCatalogService.
func NewServiceCatalogService(params ServiceCatalogParams) usecase.ServiceUsecase {
	return &serviceCatalogService{
		serviceRepo: params.ServiceRepo,
		logger:      params.Logger,
	}
}

func (srv *serviceCatalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers a new offered service. Name uniqueness is enforced against
// live rows only.
func (srv *serviceCatalogService) Create(ctx context.Context, storeUserID uint, input *usecase.ServiceInput) (*usecase.ServiceView, error) {
	taken, err := srv.serviceRepo.NameExists(ctx, input.Name, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check service name uniqueness")
	}
	if taken {
		return nil, domainerrors.NewValidationError("The name has already been taken.")
	}

	offered := &entity.Service{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		StoreUserID: storeUserID,
	}

	if err := srv.serviceRepo.Create(ctx, offered); err != nil {
		return nil, errors.Wrap(err, "failed to create service")
	}

	srv.log(ctx).Info("Service created",
		slog.Uint64("serviceID", uint64(offered.ID)),
		slog.String("name", offered.Name),
	)

	return usecase.NewServiceView(offered), nil
}

// Update replaces the mutable fields of an offered service.
func (srv *serviceCatalogService) Update(ctx context.Context, serviceID uint, input *usecase.ServiceInput) (*usecase.ServiceView, error) {
	offered, err := srv.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service")
	}

	taken, err := srv.serviceRepo.NameExists(ctx, input.Name, serviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check service name uniqueness")
	}
	if taken {
		return nil, domainerrors.NewValidationError("The name has already been taken.")
	}

	offered.Name = input.Name
	offered.Price = input.Price
	offered.Description = input.Description

	if err := srv.serviceRepo.Update(ctx, offered); err != nil {
		return nil, errors.Wrap(err, "failed to update service")
	}

	return usecase.NewServiceView(offered), nil
}

// List returns non-deleted offered services, optionally filtered by a
// case-insensitive search term.
func (srv *serviceCatalogService) List(ctx context.Context, term string) ([]*usecase.ServiceView, error) {
	services, err := srv.serviceRepo.List(ctx, term)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	views := make([]*usecase.ServiceView, 0, len(services))
	for _, offered := range services {
		views = append(views, usecase.NewServiceView(offered))
	}

	return views, nil
}

// Delete soft-deletes an offered service, freeing its name for reuse.
func (srv *serviceCatalogService) Delete(ctx context.Context, serviceID uint) error {
	if _, err := srv.serviceRepo.FindByID(ctx, serviceID); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return domainerrors.ErrServiceNotFound
		}

		return errors.Wrap(err, "failed to find service")
	}

	if err := srv.serviceRepo.Delete(ctx, serviceID); err != nil {
		return errors.Wrap(err, "failed to delete service")
	}

	return nil
}
