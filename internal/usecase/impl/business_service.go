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

// businessService implements the BusinessUsecase interface.
type businessService struct {
	businessRepo repository.BusinessRepository
	logger       *slog.Logger
}

// BusinessServiceParams holds dependencies for businessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	Logger       *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: params.BusinessRepo,
		logger:       params.Logger,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers a new business owned by the calling store user. Mobile and
// national id uniqueness is enforced against live rows only, so a
// soft-deleted business frees its identifiers for reuse.
func (srv *businessService) Create(ctx context.Context, storeUserID uint, input *usecase.BusinessInput) (*usecase.BusinessView, error) {
	if err := srv.checkUniqueness(ctx, input, 0); err != nil {
		return nil, err
	}

	business := &entity.Business{
		Name:         input.Name,
		Family:       input.Family,
		BusinessName: input.BusinessName,
		Address:      input.Address,
		Mobile:       input.Mobile,
		Tell:         input.Tell,
		Zipcode:      input.Zipcode,
		NationalID:   input.NationalID,
		StoreUserID:  storeUserID,
	}

	if err := srv.businessRepo.Create(ctx, business); err != nil {
		return nil, errors.Wrap(err, "failed to create business")
	}

	srv.log(ctx).Info("Business created",
		slog.Uint64("businessID", uint64(business.ID)),
		slog.Uint64("storeUserID", uint64(storeUserID)),
	)

	return usecase.NewBusinessView(business), nil
}

// Update replaces the mutable fields of a business. Uniqueness checks exclude
// the business's own row.
func (srv *businessService) Update(ctx context.Context, businessID uint, input *usecase.BusinessInput) (*usecase.BusinessView, error) {
	business, err := srv.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	if err := srv.checkUniqueness(ctx, input, businessID); err != nil {
		return nil, err
	}

	business.Name = input.Name
	business.Family = input.Family
	business.BusinessName = input.BusinessName
	business.Address = input.Address
	business.Mobile = input.Mobile
	business.Tell = input.Tell
	business.Zipcode = input.Zipcode
	business.NationalID = input.NationalID

	if err := srv.businessRepo.Update(ctx, business); err != nil {
		return nil, errors.Wrap(err, "failed to update business")
	}

	return usecase.NewBusinessView(business), nil
}

// List returns non-deleted businesses, optionally filtered by a
// case-insensitive search term.
func (srv *businessService) List(ctx context.Context, term string) ([]*usecase.BusinessView, error) {
	businesses, err := srv.businessRepo.List(ctx, term)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	views := make([]*usecase.BusinessView, 0, len(businesses))
	for _, business := range businesses {
		views = append(views, usecase.NewBusinessView(business))
	}

	return views, nil
}

// Delete soft-deletes a business, freeing its mobile and national id for
// reuse by live rows.
func (srv *businessService) Delete(ctx context.Context, businessID uint) error {
	if _, err := srv.businessRepo.FindByID(ctx, businessID); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return domainerrors.ErrBusinessNotFound
		}

		return errors.Wrap(err, "failed to find business")
	}

	if err := srv.businessRepo.Delete(ctx, businessID); err != nil {
		return errors.Wrap(err, "failed to delete business")
	}

	return nil
}

func (srv *businessService) checkUniqueness(ctx context.Context, input *usecase.BusinessInput, excludeID uint) error {
	taken, err := srv.businessRepo.MobileExists(ctx, input.Mobile, excludeID)
	if err != nil {
		return errors.Wrap(err, "failed to check mobile uniqueness")
	}
	if taken {
		return domainerrors.NewValidationError("The mobile has already been taken.")
	}

	if input.NationalID != "" {
		taken, err = srv.businessRepo.NationalIDExists(ctx, input.NationalID, excludeID)
		if err != nil {
			return errors.Wrap(err, "failed to check national id uniqueness")
		}
		if taken {
			return domainerrors.NewValidationError("The national id has already been taken.")
		}
	}

	return nil
}
