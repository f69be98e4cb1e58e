package usecase

import "context"

// ServiceInput defines the data for creating or updating a catalog service.
// Name uniqueness is enforced at write time against live rows, excluding the
// target's own id on update.
type ServiceInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Price       string `json:"price" validate:"omitempty,money"`
	Description string `json:"description" validate:"omitempty,max=255"`
}

// ServiceUsecase defines service-catalog operations.
type ServiceUsecase interface {
	// Create persists a new service owned by storeUserID.
	Create(ctx context.Context, storeUserID uint, input *ServiceInput) (*ServiceView, error)

	// Update replaces the stored fields of the service identified by id.
	Update(ctx context.Context, id uint, input *ServiceInput) (*ServiceView, error)

	// List returns services, optionally filtered by the search term.
	List(ctx context.Context, term string) ([]*ServiceView, error)

	// Delete soft-deletes a service by id.
	Delete(ctx context.Context, id uint) error
}
