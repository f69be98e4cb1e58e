package usecase

import "context"

// BusinessInput defines the data for creating or updating a business.
// Mobile and national id uniqueness are enforced at write time against live
// rows only, excluding the target's own id on update.
type BusinessInput struct {
	Name         string `json:"name" validate:"required,max=255"`
	Family       string `json:"family" validate:"required,max=255"`
	BusinessName string `json:"business_name" validate:"required,max=255"`
	Address      string `json:"address" validate:"required,max=500"`
	Mobile       string `json:"mobile" validate:"required,max=20"`
	Tell         string `json:"tell" validate:"omitempty,max=20"`
	Zipcode      string `json:"zipcode" validate:"omitempty,max=10"`
	NationalID   string `json:"national_id" validate:"omitempty,max=20"`
}

// BusinessUsecase defines business-registry operations.
type BusinessUsecase interface {
	// Create persists a new business owned by storeUserID.
	Create(ctx context.Context, storeUserID uint, input *BusinessInput) (*BusinessView, error)

	// Update replaces the stored fields of the business identified by id.
	Update(ctx context.Context, id uint, input *BusinessInput) (*BusinessView, error)

	// List returns businesses, optionally filtered by the search term.
	List(ctx context.Context, term string) ([]*BusinessView, error)

	// Delete soft-deletes a business by id.
	Delete(ctx context.Context, id uint) error
}
