package postgres

import (
	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// wrapWriteError translates GORM's constraint errors into domain database
// errors; anything else is wrapped with the operation name.
func wrapWriteError(err error, operation string) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domainerrors.NewDatabaseExecuteError(err, operation+": duplicate key")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domainerrors.NewDatabaseExecuteError(err, operation+": foreign key violated")
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return domainerrors.NewDatabaseExecuteError(err, operation+": check constraint violated")
	default:
		return errors.Wrapf(err, "failed to %s", operation)
	}
}
