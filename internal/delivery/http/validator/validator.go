// Package validator wires go-playground validation into Echo, including the
// custom rule set for decimal-as-string monetary fields.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "storefront/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates the request validator with the custom rules registered.
func New() (*RequestValidator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report field names by their json tag so validation messages match the
	// wire format.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	if err := validate.RegisterValidation("money", validateMoney); err != nil {
		return nil, errors.Wrap(err, "failed to register money rule")
	}

	return &RequestValidator{validate: validate}, nil
}

// Validate implements echo.Validator. Rule failures come back as a
// ValidationError carrying one message per failed field.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return errors.Wrap(err, "validation failed")
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		messages = append(messages, describe(fieldError))
	}

	return domainerrors.NewValidationError(messages...)
}

// validateMoney accepts a decimal rendered as a string, e.g. "150000" or
// "99.50". The empty string is handled by omitempty, not here.
func validateMoney(fl validator.FieldLevel) bool {
	_, err := decimal.NewFromString(fl.Field().String())

	return err == nil
}

func describe(fieldError validator.FieldError) string {
	field := fieldError.Field()

	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s.", field, fieldError.Param())
	case "min":
		return fmt.Sprintf("The %s must be at least %s.", field, fieldError.Param())
	case "gte":
		return fmt.Sprintf("The %s must be at least %s.", field, fieldError.Param())
	case "lte":
		return fmt.Sprintf("The %s may not be greater than %s.", field, fieldError.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "money":
		return fmt.Sprintf("The %s must be a valid amount.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}
