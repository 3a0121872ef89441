package validate

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())
}

// Struct validates a payload struct against its validate tags.
func Struct(payload any) error {
	return Validate.Struct(payload)
}

// IsValidationError reports whether err came from payload validation,
// as opposed to a persistence failure.
func IsValidationError(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}
