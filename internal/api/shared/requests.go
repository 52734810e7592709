package shared

import (
	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/timeslot/internal/domain"
)

// validate is shared by every request. Besides the built-in tags it knows
// "periodicity", which accepts the identifiers of domain.Periodicities.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("periodicity", isPeriodicity); err != nil {
		// ALLOW-PANIC: only fails for an empty tag or a nil function
		panic(err)
	}
	return v
}

func isPeriodicity(fl validator.FieldLevel) bool {
	_, err := domain.ParsePeriodicity(fl.Field().String())
	return err == nil
}

// ValidateRequest validates the given struct using the validator package.
// Types with their own Validate method are trusted to check themselves.
func ValidateRequest(v interface{}) error {
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	return validate.Struct(v)
}
