package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/timeslot/internal/domain"
)

// ErrTooManyChildren is returned when a descendant list exceeds the configured
// cap.
var ErrTooManyChildren = errors.New("too many descendants")

// ErrInvalidDate is returned when a date parameter is neither YYYY-MM-DD nor
// RFC 3339.
var ErrInvalidDate = errors.New("invalid date")

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrors validator.ValidationErrors

	switch {
	// Malformed input
	case errors.Is(err, domain.ErrInvalidValue),
		errors.Is(err, domain.ErrInvalidPeriodicity),
		errors.Is(err, domain.ErrUnknownLocale),
		errors.Is(err, ErrInvalidDate),
		errors.As(err, &validationErrors):
		return http.StatusBadRequest

	// Well-formed input asking for something impossible
	case errors.Is(err, domain.ErrInvalidConversion),
		errors.Is(err, domain.ErrUnboundedEnumeration),
		errors.Is(err, domain.ErrOutsideCalendar),
		errors.Is(err, ErrTooManyChildren):
		return http.StatusUnprocessableEntity

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Client-supplied values are never echoed.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErrors validator.ValidationErrors

	switch {
	case errors.Is(err, domain.ErrInvalidValue):
		return "Invalid time slot value"

	case errors.Is(err, domain.ErrInvalidPeriodicity):
		return "Invalid periodicity"

	case errors.Is(err, domain.ErrUnknownLocale):
		// The wrapped message only lists the supported languages.
		return "Unknown language: " + strings.TrimPrefix(err.Error(), domain.ErrUnknownLocale.Error()+": ")

	case errors.Is(err, ErrInvalidDate):
		return "Invalid date, expected YYYY-MM-DD or RFC 3339"

	case errors.Is(err, domain.ErrInvalidConversion):
		return "Periodicity is not reachable from this time slot"

	case errors.Is(err, domain.ErrUnboundedEnumeration):
		return "Cannot enumerate the children of all"

	case errors.Is(err, domain.ErrOutsideCalendar):
		return "Result lies outside years 0000 to 9999"

	case errors.Is(err, ErrTooManyChildren):
		return "Too many descendants requested"

	case errors.As(err, &validationErrors):
		return SanitizeValidationError(validationErrors)

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns validator errors into a user-friendly message
// naming the first offending parameter.
func SanitizeValidationError(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "Validation error"
	}

	fieldErr := errs[0]
	return fmt.Sprintf("Invalid %s: %s", strings.ToLower(fieldErr.Field()), getValidationTagMessage(fieldErr.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	case "periodicity":
		return "unknown periodicity"
	default:
		return "validation failed"
	}
}
