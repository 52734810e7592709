package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidValue is returned when a time slot value does not match any known
	// shape, contains malformed digits, or does not survive a round trip through
	// its periodicity. This is usually wrapped with the offending value.
	ErrInvalidValue = errors.New("invalid time slot value")

	// ErrInvalidPeriodicity is returned when a periodicity identifier is unknown.
	ErrInvalidPeriodicity = errors.New("invalid periodicity")

	// ErrInvalidConversion is returned when the requested periodicity is not
	// reachable from the source periodicity in the containment hierarchy.
	ErrInvalidConversion = errors.New("invalid periodicity conversion")

	// ErrUnboundedEnumeration is returned when enumerating the children of the
	// "all" time slot, which has infinitely many.
	ErrUnboundedEnumeration = errors.New("would yield an infinite amount of children")

	// ErrOutsideCalendar is returned when a conversion of a valid value would
	// produce a period whose year does not fit in four digits, such as the
	// week of 0000-01-01 that starts in year -1.
	ErrOutsideCalendar = errors.New("result lies outside years 0000 to 9999")

	// ErrUnknownStrategy is returned when no strategy is registered for a
	// periodicity. It indicates a wiring bug rather than bad input.
	ErrUnknownStrategy = errors.New("no strategy registered for periodicity")

	// ErrUnknownLocale is returned when a language identifier is malformed or
	// has no label table.
	ErrUnknownLocale = errors.New("unknown locale")
)
