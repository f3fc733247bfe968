package domain

import "errors"

var (
	// ErrInvalidOperation is returned for calls that would break a structural
	// invariant, such as an empty itinerary set.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrLastVariant is returned when deleting the only remaining variant.
	ErrLastVariant = errors.New("last variant cannot be deleted")

	ErrDayOutOfRange     = errors.New("day index out of range")
	ErrVariantOutOfRange = errors.New("variant index out of range")

	// ErrInvalidTripWindow is returned when the end date precedes the start date.
	ErrInvalidTripWindow = errors.New("invalid trip window")

	ErrInvalidDayHours = errors.New("invalid day hours")
)
