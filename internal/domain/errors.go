package domain

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// Not found errors
	ErrTrainTypeNotFound = errors.New("train type not found")
	ErrTrainNotFound     = errors.New("train not found")
	ErrStationNotFound   = errors.New("station not found")
	ErrRouteNotFound     = errors.New("route not found")
	ErrCrewNotFound      = errors.New("crew member not found")
	ErrJourneyNotFound   = errors.New("journey not found")
	ErrOrderNotFound     = errors.New("order not found")

	// Conflict errors
	ErrSeatTaken     = errors.New("seat is already booked")
	ErrDuplicateName = errors.New("name already exists")
	ErrRouteExists   = errors.New("route with this source, destination and distance already exists")

	// Validation errors
	ErrEmptyOrder       = errors.New("order must contain at least one ticket")
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
	ErrInvalidDistance  = errors.New("distance must be a positive integer")
	ErrInvalidCapacity  = errors.New("cargo_num and places_in_cargo must be positive integers")
	ErrSameStations     = errors.New("source and destination stations must differ")
)

// SeatRangeError reports a seat or cargo number outside the train's layout.
type SeatRangeError struct {
	Field string // "seat" or "cargo"
	Value int
	Max   int
}

func (e *SeatRangeError) Error() string {
	return fmt.Sprintf("Number of %s should be in range from 1 to %d, not %d", e.Field, e.Max, e.Value)
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrTrainTypeNotFound) ||
		errors.Is(err, ErrTrainNotFound) ||
		errors.Is(err, ErrStationNotFound) ||
		errors.Is(err, ErrRouteNotFound) ||
		errors.Is(err, ErrCrewNotFound) ||
		errors.Is(err, ErrJourneyNotFound) ||
		errors.Is(err, ErrOrderNotFound)
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return errors.Is(err, ErrSeatTaken) ||
		errors.Is(err, ErrDuplicateName) ||
		errors.Is(err, ErrRouteExists)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	if errors.Is(err, ErrEmptyOrder) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidLatitude) ||
		errors.Is(err, ErrInvalidLongitude) ||
		errors.Is(err, ErrInvalidDistance) ||
		errors.Is(err, ErrInvalidCapacity) ||
		errors.Is(err, ErrSameStations) {
		return true
	}

	var rangeErr *SeatRangeError
	return errors.As(err, &rangeErr)
}
