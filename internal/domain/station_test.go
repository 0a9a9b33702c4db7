package domain

import (
	"errors"
	"testing"
)

func TestStation_Validate(t *testing.T) {
	tests := []struct {
		name    string
		station Station
		wantErr error
	}{
		{name: "valid", station: Station{Name: "Kyiv", Latitude: 50.45, Longitude: 30.52}},
		{name: "latitude boundary", station: Station{Name: "Pole", Latitude: 90, Longitude: 0}},
		{name: "latitude too high", station: Station{Latitude: 90.1}, wantErr: ErrInvalidLatitude},
		{name: "latitude too low", station: Station{Latitude: -91}, wantErr: ErrInvalidLatitude},
		{name: "longitude too high", station: Station{Longitude: 181}, wantErr: ErrInvalidLongitude},
		{name: "longitude too low", station: Station{Longitude: -180.5}, wantErr: ErrInvalidLongitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.station.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRoute_Validate(t *testing.T) {
	tests := []struct {
		name    string
		route   Route
		wantErr error
	}{
		{name: "valid", route: Route{SourceID: "a", DestinationID: "b", Distance: 100}},
		{name: "zero distance", route: Route{SourceID: "a", DestinationID: "b", Distance: 0}, wantErr: ErrInvalidDistance},
		{name: "negative distance", route: Route{SourceID: "a", DestinationID: "b", Distance: -5}, wantErr: ErrInvalidDistance},
		{name: "same stations", route: Route{SourceID: "a", DestinationID: "a", Distance: 10}, wantErr: ErrSameStations},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.route.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCrew_FullName(t *testing.T) {
	crew := &Crew{FirstName: "Anna", LastName: "Shevchenko"}
	if got := crew.FullName(); got != "Anna Shevchenko" {
		t.Errorf("expected %q, got %q", "Anna Shevchenko", got)
	}
}

func TestErrorClassifiers(t *testing.T) {
	if !IsNotFoundError(ErrJourneyNotFound) {
		t.Errorf("expected ErrJourneyNotFound to be a not-found error")
	}
	if !IsConflictError(ErrSeatTaken) {
		t.Errorf("expected ErrSeatTaken to be a conflict error")
	}
	if IsNotFoundError(ErrSeatTaken) {
		t.Errorf("ErrSeatTaken must not classify as not-found")
	}
	if !IsValidationError(ErrSameStations) {
		t.Errorf("expected ErrSameStations to be a validation error")
	}
}
