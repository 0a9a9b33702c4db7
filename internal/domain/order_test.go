package domain

import (
	"errors"
	"testing"
)

func TestValidateSeat(t *testing.T) {
	tests := []struct {
		name    string
		seat    int
		places  int
		cargo   int
		cargos  int
		wantErr string
	}{
		{
			name:   "valid seat",
			seat:   1,
			places: 10,
			cargo:  1,
			cargos: 5,
		},
		{
			name:   "last seat in last cargo",
			seat:   10,
			places: 10,
			cargo:  5,
			cargos: 5,
		},
		{
			name:    "seat too high",
			seat:    11,
			places:  10,
			cargo:   1,
			cargos:  5,
			wantErr: "Number of seat should be in range from 1 to 10, not 11",
		},
		{
			name:    "seat zero",
			seat:    0,
			places:  10,
			cargo:   1,
			cargos:  5,
			wantErr: "Number of seat should be in range from 1 to 10, not 0",
		},
		{
			name:    "cargo too high",
			seat:    1,
			places:  10,
			cargo:   6,
			cargos:  5,
			wantErr: "Number of cargo should be in range from 1 to 5, not 6",
		},
		{
			name:    "cargo negative",
			seat:    1,
			places:  10,
			cargo:   -1,
			cargos:  5,
			wantErr: "Number of cargo should be in range from 1 to 5, not -1",
		},
		{
			name:    "seat checked before cargo",
			seat:    99,
			places:  10,
			cargo:   99,
			cargos:  5,
			wantErr: "Number of seat should be in range from 1 to 10, not 99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeat(tt.seat, tt.places, tt.cargo, tt.cargos)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %q, got nil", tt.wantErr)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("expected error %q, got %q", tt.wantErr, err.Error())
			}
			var rangeErr *SeatRangeError
			if !errors.As(err, &rangeErr) {
				t.Errorf("expected SeatRangeError, got %T", err)
			}
			if !IsValidationError(err) {
				t.Errorf("expected seat range error to classify as validation error")
			}
		})
	}
}

func TestTicket_Validate(t *testing.T) {
	train := &Train{CargoNum: 3, PlacesInCargo: 20}

	ticket := &Ticket{Cargo: 2, Seat: 15}
	if err := ticket.Validate(train); err != nil {
		t.Errorf("expected valid ticket, got %v", err)
	}

	ticket = &Ticket{Cargo: 4, Seat: 15}
	if err := ticket.Validate(train); err == nil {
		t.Errorf("expected cargo out of range error")
	}
}

func TestTrain_Capacity(t *testing.T) {
	train := &Train{CargoNum: 4, PlacesInCargo: 25}
	if got := train.Capacity(); got != 100 {
		t.Errorf("expected capacity 100, got %d", got)
	}
}

func TestTrain_Validate(t *testing.T) {
	train := &Train{CargoNum: 0, PlacesInCargo: 25}
	if err := train.Validate(); !errors.Is(err, ErrInvalidCapacity) {
		t.Errorf("expected ErrInvalidCapacity, got %v", err)
	}
}
