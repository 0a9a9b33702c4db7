package repository

import (
	"errors"
	"testing"

	"github.com/sashabryl/train-station-api-service/internal/domain"
)

func TestStageTickets(t *testing.T) {
	trains := map[string]*domain.Train{
		"journey-1": {CargoNum: 3, PlacesInCargo: 20},
		"journey-2": {CargoNum: 5, PlacesInCargo: 10},
	}

	tests := []struct {
		name    string
		tickets []*domain.Ticket
		wantErr error
		wantMsg string
	}{
		{
			name: "single valid ticket",
			tickets: []*domain.Ticket{
				{JourneyID: "journey-1", Cargo: 1, Seat: 1},
			},
		},
		{
			name: "multiple tickets across journeys",
			tickets: []*domain.Ticket{
				{JourneyID: "journey-1", Cargo: 3, Seat: 20},
				{JourneyID: "journey-1", Cargo: 3, Seat: 19},
				{JourneyID: "journey-2", Cargo: 5, Seat: 10},
			},
		},
		{
			name: "same seat on different journeys",
			tickets: []*domain.Ticket{
				{JourneyID: "journey-1", Cargo: 1, Seat: 5},
				{JourneyID: "journey-2", Cargo: 1, Seat: 5},
			},
		},
		{
			name: "seat above layout",
			tickets: []*domain.Ticket{
				{JourneyID: "journey-1", Cargo: 1, Seat: 21},
			},
			wantMsg: "Number of seat should be in range from 1 to 20, not 21",
		},
		{
			name: "cargo above layout",
			tickets: []*domain.Ticket{
				{JourneyID: "journey-2", Cargo: 6, Seat: 1},
			},
			wantMsg: "Number of cargo should be in range from 1 to 5, not 6",
		},
		{
			name: "layout checked per journey",
			tickets: []*domain.Ticket{
				{JourneyID: "journey-1", Cargo: 1, Seat: 15},
				{JourneyID: "journey-2", Cargo: 1, Seat: 15},
			},
			wantMsg: "Number of seat should be in range from 1 to 10, not 15",
		},
		{
			name: "duplicate seat within payload",
			tickets: []*domain.Ticket{
				{JourneyID: "journey-1", Cargo: 2, Seat: 7},
				{JourneyID: "journey-1", Cargo: 2, Seat: 7},
			},
			wantErr: domain.ErrSeatTaken,
		},
		{
			name: "one bad ticket fails the whole payload",
			tickets: []*domain.Ticket{
				{JourneyID: "journey-1", Cargo: 1, Seat: 1},
				{JourneyID: "journey-1", Cargo: 1, Seat: 0},
				{JourneyID: "journey-1", Cargo: 1, Seat: 2},
			},
			wantMsg: "Number of seat should be in range from 1 to 20, not 0",
		},
		{
			name: "unknown journey",
			tickets: []*domain.Ticket{
				{JourneyID: "journey-9", Cargo: 1, Seat: 1},
			},
			wantErr: domain.ErrJourneyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := stageTickets(tt.tickets, trains)
			if tt.wantErr == nil && tt.wantMsg == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantMsg != "" && err.Error() != tt.wantMsg {
				t.Errorf("expected error %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}
