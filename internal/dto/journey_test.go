package dto

import (
	"testing"
	"time"

	"github.com/sashabryl/train-station-api-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestJourneyListFilter_Validate(t *testing.T) {
	tests := []struct {
		name    string
		filter  JourneyListFilter
		valid   bool
		wantMsg string
	}{
		{name: "empty filter", filter: JourneyListFilter{}, valid: true},
		{name: "valid date", filter: JourneyListFilter{DepartureDate: "2026-09-01"}, valid: true},
		{name: "valid time", filter: JourneyListFilter{DepartureTime: "08:30"}, valid: true},
		{name: "date and time", filter: JourneyListFilter{DepartureDate: "2026-09-01", DepartureTime: "08:30"}, valid: true},
		{
			name:    "bad date format",
			filter:  JourneyListFilter{DepartureDate: "01-09-2026"},
			valid:   false,
			wantMsg: "Departure date must be in YYYY-MM-DD format",
		},
		{
			name:    "bad time format",
			filter:  JourneyListFilter{DepartureTime: "8:30pm"},
			valid:   false,
			wantMsg: "Departure time must be in HH:MM format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := tt.filter.Validate()
			assert.Equal(t, tt.valid, valid)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestJourneyDetailFromDomain(t *testing.T) {
	journey := &domain.Journey{
		ID:               "journey-1",
		RouteID:          "route-1",
		TrainID:          "train-1",
		DepartureTime:    time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC),
		TicketsAvailable: 97,
		Crew: []*domain.Crew{
			{ID: "crew-1", FirstName: "Anna", LastName: "Shevchenko"},
		},
	}
	taken := []domain.SeatRef{
		{Cargo: 1, Seat: 3},
		{Cargo: 2, Seat: 7},
		{Cargo: 2, Seat: 8},
	}

	resp := JourneyDetailFromDomain(journey, taken)

	assert.Equal(t, 97, resp.TicketsAvailable)
	assert.Len(t, resp.Crew, 1)
	assert.Equal(t, "Anna Shevchenko", resp.Crew[0].FullName)
	assert.Len(t, resp.TakenSeats, 3)
	assert.Equal(t, SeatRefResponse{Cargo: 2, Seat: 7}, resp.TakenSeats[1])
}
