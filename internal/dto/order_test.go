package dto

import (
	"testing"
	"time"

	"github.com/sashabryl/train-station-api-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCreateOrderRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateOrderRequest
		valid   bool
		wantMsg string
	}{
		{
			name: "valid single ticket",
			req: CreateOrderRequest{
				Tickets: []TicketRequest{{JourneyID: "j-1", Cargo: 1, Seat: 5}},
			},
			valid: true,
		},
		{
			name:    "empty tickets",
			req:     CreateOrderRequest{},
			valid:   false,
			wantMsg: "Order must contain at least one ticket",
		},
		{
			name: "missing journey id",
			req: CreateOrderRequest{
				Tickets: []TicketRequest{{Cargo: 1, Seat: 5}},
			},
			valid:   false,
			wantMsg: "Ticket 0: journey_id is required",
		},
		{
			name: "second ticket invalid cargo",
			req: CreateOrderRequest{
				Tickets: []TicketRequest{
					{JourneyID: "j-1", Cargo: 1, Seat: 5},
					{JourneyID: "j-1", Cargo: 0, Seat: 6},
				},
			},
			valid:   false,
			wantMsg: "Ticket 1: cargo must be a positive integer",
		},
		{
			name: "negative seat",
			req: CreateOrderRequest{
				Tickets: []TicketRequest{{JourneyID: "j-1", Cargo: 1, Seat: -2}},
			},
			valid:   false,
			wantMsg: "Ticket 0: seat must be a positive integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := tt.req.Validate()
			assert.Equal(t, tt.valid, valid)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestOrderListFilter_SetDefaults(t *testing.T) {
	tests := []struct {
		name         string
		filter       OrderListFilter
		wantPage     int
		wantPageSize int
	}{
		{name: "zero values", filter: OrderListFilter{}, wantPage: 1, wantPageSize: 8},
		{name: "negative page", filter: OrderListFilter{Page: -3, PageSize: 10}, wantPage: 1, wantPageSize: 10},
		{name: "oversized page size", filter: OrderListFilter{Page: 2, PageSize: 500}, wantPage: 2, wantPageSize: 100},
		{name: "within limits", filter: OrderListFilter{Page: 3, PageSize: 50}, wantPage: 3, wantPageSize: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.filter.SetDefaults()
			assert.Equal(t, tt.wantPage, tt.filter.Page)
			assert.Equal(t, tt.wantPageSize, tt.filter.PageSize)
		})
	}
}

func TestOrderListFilter_Offset(t *testing.T) {
	filter := OrderListFilter{Page: 3, PageSize: 8}
	assert.Equal(t, 16, filter.Offset())
}

func TestOrderFromDomain(t *testing.T) {
	departure := time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC)
	order := &domain.Order{
		ID:        "order-1",
		UserID:    "user-1",
		CreatedAt: time.Now(),
		Tickets: []*domain.Ticket{
			{
				ID:        "ticket-1",
				Cargo:     2,
				Seat:      14,
				JourneyID: "journey-1",
				Journey: &domain.Journey{
					ID:            "journey-1",
					DepartureTime: departure,
					Route: &domain.Route{
						Source:      &domain.Station{Name: "Kyiv"},
						Destination: &domain.Station{Name: "Lviv"},
					},
				},
			},
		},
	}

	resp := OrderFromDomain(order)

	assert.Equal(t, "order-1", resp.ID)
	assert.Len(t, resp.Tickets, 1)
	assert.Equal(t, 2, resp.Tickets[0].Cargo)
	assert.Equal(t, 14, resp.Tickets[0].Seat)
	if assert.NotNil(t, resp.Tickets[0].Journey) {
		assert.Equal(t, "Kyiv", resp.Tickets[0].Journey.Source)
		assert.Equal(t, "Lviv", resp.Tickets[0].Journey.Destination)
		assert.Equal(t, departure, resp.Tickets[0].Journey.DepartureTime)
	}
}
