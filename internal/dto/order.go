package dto

import (
	"fmt"
	"time"

	"github.com/sashabryl/train-station-api-service/internal/domain"
)

// Pagination limits for order listing
const (
	DefaultPageSize = 8
	MaxPageSize     = 100
)

// TicketRequest represents one requested seat within an order
type TicketRequest struct {
	JourneyID string `json:"journey_id" binding:"required"`
	Cargo     int    `json:"cargo" binding:"required"`
	Seat      int    `json:"seat" binding:"required"`
}

// CreateOrderRequest represents the request to create an order
type CreateOrderRequest struct {
	Tickets []TicketRequest `json:"tickets" binding:"required"`
}

// Validate validates the CreateOrderRequest
func (r *CreateOrderRequest) Validate() (bool, string) {
	if len(r.Tickets) == 0 {
		return false, "Order must contain at least one ticket"
	}
	for i, t := range r.Tickets {
		if t.JourneyID == "" {
			return false, fmt.Sprintf("Ticket %d: journey_id is required", i)
		}
		if t.Cargo < 1 {
			return false, fmt.Sprintf("Ticket %d: cargo must be a positive integer", i)
		}
		if t.Seat < 1 {
			return false, fmt.Sprintf("Ticket %d: seat must be a positive integer", i)
		}
	}
	return true, ""
}

// JourneySummaryResponse is the short journey form embedded in tickets
type JourneySummaryResponse struct {
	ID            string    `json:"id"`
	DepartureTime time.Time `json:"departure_time"`
	Source        string    `json:"source,omitempty"`
	Destination   string    `json:"destination,omitempty"`
}

// TicketResponse represents a ticket in API responses
type TicketResponse struct {
	ID        string                  `json:"id"`
	Cargo     int                     `json:"cargo"`
	Seat      int                     `json:"seat"`
	JourneyID string                  `json:"journey_id"`
	Journey   *JourneySummaryResponse `json:"journey,omitempty"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	CreatedAt time.Time         `json:"created_at"`
	Tickets   []*TicketResponse `json:"tickets"`
}

// OrderFromDomain converts a domain Order to its response form
func OrderFromDomain(o *domain.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		CreatedAt: o.CreatedAt,
		Tickets:   make([]*TicketResponse, 0, len(o.Tickets)),
	}
	for _, t := range o.Tickets {
		tr := &TicketResponse{
			ID:        t.ID,
			Cargo:     t.Cargo,
			Seat:      t.Seat,
			JourneyID: t.JourneyID,
		}
		if t.Journey != nil {
			summary := &JourneySummaryResponse{
				ID:            t.Journey.ID,
				DepartureTime: t.Journey.DepartureTime,
			}
			if t.Journey.Route != nil {
				if t.Journey.Route.Source != nil {
					summary.Source = t.Journey.Route.Source.Name
				}
				if t.Journey.Route.Destination != nil {
					summary.Destination = t.Journey.Route.Destination.Name
				}
			}
			tr.Journey = summary
		}
		resp.Tickets = append(resp.Tickets, tr)
	}
	return resp
}

// OrderListResponse represents a paginated list of orders
type OrderListResponse struct {
	Orders   []*OrderResponse `json:"orders"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// OrderListFilter represents pagination parameters for listing orders
type OrderListFilter struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// SetDefaults clamps pagination to the allowed window
func (f *OrderListFilter) SetDefaults() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
}

// Offset returns the row offset for the current page
func (f *OrderListFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}
