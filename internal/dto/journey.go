package dto

import (
	"time"

	"github.com/sashabryl/train-station-api-service/internal/domain"
)

// CreateJourneyRequest represents the request to create a journey
type CreateJourneyRequest struct {
	RouteID       string    `json:"route_id" binding:"required"`
	TrainID       string    `json:"train_id" binding:"required"`
	DepartureTime time.Time `json:"departure_time" binding:"required"`
	CrewIDs       []string  `json:"crew_ids"`
}

// Validate validates the CreateJourneyRequest
func (r *CreateJourneyRequest) Validate() (bool, string) {
	if r.DepartureTime.IsZero() {
		return false, "Departure time is required"
	}
	return true, ""
}

// UpdateJourneyRequest represents the request to update a journey
type UpdateJourneyRequest struct {
	RouteID       string    `json:"route_id" binding:"required"`
	TrainID       string    `json:"train_id" binding:"required"`
	DepartureTime time.Time `json:"departure_time" binding:"required"`
	CrewIDs       []string  `json:"crew_ids"`
}

// Validate validates the UpdateJourneyRequest
func (r *UpdateJourneyRequest) Validate() (bool, string) {
	if r.DepartureTime.IsZero() {
		return false, "Departure time is required"
	}
	return true, ""
}

// JourneyResponse represents a journey in list API responses
type JourneyResponse struct {
	ID               string         `json:"id"`
	RouteID          string         `json:"route_id"`
	TrainID          string         `json:"train_id"`
	DepartureTime    time.Time      `json:"departure_time"`
	Route            *RouteResponse `json:"route,omitempty"`
	Train            *TrainResponse `json:"train,omitempty"`
	TicketsAvailable int            `json:"tickets_available"`
}

// SeatRefResponse identifies one taken seat on a journey
type SeatRefResponse struct {
	Cargo int `json:"cargo"`
	Seat  int `json:"seat"`
}

// JourneyDetailResponse represents a journey in detail API responses
type JourneyDetailResponse struct {
	JourneyResponse
	Crew       []*CrewResponse   `json:"crew"`
	TakenSeats []SeatRefResponse `json:"taken_seats"`
}

// JourneyFromDomain converts a domain Journey to its list response form
func JourneyFromDomain(j *domain.Journey) *JourneyResponse {
	resp := &JourneyResponse{
		ID:               j.ID,
		RouteID:          j.RouteID,
		TrainID:          j.TrainID,
		DepartureTime:    j.DepartureTime,
		TicketsAvailable: j.TicketsAvailable,
	}
	if j.Route != nil {
		resp.Route = RouteFromDomain(j.Route)
	}
	if j.Train != nil {
		resp.Train = TrainFromDomain(j.Train)
	}
	return resp
}

// JourneyDetailFromDomain converts a domain Journey and its taken seats to
// the detail response form
func JourneyDetailFromDomain(j *domain.Journey, takenSeats []domain.SeatRef) *JourneyDetailResponse {
	resp := &JourneyDetailResponse{
		JourneyResponse: *JourneyFromDomain(j),
		Crew:            make([]*CrewResponse, 0, len(j.Crew)),
		TakenSeats:      make([]SeatRefResponse, 0, len(takenSeats)),
	}
	for _, c := range j.Crew {
		resp.Crew = append(resp.Crew, CrewFromDomain(c))
	}
	for _, s := range takenSeats {
		resp.TakenSeats = append(resp.TakenSeats, SeatRefResponse{Cargo: s.Cargo, Seat: s.Seat})
	}
	return resp
}

// JourneyListFilter represents filters for listing journeys
type JourneyListFilter struct {
	Source        string `form:"source"`
	Destination   string `form:"destination"`
	DepartureDate string `form:"departure_date"` // Format: YYYY-MM-DD
	DepartureTime string `form:"departure_time"` // Format: HH:MM
}

// Validate validates the filter's date and time formats
func (f *JourneyListFilter) Validate() (bool, string) {
	if f.DepartureDate != "" {
		if _, err := time.Parse("2006-01-02", f.DepartureDate); err != nil {
			return false, "Departure date must be in YYYY-MM-DD format"
		}
	}
	if f.DepartureTime != "" {
		if _, err := time.Parse("15:04", f.DepartureTime); err != nil {
			return false, "Departure time must be in HH:MM format"
		}
	}
	return true, ""
}
