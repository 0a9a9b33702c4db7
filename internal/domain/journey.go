package domain

import "time"

// Journey represents one scheduled run of a train along a route
type Journey struct {
	ID            string    `json:"id"`
	RouteID       string    `json:"route_id"`
	TrainID       string    `json:"train_id"`
	DepartureTime time.Time `json:"departure_time"`
	CrewIDs       []string  `json:"crew_ids,omitempty"`

	// Expanded when loaded with references
	Route *Route  `json:"route,omitempty"`
	Train *Train  `json:"train,omitempty"`
	Crew  []*Crew `json:"crew,omitempty"`

	// TicketsAvailable is computed at query time, never stored
	TicketsAvailable int `json:"tickets_available"`
}

// SeatRef identifies a single seat within a journey's train
type SeatRef struct {
	Cargo int `json:"cargo"`
	Seat  int `json:"seat"`
}
