package domain

import "time"

// Order is a container for tickets created together by one user
type Order struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	Tickets   []*Ticket `json:"tickets"`
}

// Ticket books one seat in one cargo unit on one journey
type Ticket struct {
	ID        string `json:"id"`
	Cargo     int    `json:"cargo"`
	Seat      int    `json:"seat"`
	JourneyID string `json:"journey_id"`
	OrderID   string `json:"order_id"`

	// Expanded when loaded with its journey
	Journey *Journey `json:"journey,omitempty"`
}

// ValidateSeat checks that seat and cargo fall inside the train layout.
// Seat and cargo numbers are 1-based.
func ValidateSeat(seat, placesInCargo, cargo, cargoNum int) error {
	if seat < 1 || seat > placesInCargo {
		return &SeatRangeError{Field: "seat", Value: seat, Max: placesInCargo}
	}
	if cargo < 1 || cargo > cargoNum {
		return &SeatRangeError{Field: "cargo", Value: cargo, Max: cargoNum}
	}
	return nil
}

// Validate checks the ticket against its journey's train layout
func (t *Ticket) Validate(train *Train) error {
	return ValidateSeat(t.Seat, train.PlacesInCargo, t.Cargo, train.CargoNum)
}
