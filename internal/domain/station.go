package domain

// Station represents a railway station with its geo position
type Station struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks the geo-coordinate ranges
func (s *Station) Validate() error {
	if s.Latitude < -90 || s.Latitude > 90 {
		return ErrInvalidLatitude
	}
	if s.Longitude < -180 || s.Longitude > 180 {
		return ErrInvalidLongitude
	}
	return nil
}

// Route represents a directed connection between two stations
type Route struct {
	ID            string `json:"id"`
	SourceID      string `json:"source_id"`
	DestinationID string `json:"destination_id"`
	Distance      int    `json:"distance"`
	Description   string `json:"description,omitempty"`

	// Expanded when loaded with its stations
	Source      *Station `json:"source,omitempty"`
	Destination *Station `json:"destination,omitempty"`
}

// Validate checks the route invariants
func (r *Route) Validate() error {
	if r.Distance <= 0 {
		return ErrInvalidDistance
	}
	if r.SourceID == r.DestinationID {
		return ErrSameStations
	}
	return nil
}

// Crew represents a crew member assignable to journeys
type Crew struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"-"`
}

// FullName returns the crew member's display name
func (c *Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}
