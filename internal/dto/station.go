package dto

import "github.com/sashabryl/train-station-api-service/internal/domain"

// CreateStationRequest represents the request to create a station
type CreateStationRequest struct {
	Name      string  `json:"name" binding:"required,max=255"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate validates the CreateStationRequest
func (r *CreateStationRequest) Validate() (bool, string) {
	if r.Latitude < -90 || r.Latitude > 90 {
		return false, "Latitude must be between -90 and 90"
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		return false, "Longitude must be between -180 and 180"
	}
	return true, ""
}

// UpdateStationRequest represents the request to update a station
type UpdateStationRequest struct {
	Name      string  `json:"name" binding:"required,max=255"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate validates the UpdateStationRequest
func (r *UpdateStationRequest) Validate() (bool, string) {
	if r.Latitude < -90 || r.Latitude > 90 {
		return false, "Latitude must be between -90 and 90"
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		return false, "Longitude must be between -180 and 180"
	}
	return true, ""
}

// StationResponse represents a station in API responses
type StationResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// StationFromDomain converts a domain Station to its response form
func StationFromDomain(s *domain.Station) *StationResponse {
	return &StationResponse{
		ID:        s.ID,
		Name:      s.Name,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
	}
}

// StationListFilter represents filters for listing stations
type StationListFilter struct {
	Name string `form:"name"`
}

// CreateRouteRequest represents the request to create a route
type CreateRouteRequest struct {
	SourceID      string `json:"source_id" binding:"required"`
	DestinationID string `json:"destination_id" binding:"required"`
	Distance      int    `json:"distance" binding:"required"`
	Description   string `json:"description"`
}

// Validate validates the CreateRouteRequest
func (r *CreateRouteRequest) Validate() (bool, string) {
	if r.Distance <= 0 {
		return false, "Distance must be a positive integer"
	}
	if r.SourceID == r.DestinationID {
		return false, "Source and destination stations must differ"
	}
	return true, ""
}

// UpdateRouteRequest represents the request to update a route
type UpdateRouteRequest struct {
	SourceID      string `json:"source_id" binding:"required"`
	DestinationID string `json:"destination_id" binding:"required"`
	Distance      int    `json:"distance" binding:"required"`
	Description   string `json:"description"`
}

// Validate validates the UpdateRouteRequest
func (r *UpdateRouteRequest) Validate() (bool, string) {
	if r.Distance <= 0 {
		return false, "Distance must be a positive integer"
	}
	if r.SourceID == r.DestinationID {
		return false, "Source and destination stations must differ"
	}
	return true, ""
}

// RouteResponse represents a route in API responses
type RouteResponse struct {
	ID            string           `json:"id"`
	SourceID      string           `json:"source_id"`
	DestinationID string           `json:"destination_id"`
	Distance      int              `json:"distance"`
	Description   string           `json:"description,omitempty"`
	Source        *StationResponse `json:"source,omitempty"`
	Destination   *StationResponse `json:"destination,omitempty"`
}

// RouteFromDomain converts a domain Route to its response form
func RouteFromDomain(r *domain.Route) *RouteResponse {
	resp := &RouteResponse{
		ID:            r.ID,
		SourceID:      r.SourceID,
		DestinationID: r.DestinationID,
		Distance:      r.Distance,
		Description:   r.Description,
	}
	if r.Source != nil {
		resp.Source = StationFromDomain(r.Source)
	}
	if r.Destination != nil {
		resp.Destination = StationFromDomain(r.Destination)
	}
	return resp
}

// RouteListFilter represents filters for listing routes
type RouteListFilter struct {
	Source      string `form:"source"`
	Destination string `form:"destination"`
}

// CreateCrewRequest represents the request to create a crew member
type CreateCrewRequest struct {
	FirstName string `json:"first_name" binding:"required,max=255"`
	LastName  string `json:"last_name" binding:"required,max=255"`
	Email     string `json:"email" binding:"omitempty,email"`
}

// Validate validates the CreateCrewRequest
func (r *CreateCrewRequest) Validate() (bool, string) {
	if r.FirstName == "" || r.LastName == "" {
		return false, "First name and last name are required"
	}
	return true, ""
}

// UpdateCrewRequest represents the request to update a crew member
type UpdateCrewRequest struct {
	FirstName string `json:"first_name" binding:"required,max=255"`
	LastName  string `json:"last_name" binding:"required,max=255"`
	Email     string `json:"email" binding:"omitempty,email"`
}

// Validate validates the UpdateCrewRequest
func (r *UpdateCrewRequest) Validate() (bool, string) {
	if r.FirstName == "" || r.LastName == "" {
		return false, "First name and last name are required"
	}
	return true, ""
}

// CrewResponse represents a crew member in API responses.
// Email is write-only and never echoed back.
type CrewResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

// CrewFromDomain converts a domain Crew to its response form
func CrewFromDomain(c *domain.Crew) *CrewResponse {
	return &CrewResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
	}
}

// CrewListFilter represents filters for listing crew members
type CrewListFilter struct {
	FullName string `form:"full_name"`
}
