package repository

import (
	"context"

	"github.com/sashabryl/train-station-api-service/internal/domain"
)

// TrainTypeRepository defines the interface for train type data access
type TrainTypeRepository interface {
	// Create creates a new train type
	Create(ctx context.Context, trainType *domain.TrainType) error
	// GetByID retrieves a train type by ID
	GetByID(ctx context.Context, id string) (*domain.TrainType, error)
	// List lists all train types ordered by name
	List(ctx context.Context) ([]*domain.TrainType, error)
	// Update updates a train type
	Update(ctx context.Context, trainType *domain.TrainType) error
	// Delete deletes a train type by ID
	Delete(ctx context.Context, id string) error
}

// TrainRepository defines the interface for train data access
type TrainRepository interface {
	// Create creates a new train
	Create(ctx context.Context, train *domain.Train) error
	// GetByID retrieves a train with its type by ID
	GetByID(ctx context.Context, id string) (*domain.Train, error)
	// List lists trains with an optional name filter, ordered by name
	List(ctx context.Context, name string) ([]*domain.Train, error)
	// Update updates a train
	Update(ctx context.Context, train *domain.Train) error
	// Delete deletes a train by ID
	Delete(ctx context.Context, id string) error
}

// StationRepository defines the interface for station data access
type StationRepository interface {
	// Create creates a new station
	Create(ctx context.Context, station *domain.Station) error
	// GetByID retrieves a station by ID
	GetByID(ctx context.Context, id string) (*domain.Station, error)
	// List lists stations with an optional name filter, ordered by name
	List(ctx context.Context, name string) ([]*domain.Station, error)
	// Update updates a station
	Update(ctx context.Context, station *domain.Station) error
	// Delete deletes a station by ID
	Delete(ctx context.Context, id string) error
}

// RouteFilter contains filter options for listing routes
type RouteFilter struct {
	Source      string
	Destination string
}

// RouteRepository defines the interface for route data access
type RouteRepository interface {
	// Create creates a new route
	Create(ctx context.Context, route *domain.Route) error
	// GetByID retrieves a route with its stations by ID
	GetByID(ctx context.Context, id string) (*domain.Route, error)
	// List lists routes with optional station-name filters, longest first
	List(ctx context.Context, filter *RouteFilter) ([]*domain.Route, error)
	// Update updates a route
	Update(ctx context.Context, route *domain.Route) error
	// Delete deletes a route by ID
	Delete(ctx context.Context, id string) error
}

// CrewRepository defines the interface for crew data access
type CrewRepository interface {
	// Create creates a new crew member
	Create(ctx context.Context, crew *domain.Crew) error
	// GetByID retrieves a crew member by ID
	GetByID(ctx context.Context, id string) (*domain.Crew, error)
	// List lists crew members with an optional full-name filter
	List(ctx context.Context, fullName string) ([]*domain.Crew, error)
	// Update updates a crew member
	Update(ctx context.Context, crew *domain.Crew) error
	// Delete deletes a crew member by ID
	Delete(ctx context.Context, id string) error
}

// JourneyFilter contains filter options for listing journeys
type JourneyFilter struct {
	Source        string
	Destination   string
	DepartureDate string // YYYY-MM-DD
	DepartureTime string // HH:MM
}

// JourneyRepository defines the interface for journey data access
type JourneyRepository interface {
	// Create creates a new journey with its crew assignments
	Create(ctx context.Context, journey *domain.Journey) error
	// GetByID retrieves a journey with route, train, crew and availability
	GetByID(ctx context.Context, id string) (*domain.Journey, error)
	// List lists journeys with filters, latest departure first; each journey
	// carries its computed tickets_available
	List(ctx context.Context, filter *JourneyFilter) ([]*domain.Journey, error)
	// TakenSeats lists all booked (cargo, seat) pairs for a journey
	TakenSeats(ctx context.Context, journeyID string) ([]domain.SeatRef, error)
	// Update updates a journey and replaces its crew assignments
	Update(ctx context.Context, journey *domain.Journey) error
	// Delete deletes a journey by ID, cascading to its tickets
	Delete(ctx context.Context, id string) error
}

// OrderRepository defines the interface for order data access.
// Create is the booking transaction: all tickets persist or none do.
type OrderRepository interface {
	// Create books all requested seats in one transaction. Tickets carry
	// cargo, seat and journey id; ids and order linkage are assigned here.
	Create(ctx context.Context, userID string, tickets []*domain.Ticket) (*domain.Order, error)
	// GetByID retrieves an order with its tickets
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	// ListByUser lists a user's orders newest first with total count
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Order, int, error)
}
