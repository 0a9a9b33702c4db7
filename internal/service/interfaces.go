package service

import (
	"context"

	"github.com/sashabryl/train-station-api-service/internal/domain"
	"github.com/sashabryl/train-station-api-service/internal/dto"
)

// TrainTypeService defines the interface for train type business logic
type TrainTypeService interface {
	// CreateTrainType creates a new train type
	CreateTrainType(ctx context.Context, req *dto.CreateTrainTypeRequest) (*domain.TrainType, error)
	// GetTrainType retrieves a train type by ID
	GetTrainType(ctx context.Context, id string) (*domain.TrainType, error)
	// ListTrainTypes lists all train types
	ListTrainTypes(ctx context.Context) ([]*domain.TrainType, error)
	// UpdateTrainType updates a train type
	UpdateTrainType(ctx context.Context, id string, req *dto.UpdateTrainTypeRequest) (*domain.TrainType, error)
	// DeleteTrainType deletes a train type
	DeleteTrainType(ctx context.Context, id string) error
}

// TrainService defines the interface for train business logic
type TrainService interface {
	// CreateTrain creates a new train
	CreateTrain(ctx context.Context, req *dto.CreateTrainRequest) (*domain.Train, error)
	// GetTrain retrieves a train by ID
	GetTrain(ctx context.Context, id string) (*domain.Train, error)
	// ListTrains lists trains with an optional name filter
	ListTrains(ctx context.Context, filter *dto.TrainListFilter) ([]*domain.Train, error)
	// UpdateTrain updates a train
	UpdateTrain(ctx context.Context, id string, req *dto.UpdateTrainRequest) (*domain.Train, error)
	// DeleteTrain deletes a train
	DeleteTrain(ctx context.Context, id string) error
}

// StationService defines the interface for station business logic
type StationService interface {
	// CreateStation creates a new station
	CreateStation(ctx context.Context, req *dto.CreateStationRequest) (*domain.Station, error)
	// GetStation retrieves a station by ID
	GetStation(ctx context.Context, id string) (*domain.Station, error)
	// ListStations lists stations with an optional name filter
	ListStations(ctx context.Context, filter *dto.StationListFilter) ([]*domain.Station, error)
	// UpdateStation updates a station
	UpdateStation(ctx context.Context, id string, req *dto.UpdateStationRequest) (*domain.Station, error)
	// DeleteStation deletes a station
	DeleteStation(ctx context.Context, id string) error
}

// RouteService defines the interface for route business logic
type RouteService interface {
	// CreateRoute creates a new route
	CreateRoute(ctx context.Context, req *dto.CreateRouteRequest) (*domain.Route, error)
	// GetRoute retrieves a route by ID
	GetRoute(ctx context.Context, id string) (*domain.Route, error)
	// ListRoutes lists routes with optional station filters
	ListRoutes(ctx context.Context, filter *dto.RouteListFilter) ([]*domain.Route, error)
	// UpdateRoute updates a route
	UpdateRoute(ctx context.Context, id string, req *dto.UpdateRouteRequest) (*domain.Route, error)
	// DeleteRoute deletes a route
	DeleteRoute(ctx context.Context, id string) error
}

// CrewService defines the interface for crew business logic
type CrewService interface {
	// CreateCrew creates a new crew member
	CreateCrew(ctx context.Context, req *dto.CreateCrewRequest) (*domain.Crew, error)
	// GetCrew retrieves a crew member by ID
	GetCrew(ctx context.Context, id string) (*domain.Crew, error)
	// ListCrew lists crew members with an optional full-name filter
	ListCrew(ctx context.Context, filter *dto.CrewListFilter) ([]*domain.Crew, error)
	// UpdateCrew updates a crew member
	UpdateCrew(ctx context.Context, id string, req *dto.UpdateCrewRequest) (*domain.Crew, error)
	// DeleteCrew deletes a crew member
	DeleteCrew(ctx context.Context, id string) error
}

// JourneyService defines the interface for journey business logic
type JourneyService interface {
	// CreateJourney creates a new journey
	CreateJourney(ctx context.Context, req *dto.CreateJourneyRequest) (*domain.Journey, error)
	// GetJourney retrieves a journey with its taken seats
	GetJourney(ctx context.Context, id string) (*domain.Journey, []domain.SeatRef, error)
	// ListJourneys lists journeys with filters, availability included
	ListJourneys(ctx context.Context, filter *dto.JourneyListFilter) ([]*domain.Journey, error)
	// UpdateJourney updates a journey
	UpdateJourney(ctx context.Context, id string, req *dto.UpdateJourneyRequest) (*domain.Journey, error)
	// DeleteJourney deletes a journey
	DeleteJourney(ctx context.Context, id string) error
}

// OrderService defines the interface for order business logic
type OrderService interface {
	// CreateOrder books all requested seats for the user, all or nothing
	CreateOrder(ctx context.Context, userID string, req *dto.CreateOrderRequest) (*domain.Order, error)
	// GetOrder retrieves one of the user's orders by ID
	GetOrder(ctx context.Context, userID, id string) (*domain.Order, error)
	// ListOrders lists the user's orders newest first
	ListOrders(ctx context.Context, userID string, filter *dto.OrderListFilter) ([]*domain.Order, int, error)
}
