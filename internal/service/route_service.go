package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sashabryl/train-station-api-service/internal/domain"
	"github.com/sashabryl/train-station-api-service/internal/dto"
	"github.com/sashabryl/train-station-api-service/internal/repository"
)

type routeService struct {
	repo        repository.RouteRepository
	stationRepo repository.StationRepository
}

// NewRouteService creates a new RouteService
func NewRouteService(repo repository.RouteRepository, stationRepo repository.StationRepository) RouteService {
	return &routeService{repo: repo, stationRepo: stationRepo}
}

// CreateRoute creates a new route
func (s *routeService) CreateRoute(ctx context.Context, req *dto.CreateRouteRequest) (*domain.Route, error) {
	source, err := s.stationRepo.GetByID(ctx, req.SourceID)
	if err != nil {
		return nil, err
	}
	destination, err := s.stationRepo.GetByID(ctx, req.DestinationID)
	if err != nil {
		return nil, err
	}

	route := &domain.Route{
		ID:            uuid.New().String(),
		SourceID:      source.ID,
		DestinationID: destination.ID,
		Distance:      req.Distance,
		Description:   req.Description,
		Source:        source,
		Destination:   destination,
	}
	if err := route.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, route); err != nil {
		return nil, err
	}
	return route, nil
}

// GetRoute retrieves a route by ID
func (s *routeService) GetRoute(ctx context.Context, id string) (*domain.Route, error) {
	return s.repo.GetByID(ctx, id)
}

// ListRoutes lists routes with optional station filters
func (s *routeService) ListRoutes(ctx context.Context, filter *dto.RouteListFilter) ([]*domain.Route, error) {
	repoFilter := &repository.RouteFilter{}
	if filter != nil {
		repoFilter.Source = filter.Source
		repoFilter.Destination = filter.Destination
	}
	return s.repo.List(ctx, repoFilter)
}

// UpdateRoute updates a route
func (s *routeService) UpdateRoute(ctx context.Context, id string, req *dto.UpdateRouteRequest) (*domain.Route, error) {
	route := &domain.Route{
		ID:            id,
		SourceID:      req.SourceID,
		DestinationID: req.DestinationID,
		Distance:      req.Distance,
		Description:   req.Description,
	}
	if err := route.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, route); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// DeleteRoute deletes a route
func (s *routeService) DeleteRoute(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
