package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sashabryl/train-station-api-service/internal/domain"
	"github.com/sashabryl/train-station-api-service/internal/dto"
	"github.com/sashabryl/train-station-api-service/internal/repository"
)

type stationService struct {
	repo repository.StationRepository
}

// NewStationService creates a new StationService
func NewStationService(repo repository.StationRepository) StationService {
	return &stationService{repo: repo}
}

// CreateStation creates a new station
func (s *stationService) CreateStation(ctx context.Context, req *dto.CreateStationRequest) (*domain.Station, error) {
	station := &domain.Station{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if err := station.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, station); err != nil {
		return nil, err
	}
	return station, nil
}

// GetStation retrieves a station by ID
func (s *stationService) GetStation(ctx context.Context, id string) (*domain.Station, error) {
	return s.repo.GetByID(ctx, id)
}

// ListStations lists stations with an optional name filter
func (s *stationService) ListStations(ctx context.Context, filter *dto.StationListFilter) ([]*domain.Station, error) {
	name := ""
	if filter != nil {
		name = filter.Name
	}
	return s.repo.List(ctx, name)
}

// UpdateStation updates a station
func (s *stationService) UpdateStation(ctx context.Context, id string, req *dto.UpdateStationRequest) (*domain.Station, error) {
	station := &domain.Station{
		ID:        id,
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if err := station.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, station); err != nil {
		return nil, err
	}
	return station, nil
}

// DeleteStation deletes a station
func (s *stationService) DeleteStation(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
