package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sashabryl/train-station-api-service/internal/domain"
	"github.com/sashabryl/train-station-api-service/internal/dto"
)

// MockStationRepository is a mock implementation of StationRepository
type MockStationRepository struct {
	stations map[string]*domain.Station
}

func NewMockStationRepository() *MockStationRepository {
	return &MockStationRepository{stations: make(map[string]*domain.Station)}
}

func (m *MockStationRepository) Create(ctx context.Context, station *domain.Station) error {
	m.stations[station.ID] = station
	return nil
}

func (m *MockStationRepository) GetByID(ctx context.Context, id string) (*domain.Station, error) {
	station, ok := m.stations[id]
	if !ok {
		return nil, domain.ErrStationNotFound
	}
	return station, nil
}

func (m *MockStationRepository) List(ctx context.Context, name string) ([]*domain.Station, error) {
	var stations []*domain.Station
	for _, s := range m.stations {
		stations = append(stations, s)
	}
	return stations, nil
}

func (m *MockStationRepository) Update(ctx context.Context, station *domain.Station) error {
	m.stations[station.ID] = station
	return nil
}

func (m *MockStationRepository) Delete(ctx context.Context, id string) error {
	delete(m.stations, id)
	return nil
}

func newRouteServiceFixture() (RouteService, *MockRouteRepository, *MockStationRepository) {
	routeRepo := NewMockRouteRepository()
	stationRepo := NewMockStationRepository()

	stationRepo.stations["s-1"] = &domain.Station{ID: "s-1", Name: "Kyiv", Latitude: 50.45, Longitude: 30.52}
	stationRepo.stations["s-2"] = &domain.Station{ID: "s-2", Name: "Lviv", Latitude: 49.84, Longitude: 24.03}

	return NewRouteService(routeRepo, stationRepo), routeRepo, stationRepo
}

func TestRouteService_CreateRoute(t *testing.T) {
	svc, routeRepo, _ := newRouteServiceFixture()

	route, err := svc.CreateRoute(context.Background(), &dto.CreateRouteRequest{
		SourceID:      "s-1",
		DestinationID: "s-2",
		Distance:      540,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if route.ID == "" {
		t.Error("expected a generated route ID")
	}
	if route.Source == nil || route.Source.Name != "Kyiv" {
		t.Errorf("expected expanded source station, got %+v", route.Source)
	}
	if len(routeRepo.routes) != 1 {
		t.Errorf("expected 1 stored route, got %d", len(routeRepo.routes))
	}
}

func TestRouteService_CreateRoute_UnknownStation(t *testing.T) {
	svc, _, _ := newRouteServiceFixture()

	_, err := svc.CreateRoute(context.Background(), &dto.CreateRouteRequest{
		SourceID:      "missing",
		DestinationID: "s-2",
		Distance:      540,
	})
	if !errors.Is(err, domain.ErrStationNotFound) {
		t.Errorf("expected ErrStationNotFound, got %v", err)
	}
}

func TestRouteService_CreateRoute_SameStations(t *testing.T) {
	svc, _, _ := newRouteServiceFixture()

	_, err := svc.CreateRoute(context.Background(), &dto.CreateRouteRequest{
		SourceID:      "s-1",
		DestinationID: "s-1",
		Distance:      10,
	})
	if !errors.Is(err, domain.ErrSameStations) {
		t.Errorf("expected ErrSameStations, got %v", err)
	}
}

func TestRouteService_CreateRoute_InvalidDistance(t *testing.T) {
	svc, _, _ := newRouteServiceFixture()

	_, err := svc.CreateRoute(context.Background(), &dto.CreateRouteRequest{
		SourceID:      "s-1",
		DestinationID: "s-2",
		Distance:      0,
	})
	if !errors.Is(err, domain.ErrInvalidDistance) {
		t.Errorf("expected ErrInvalidDistance, got %v", err)
	}
}
