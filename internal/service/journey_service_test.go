package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sashabryl/train-station-api-service/internal/domain"
	"github.com/sashabryl/train-station-api-service/internal/dto"
	"github.com/sashabryl/train-station-api-service/internal/repository"
)

// MockJourneyRepository is a mock implementation of JourneyRepository
type MockJourneyRepository struct {
	journeys   map[string]*domain.Journey
	takenSeats map[string][]domain.SeatRef
	lastFilter *repository.JourneyFilter
}

func NewMockJourneyRepository() *MockJourneyRepository {
	return &MockJourneyRepository{
		journeys:   make(map[string]*domain.Journey),
		takenSeats: make(map[string][]domain.SeatRef),
	}
}

func (m *MockJourneyRepository) Create(ctx context.Context, journey *domain.Journey) error {
	m.journeys[journey.ID] = journey
	return nil
}

func (m *MockJourneyRepository) GetByID(ctx context.Context, id string) (*domain.Journey, error) {
	journey, ok := m.journeys[id]
	if !ok {
		return nil, domain.ErrJourneyNotFound
	}
	return journey, nil
}

func (m *MockJourneyRepository) List(ctx context.Context, filter *repository.JourneyFilter) ([]*domain.Journey, error) {
	m.lastFilter = filter
	var journeys []*domain.Journey
	for _, j := range m.journeys {
		journeys = append(journeys, j)
	}
	return journeys, nil
}

func (m *MockJourneyRepository) TakenSeats(ctx context.Context, journeyID string) ([]domain.SeatRef, error) {
	return m.takenSeats[journeyID], nil
}

func (m *MockJourneyRepository) Update(ctx context.Context, journey *domain.Journey) error {
	if _, ok := m.journeys[journey.ID]; !ok {
		return domain.ErrJourneyNotFound
	}
	m.journeys[journey.ID] = journey
	return nil
}

func (m *MockJourneyRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.journeys[id]; !ok {
		return domain.ErrJourneyNotFound
	}
	delete(m.journeys, id)
	return nil
}

// MockRouteRepository is a mock implementation of RouteRepository
type MockRouteRepository struct {
	routes map[string]*domain.Route
}

func NewMockRouteRepository() *MockRouteRepository {
	return &MockRouteRepository{routes: make(map[string]*domain.Route)}
}

func (m *MockRouteRepository) Create(ctx context.Context, route *domain.Route) error {
	m.routes[route.ID] = route
	return nil
}

func (m *MockRouteRepository) GetByID(ctx context.Context, id string) (*domain.Route, error) {
	route, ok := m.routes[id]
	if !ok {
		return nil, domain.ErrRouteNotFound
	}
	return route, nil
}

func (m *MockRouteRepository) List(ctx context.Context, filter *repository.RouteFilter) ([]*domain.Route, error) {
	var routes []*domain.Route
	for _, r := range m.routes {
		routes = append(routes, r)
	}
	return routes, nil
}

func (m *MockRouteRepository) Update(ctx context.Context, route *domain.Route) error {
	m.routes[route.ID] = route
	return nil
}

func (m *MockRouteRepository) Delete(ctx context.Context, id string) error {
	delete(m.routes, id)
	return nil
}

// MockTrainRepository is a mock implementation of TrainRepository
type MockTrainRepository struct {
	trains map[string]*domain.Train
}

func NewMockTrainRepository() *MockTrainRepository {
	return &MockTrainRepository{trains: make(map[string]*domain.Train)}
}

func (m *MockTrainRepository) Create(ctx context.Context, train *domain.Train) error {
	m.trains[train.ID] = train
	return nil
}

func (m *MockTrainRepository) GetByID(ctx context.Context, id string) (*domain.Train, error) {
	train, ok := m.trains[id]
	if !ok {
		return nil, domain.ErrTrainNotFound
	}
	return train, nil
}

func (m *MockTrainRepository) List(ctx context.Context, name string) ([]*domain.Train, error) {
	var trains []*domain.Train
	for _, tr := range m.trains {
		trains = append(trains, tr)
	}
	return trains, nil
}

func (m *MockTrainRepository) Update(ctx context.Context, train *domain.Train) error {
	m.trains[train.ID] = train
	return nil
}

func (m *MockTrainRepository) Delete(ctx context.Context, id string) error {
	delete(m.trains, id)
	return nil
}

func newJourneyServiceFixture() (JourneyService, *MockJourneyRepository, *MockRouteRepository, *MockTrainRepository) {
	journeyRepo := NewMockJourneyRepository()
	routeRepo := NewMockRouteRepository()
	trainRepo := NewMockTrainRepository()

	routeRepo.routes["route-1"] = &domain.Route{ID: "route-1", SourceID: "s-1", DestinationID: "s-2", Distance: 540}
	trainRepo.trains["train-1"] = &domain.Train{ID: "train-1", Name: "Intercity", CargoNum: 5, PlacesInCargo: 20}

	return NewJourneyService(journeyRepo, routeRepo, trainRepo), journeyRepo, routeRepo, trainRepo
}

func TestJourneyService_CreateJourney(t *testing.T) {
	svc, journeyRepo, _, _ := newJourneyServiceFixture()
	ctx := context.Background()

	req := &dto.CreateJourneyRequest{
		RouteID:       "route-1",
		TrainID:       "train-1",
		DepartureTime: time.Now().Add(24 * time.Hour),
		CrewIDs:       []string{"crew-1"},
	}

	journey, err := svc.CreateJourney(ctx, req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if journey.ID == "" {
		t.Error("expected a generated journey ID")
	}
	if len(journeyRepo.journeys) != 1 {
		t.Errorf("expected 1 stored journey, got %d", len(journeyRepo.journeys))
	}
}

func TestJourneyService_CreateJourney_UnknownRoute(t *testing.T) {
	svc, _, _, _ := newJourneyServiceFixture()

	req := &dto.CreateJourneyRequest{
		RouteID:       "missing",
		TrainID:       "train-1",
		DepartureTime: time.Now().Add(24 * time.Hour),
	}

	_, err := svc.CreateJourney(context.Background(), req)
	if !errors.Is(err, domain.ErrRouteNotFound) {
		t.Errorf("expected ErrRouteNotFound, got %v", err)
	}
}

func TestJourneyService_CreateJourney_UnknownTrain(t *testing.T) {
	svc, _, _, _ := newJourneyServiceFixture()

	req := &dto.CreateJourneyRequest{
		RouteID:       "route-1",
		TrainID:       "missing",
		DepartureTime: time.Now().Add(24 * time.Hour),
	}

	_, err := svc.CreateJourney(context.Background(), req)
	if !errors.Is(err, domain.ErrTrainNotFound) {
		t.Errorf("expected ErrTrainNotFound, got %v", err)
	}
}

func TestJourneyService_GetJourney_WithTakenSeats(t *testing.T) {
	svc, journeyRepo, _, _ := newJourneyServiceFixture()

	journeyRepo.journeys["journey-1"] = &domain.Journey{ID: "journey-1", TicketsAvailable: 98}
	journeyRepo.takenSeats["journey-1"] = []domain.SeatRef{
		{Cargo: 1, Seat: 1},
		{Cargo: 1, Seat: 2},
	}

	journey, taken, err := svc.GetJourney(context.Background(), "journey-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if journey.TicketsAvailable != 98 {
		t.Errorf("expected 98 tickets available, got %d", journey.TicketsAvailable)
	}
	if len(taken) != 2 {
		t.Errorf("expected 2 taken seats, got %d", len(taken))
	}
}

func TestJourneyService_GetJourney_NotFound(t *testing.T) {
	svc, _, _, _ := newJourneyServiceFixture()

	_, _, err := svc.GetJourney(context.Background(), "missing")
	if !errors.Is(err, domain.ErrJourneyNotFound) {
		t.Errorf("expected ErrJourneyNotFound, got %v", err)
	}
}

func TestJourneyService_ListJourneys_PassesFilter(t *testing.T) {
	svc, journeyRepo, _, _ := newJourneyServiceFixture()

	filter := &dto.JourneyListFilter{
		Source:        "Kyiv",
		Destination:   "Lviv",
		DepartureDate: "2026-09-01",
		DepartureTime: "08:30",
	}
	if _, err := svc.ListJourneys(context.Background(), filter); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got := journeyRepo.lastFilter
	if got == nil {
		t.Fatal("expected filter to reach the repository")
	}
	if got.Source != "Kyiv" || got.Destination != "Lviv" {
		t.Errorf("unexpected station filters: %+v", got)
	}
	if got.DepartureDate != "2026-09-01" || got.DepartureTime != "08:30" {
		t.Errorf("unexpected departure filters: %+v", got)
	}
}
