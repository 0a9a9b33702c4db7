package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sashabryl/train-station-api-service/internal/domain"
	"github.com/sashabryl/train-station-api-service/internal/dto"
	"github.com/sashabryl/train-station-api-service/internal/repository"
)

type journeyService struct {
	repo      repository.JourneyRepository
	routeRepo repository.RouteRepository
	trainRepo repository.TrainRepository
}

// NewJourneyService creates a new JourneyService
func NewJourneyService(
	repo repository.JourneyRepository,
	routeRepo repository.RouteRepository,
	trainRepo repository.TrainRepository,
) JourneyService {
	return &journeyService{repo: repo, routeRepo: routeRepo, trainRepo: trainRepo}
}

// CreateJourney creates a new journey
func (s *journeyService) CreateJourney(ctx context.Context, req *dto.CreateJourneyRequest) (*domain.Journey, error) {
	if _, err := s.routeRepo.GetByID(ctx, req.RouteID); err != nil {
		return nil, err
	}
	if _, err := s.trainRepo.GetByID(ctx, req.TrainID); err != nil {
		return nil, err
	}

	journey := &domain.Journey{
		ID:            uuid.New().String(),
		RouteID:       req.RouteID,
		TrainID:       req.TrainID,
		DepartureTime: req.DepartureTime,
		CrewIDs:       req.CrewIDs,
	}
	if err := s.repo.Create(ctx, journey); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, journey.ID)
}

// GetJourney retrieves a journey with its taken seats
func (s *journeyService) GetJourney(ctx context.Context, id string) (*domain.Journey, []domain.SeatRef, error) {
	journey, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	takenSeats, err := s.repo.TakenSeats(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return journey, takenSeats, nil
}

// ListJourneys lists journeys with filters, availability included
func (s *journeyService) ListJourneys(ctx context.Context, filter *dto.JourneyListFilter) ([]*domain.Journey, error) {
	repoFilter := &repository.JourneyFilter{}
	if filter != nil {
		repoFilter.Source = filter.Source
		repoFilter.Destination = filter.Destination
		repoFilter.DepartureDate = filter.DepartureDate
		repoFilter.DepartureTime = filter.DepartureTime
	}
	return s.repo.List(ctx, repoFilter)
}

// UpdateJourney updates a journey
func (s *journeyService) UpdateJourney(ctx context.Context, id string, req *dto.UpdateJourneyRequest) (*domain.Journey, error) {
	if _, err := s.routeRepo.GetByID(ctx, req.RouteID); err != nil {
		return nil, err
	}
	if _, err := s.trainRepo.GetByID(ctx, req.TrainID); err != nil {
		return nil, err
	}

	journey := &domain.Journey{
		ID:            id,
		RouteID:       req.RouteID,
		TrainID:       req.TrainID,
		DepartureTime: req.DepartureTime,
		CrewIDs:       req.CrewIDs,
	}
	if err := s.repo.Update(ctx, journey); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// DeleteJourney deletes a journey
func (s *journeyService) DeleteJourney(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
