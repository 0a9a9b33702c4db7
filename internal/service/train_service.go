package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sashabryl/train-station-api-service/internal/domain"
	"github.com/sashabryl/train-station-api-service/internal/dto"
	"github.com/sashabryl/train-station-api-service/internal/repository"
)

type trainService struct {
	repo          repository.TrainRepository
	trainTypeRepo repository.TrainTypeRepository
}

// NewTrainService creates a new TrainService
func NewTrainService(repo repository.TrainRepository, trainTypeRepo repository.TrainTypeRepository) TrainService {
	return &trainService{repo: repo, trainTypeRepo: trainTypeRepo}
}

// CreateTrain creates a new train
func (s *trainService) CreateTrain(ctx context.Context, req *dto.CreateTrainRequest) (*domain.Train, error) {
	trainType, err := s.trainTypeRepo.GetByID(ctx, req.TrainTypeID)
	if err != nil {
		return nil, err
	}

	train := &domain.Train{
		ID:            uuid.New().String(),
		Name:          req.Name,
		CargoNum:      req.CargoNum,
		PlacesInCargo: req.PlacesInCargo,
		TrainTypeID:   trainType.ID,
		TrainType:     trainType,
	}
	if err := train.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, train); err != nil {
		return nil, err
	}
	return train, nil
}

// GetTrain retrieves a train by ID
func (s *trainService) GetTrain(ctx context.Context, id string) (*domain.Train, error) {
	return s.repo.GetByID(ctx, id)
}

// ListTrains lists trains with an optional name filter
func (s *trainService) ListTrains(ctx context.Context, filter *dto.TrainListFilter) ([]*domain.Train, error) {
	name := ""
	if filter != nil {
		name = filter.Name
	}
	return s.repo.List(ctx, name)
}

// UpdateTrain updates a train
func (s *trainService) UpdateTrain(ctx context.Context, id string, req *dto.UpdateTrainRequest) (*domain.Train, error) {
	train := &domain.Train{
		ID:            id,
		Name:          req.Name,
		CargoNum:      req.CargoNum,
		PlacesInCargo: req.PlacesInCargo,
		TrainTypeID:   req.TrainTypeID,
	}
	if err := train.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, train); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// DeleteTrain deletes a train
func (s *trainService) DeleteTrain(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
