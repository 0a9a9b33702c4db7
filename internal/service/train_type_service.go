package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sashabryl/train-station-api-service/internal/domain"
	"github.com/sashabryl/train-station-api-service/internal/dto"
	"github.com/sashabryl/train-station-api-service/internal/repository"
)

type trainTypeService struct {
	repo repository.TrainTypeRepository
}

// NewTrainTypeService creates a new TrainTypeService
func NewTrainTypeService(repo repository.TrainTypeRepository) TrainTypeService {
	return &trainTypeService{repo: repo}
}

// CreateTrainType creates a new train type
func (s *trainTypeService) CreateTrainType(ctx context.Context, req *dto.CreateTrainTypeRequest) (*domain.TrainType, error) {
	trainType := &domain.TrainType{
		ID:   uuid.New().String(),
		Name: req.Name,
	}
	if err := s.repo.Create(ctx, trainType); err != nil {
		return nil, err
	}
	return trainType, nil
}

// GetTrainType retrieves a train type by ID
func (s *trainTypeService) GetTrainType(ctx context.Context, id string) (*domain.TrainType, error) {
	return s.repo.GetByID(ctx, id)
}

// ListTrainTypes lists all train types
func (s *trainTypeService) ListTrainTypes(ctx context.Context) ([]*domain.TrainType, error) {
	return s.repo.List(ctx)
}

// UpdateTrainType updates a train type
func (s *trainTypeService) UpdateTrainType(ctx context.Context, id string, req *dto.UpdateTrainTypeRequest) (*domain.TrainType, error) {
	trainType := &domain.TrainType{
		ID:   id,
		Name: req.Name,
	}
	if err := s.repo.Update(ctx, trainType); err != nil {
		return nil, err
	}
	return trainType, nil
}

// DeleteTrainType deletes a train type
func (s *trainTypeService) DeleteTrainType(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
