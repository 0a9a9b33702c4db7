package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sashabryl/train-station-api-service/internal/domain"
	"github.com/sashabryl/train-station-api-service/internal/dto"
	"github.com/sashabryl/train-station-api-service/internal/repository"
)

type crewService struct {
	repo repository.CrewRepository
}

// NewCrewService creates a new CrewService
func NewCrewService(repo repository.CrewRepository) CrewService {
	return &crewService{repo: repo}
}

// CreateCrew creates a new crew member
func (s *crewService) CreateCrew(ctx context.Context, req *dto.CreateCrewRequest) (*domain.Crew, error) {
	crew := &domain.Crew{
		ID:        uuid.New().String(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if err := s.repo.Create(ctx, crew); err != nil {
		return nil, err
	}
	return crew, nil
}

// GetCrew retrieves a crew member by ID
func (s *crewService) GetCrew(ctx context.Context, id string) (*domain.Crew, error) {
	return s.repo.GetByID(ctx, id)
}

// ListCrew lists crew members with an optional full-name filter
func (s *crewService) ListCrew(ctx context.Context, filter *dto.CrewListFilter) ([]*domain.Crew, error) {
	fullName := ""
	if filter != nil {
		fullName = filter.FullName
	}
	return s.repo.List(ctx, fullName)
}

// UpdateCrew updates a crew member
func (s *crewService) UpdateCrew(ctx context.Context, id string, req *dto.UpdateCrewRequest) (*domain.Crew, error) {
	crew := &domain.Crew{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if err := s.repo.Update(ctx, crew); err != nil {
		return nil, err
	}
	return crew, nil
}

// DeleteCrew deletes a crew member
func (s *crewService) DeleteCrew(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
