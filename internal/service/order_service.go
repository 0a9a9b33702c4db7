package service

import (
	"context"

	"github.com/sashabryl/train-station-api-service/internal/domain"
	"github.com/sashabryl/train-station-api-service/internal/dto"
	"github.com/sashabryl/train-station-api-service/internal/repository"
	"github.com/sashabryl/train-station-api-service/pkg/logger"
)

type orderService struct {
	repo      repository.OrderRepository
	publisher EventPublisher
	log       *logger.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(repo repository.OrderRepository, publisher EventPublisher) OrderService {
	return &orderService{
		repo:      repo,
		publisher: publisher,
		log:       logger.Get(),
	}
}

// CreateOrder books all requested seats for the user, all or nothing
func (s *orderService) CreateOrder(ctx context.Context, userID string, req *dto.CreateOrderRequest) (*domain.Order, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	if len(req.Tickets) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	tickets := make([]*domain.Ticket, 0, len(req.Tickets))
	for _, t := range req.Tickets {
		tickets = append(tickets, &domain.Ticket{
			Cargo:     t.Cargo,
			Seat:      t.Seat,
			JourneyID: t.JourneyID,
		})
	}

	order, err := s.repo.Create(ctx, userID, tickets)
	if err != nil {
		return nil, err
	}

	// Best effort: the booking is committed, a lost event must not fail it
	if err := s.publisher.PublishOrderCreated(ctx, order); err != nil {
		s.log.Warn("Failed to publish order created event",
			"order_id", order.ID,
			"error", err,
		)
	}

	return order, nil
}

// GetOrder retrieves one of the user's orders by ID. Orders belonging to
// other users are reported as not found.
func (s *orderService) GetOrder(ctx context.Context, userID, id string) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

// ListOrders lists the user's orders newest first
func (s *orderService) ListOrders(ctx context.Context, userID string, filter *dto.OrderListFilter) ([]*domain.Order, int, error) {
	if userID == "" {
		return nil, 0, domain.ErrInvalidUserID
	}

	if filter == nil {
		filter = &dto.OrderListFilter{}
	}
	filter.SetDefaults()

	return s.repo.ListByUser(ctx, userID, filter.PageSize, filter.Offset())
}
