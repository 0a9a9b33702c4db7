package service

import (
	"context"
	"testing"
	"time"

	"github.com/sashabryl/train-station-api-service/internal/domain"
	"github.com/sashabryl/train-station-api-service/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, userID string, tickets []*domain.Ticket) (*domain.Order, error) {
	args := m.Called(ctx, userID, tickets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Order, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Order), args.Int(1), args.Error(2)
}

// MockEventPublisher records published order events
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishOrderCreated(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPublisher := new(MockEventPublisher)
	svc := NewOrderService(mockRepo, mockPublisher)

	expected := &domain.Order{
		ID:        "order-1",
		UserID:    "user-1",
		CreatedAt: time.Now().UTC(),
		Tickets: []*domain.Ticket{
			{ID: "ticket-1", Cargo: 1, Seat: 5, JourneyID: "journey-1", OrderID: "order-1"},
		},
	}
	mockRepo.On("Create", mock.Anything, "user-1", mock.Anything).Return(expected, nil)
	mockPublisher.On("PublishOrderCreated", mock.Anything, expected).Return(nil)

	req := &dto.CreateOrderRequest{
		Tickets: []dto.TicketRequest{{JourneyID: "journey-1", Cargo: 1, Seat: 5}},
	}
	order, err := svc.CreateOrder(context.Background(), "user-1", req)

	assert.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestOrderService_CreateOrder_EmptyOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPublisher := new(MockEventPublisher)
	svc := NewOrderService(mockRepo, mockPublisher)

	_, err := svc.CreateOrder(context.Background(), "user-1", &dto.CreateOrderRequest{})

	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestOrderService_CreateOrder_MissingUser(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPublisher := new(MockEventPublisher)
	svc := NewOrderService(mockRepo, mockPublisher)

	req := &dto.CreateOrderRequest{
		Tickets: []dto.TicketRequest{{JourneyID: "journey-1", Cargo: 1, Seat: 5}},
	}
	_, err := svc.CreateOrder(context.Background(), "", req)

	assert.ErrorIs(t, err, domain.ErrInvalidUserID)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestOrderService_CreateOrder_SeatTaken(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPublisher := new(MockEventPublisher)
	svc := NewOrderService(mockRepo, mockPublisher)

	mockRepo.On("Create", mock.Anything, "user-1", mock.Anything).Return(nil, domain.ErrSeatTaken)

	req := &dto.CreateOrderRequest{
		Tickets: []dto.TicketRequest{{JourneyID: "journey-1", Cargo: 1, Seat: 5}},
	}
	_, err := svc.CreateOrder(context.Background(), "user-1", req)

	assert.ErrorIs(t, err, domain.ErrSeatTaken)
	mockPublisher.AssertNotCalled(t, "PublishOrderCreated")
}

func TestOrderService_CreateOrder_PublishFailureDoesNotFailBooking(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPublisher := new(MockEventPublisher)
	svc := NewOrderService(mockRepo, mockPublisher)

	expected := &domain.Order{ID: "order-1", UserID: "user-1"}
	mockRepo.On("Create", mock.Anything, "user-1", mock.Anything).Return(expected, nil)
	mockPublisher.On("PublishOrderCreated", mock.Anything, expected).Return(assert.AnError)

	req := &dto.CreateOrderRequest{
		Tickets: []dto.TicketRequest{{JourneyID: "journey-1", Cargo: 1, Seat: 5}},
	}
	order, err := svc.CreateOrder(context.Background(), "user-1", req)

	assert.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
}

func TestOrderService_GetOrder_OwnerScoping(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPublisher := new(MockEventPublisher)
	svc := NewOrderService(mockRepo, mockPublisher)

	order := &domain.Order{ID: "order-1", UserID: "user-1"}
	mockRepo.On("GetByID", mock.Anything, "order-1").Return(order, nil)

	got, err := svc.GetOrder(context.Background(), "user-1", "order-1")
	assert.NoError(t, err)
	assert.Equal(t, "order-1", got.ID)

	// Another user's order must look like it does not exist
	_, err = svc.GetOrder(context.Background(), "user-2", "order-1")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderService_ListOrders_AppliesPaginationDefaults(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPublisher := new(MockEventPublisher)
	svc := NewOrderService(mockRepo, mockPublisher)

	mockRepo.On("ListByUser", mock.Anything, "user-1", 8, 0).Return([]*domain.Order{}, 0, nil)

	filter := &dto.OrderListFilter{}
	orders, total, err := svc.ListOrders(context.Background(), "user-1", filter)

	assert.NoError(t, err)
	assert.Empty(t, orders)
	assert.Equal(t, 0, total)
	mockRepo.AssertExpectations(t)
}
