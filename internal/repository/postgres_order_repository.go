package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sashabryl/train-station-api-service/internal/domain"
)

// PostgresOrderRepository implements OrderRepository using PostgreSQL.
// Order creation is the booking transaction: the composite unique constraint
// on tickets (journey_id, cargo, seat) is the final arbiter under concurrent
// requests, the in-transaction checks only fail fast.
type PostgresOrderRepository struct {
	pool *pgxpool.Pool
}

var _ OrderRepository = (*PostgresOrderRepository)(nil)

// NewPostgresOrderRepository creates a new PostgresOrderRepository
func NewPostgresOrderRepository(pool *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{pool: pool}
}

// stageTickets checks every requested ticket against its journey's train
// layout and rejects duplicate seats within the payload. Any error fails the
// whole payload; nothing is persisted before it returns nil.
func stageTickets(tickets []*domain.Ticket, trains map[string]*domain.Train) error {
	staged := make(map[string]struct{}, len(tickets))
	for _, t := range tickets {
		train, ok := trains[t.JourneyID]
		if !ok {
			return domain.ErrJourneyNotFound
		}
		if err := t.Validate(train); err != nil {
			return err
		}
		key := fmt.Sprintf("%s:%d:%d", t.JourneyID, t.Cargo, t.Seat)
		if _, dup := staged[key]; dup {
			return domain.ErrSeatTaken
		}
		staged[key] = struct{}{}
	}
	return nil
}

// Create books all requested seats in one transaction
func (r *PostgresOrderRepository) Create(ctx context.Context, userID string, tickets []*domain.Ticket) (*domain.Order, error) {
	if len(tickets) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// One layout query per distinct journey
	trains := make(map[string]*domain.Train)
	for _, t := range tickets {
		if _, ok := trains[t.JourneyID]; ok {
			continue
		}
		train := &domain.Train{}
		err := tx.QueryRow(ctx, `
			SELECT t.cargo_num, t.places_in_cargo
			FROM journeys j
			JOIN trains t ON t.id = j.train_id
			WHERE j.id = $1
		`, t.JourneyID).Scan(&train.CargoNum, &train.PlacesInCargo)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, domain.ErrJourneyNotFound
			}
			return nil, err
		}
		trains[t.JourneyID] = train
	}

	if err := stageTickets(tickets, trains); err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
		Tickets:   tickets,
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO orders (id, user_id, created_at) VALUES ($1, $2, $3)`,
		order.ID, order.UserID, order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	for _, t := range tickets {
		t.ID = uuid.New().String()
		t.OrderID = order.ID
		_, err = tx.Exec(ctx,
			`INSERT INTO tickets (id, cargo, seat, journey_id, order_id) VALUES ($1, $2, $3, $4, $5)`,
			t.ID, t.Cargo, t.Seat, t.JourneyID, t.OrderID,
		)
		if isUniqueViolation(err) {
			return nil, domain.ErrSeatTaken
		}
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return order, nil
}

// GetByID retrieves an order with its tickets
func (r *PostgresOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	order := &domain.Order{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, created_at FROM orders WHERE id = $1`, id,
	).Scan(&order.ID, &order.UserID, &order.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	ticketsByOrder, err := r.loadTickets(ctx, []string{order.ID})
	if err != nil {
		return nil, err
	}
	order.Tickets = ticketsByOrder[order.ID]
	if order.Tickets == nil {
		order.Tickets = []*domain.Ticket{}
	}
	return order, nil
}

// ListByUser lists a user's orders newest first with total count
func (r *PostgresOrderRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Order, int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, created_at FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []*domain.Order
	var orderIDs []string
	for rows.Next() {
		order := &domain.Order{Tickets: []*domain.Ticket{}}
		if err := rows.Scan(&order.ID, &order.UserID, &order.CreatedAt); err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
		orderIDs = append(orderIDs, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(orderIDs) > 0 {
		ticketsByOrder, err := r.loadTickets(ctx, orderIDs)
		if err != nil {
			return nil, 0, err
		}
		for _, order := range orders {
			if tickets, ok := ticketsByOrder[order.ID]; ok {
				order.Tickets = tickets
			}
		}
	}

	return orders, total, nil
}

// loadTickets loads all tickets for the given orders with a journey summary
func (r *PostgresOrderRepository) loadTickets(ctx context.Context, orderIDs []string) (map[string][]*domain.Ticket, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT tk.id, tk.cargo, tk.seat, tk.journey_id, tk.order_id,
			j.departure_time, src.name, dst.name
		FROM tickets tk
		JOIN journeys j ON j.id = tk.journey_id
		JOIN routes rt ON rt.id = j.route_id
		JOIN stations src ON src.id = rt.source_id
		JOIN stations dst ON dst.id = rt.destination_id
		WHERE tk.order_id = ANY($1)
		ORDER BY tk.journey_id, tk.cargo, tk.seat
	`, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string][]*domain.Ticket)
	for rows.Next() {
		ticket := &domain.Ticket{
			Journey: &domain.Journey{
				Route: &domain.Route{
					Source:      &domain.Station{},
					Destination: &domain.Station{},
				},
			},
		}
		err := rows.Scan(
			&ticket.ID,
			&ticket.Cargo,
			&ticket.Seat,
			&ticket.JourneyID,
			&ticket.OrderID,
			&ticket.Journey.DepartureTime,
			&ticket.Journey.Route.Source.Name,
			&ticket.Journey.Route.Destination.Name,
		)
		if err != nil {
			return nil, err
		}
		ticket.Journey.ID = ticket.JourneyID
		result[ticket.OrderID] = append(result[ticket.OrderID], ticket)
	}
	return result, rows.Err()
}
