package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sashabryl/train-station-api-service/internal/domain"
)

// PostgresRouteRepository implements RouteRepository using PostgreSQL
type PostgresRouteRepository struct {
	pool *pgxpool.Pool
}

var _ RouteRepository = (*PostgresRouteRepository)(nil)

// NewPostgresRouteRepository creates a new PostgresRouteRepository
func NewPostgresRouteRepository(pool *pgxpool.Pool) *PostgresRouteRepository {
	return &PostgresRouteRepository{pool: pool}
}

const routeColumns = `r.id, r.source_id, r.destination_id, r.distance,
	COALESCE(r.description, '') as description,
	src.name, src.latitude, src.longitude,
	dst.name, dst.latitude, dst.longitude`

func scanRoute(row pgx.Row) (*domain.Route, error) {
	route := &domain.Route{
		Source:      &domain.Station{},
		Destination: &domain.Station{},
	}
	err := row.Scan(
		&route.ID,
		&route.SourceID,
		&route.DestinationID,
		&route.Distance,
		&route.Description,
		&route.Source.Name,
		&route.Source.Latitude,
		&route.Source.Longitude,
		&route.Destination.Name,
		&route.Destination.Latitude,
		&route.Destination.Longitude,
	)
	if err != nil {
		return nil, err
	}
	route.Source.ID = route.SourceID
	route.Destination.ID = route.DestinationID
	return route, nil
}

// Create creates a new route
func (r *PostgresRouteRepository) Create(ctx context.Context, route *domain.Route) error {
	query := `
		INSERT INTO routes (id, source_id, destination_id, distance, description)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		route.ID,
		route.SourceID,
		route.DestinationID,
		route.Distance,
		route.Description,
	)
	if isUniqueViolation(err) {
		return domain.ErrRouteExists
	}
	if isForeignKeyViolation(err) {
		return domain.ErrStationNotFound
	}
	return err
}

// GetByID retrieves a route with its stations by ID
func (r *PostgresRouteRepository) GetByID(ctx context.Context, id string) (*domain.Route, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM routes r
		JOIN stations src ON src.id = r.source_id
		JOIN stations dst ON dst.id = r.destination_id
		WHERE r.id = $1
	`, routeColumns)

	route, err := scanRoute(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRouteNotFound
		}
		return nil, err
	}
	return route, nil
}

// List lists routes with optional station-name filters, longest first
func (r *PostgresRouteRepository) List(ctx context.Context, filter *RouteFilter) ([]*domain.Route, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filter != nil {
		if filter.Source != "" {
			conditions = append(conditions, fmt.Sprintf("src.name ILIKE $%d", argIndex))
			args = append(args, "%"+filter.Source+"%")
			argIndex++
		}
		if filter.Destination != "" {
			conditions = append(conditions, fmt.Sprintf("dst.name ILIKE $%d", argIndex))
			args = append(args, "%"+filter.Destination+"%")
			argIndex++
		}
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM routes r
		JOIN stations src ON src.id = r.source_id
		JOIN stations dst ON dst.id = r.destination_id
	`, routeColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY r.distance DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []*domain.Route
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}
	return routes, rows.Err()
}

// Update updates a route
func (r *PostgresRouteRepository) Update(ctx context.Context, route *domain.Route) error {
	query := `
		UPDATE routes
		SET source_id = $2, destination_id = $3, distance = $4, description = $5
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		route.ID,
		route.SourceID,
		route.DestinationID,
		route.Distance,
		route.Description,
	)
	if isUniqueViolation(err) {
		return domain.ErrRouteExists
	}
	if isForeignKeyViolation(err) {
		return domain.ErrStationNotFound
	}
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrRouteNotFound
	}
	return nil
}

// Delete deletes a route by ID
func (r *PostgresRouteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrRouteNotFound
	}
	return nil
}
