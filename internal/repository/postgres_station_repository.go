package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sashabryl/train-station-api-service/internal/domain"
)

// PostgresStationRepository implements StationRepository using PostgreSQL
type PostgresStationRepository struct {
	pool *pgxpool.Pool
}

var _ StationRepository = (*PostgresStationRepository)(nil)

// NewPostgresStationRepository creates a new PostgresStationRepository
func NewPostgresStationRepository(pool *pgxpool.Pool) *PostgresStationRepository {
	return &PostgresStationRepository{pool: pool}
}

// Create creates a new station
func (r *PostgresStationRepository) Create(ctx context.Context, station *domain.Station) error {
	query := `
		INSERT INTO stations (id, name, latitude, longitude)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, station.ID, station.Name, station.Latitude, station.Longitude)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateName
	}
	return err
}

// GetByID retrieves a station by ID
func (r *PostgresStationRepository) GetByID(ctx context.Context, id string) (*domain.Station, error) {
	query := `SELECT id, name, latitude, longitude FROM stations WHERE id = $1`

	station := &domain.Station{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&station.ID,
		&station.Name,
		&station.Latitude,
		&station.Longitude,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStationNotFound
		}
		return nil, err
	}
	return station, nil
}

// List lists stations with an optional name filter, ordered by name
func (r *PostgresStationRepository) List(ctx context.Context, name string) ([]*domain.Station, error) {
	query := `SELECT id, name, latitude, longitude FROM stations`
	var args []interface{}
	if name != "" {
		query += ` WHERE name ILIKE $1`
		args = append(args, "%"+name+"%")
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stations []*domain.Station
	for rows.Next() {
		station := &domain.Station{}
		err := rows.Scan(&station.ID, &station.Name, &station.Latitude, &station.Longitude)
		if err != nil {
			return nil, err
		}
		stations = append(stations, station)
	}
	return stations, rows.Err()
}

// Update updates a station
func (r *PostgresStationRepository) Update(ctx context.Context, station *domain.Station) error {
	query := `
		UPDATE stations
		SET name = $2, latitude = $3, longitude = $4
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, station.ID, station.Name, station.Latitude, station.Longitude)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateName
	}
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrStationNotFound
	}
	return nil
}

// Delete deletes a station by ID
func (r *PostgresStationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM stations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrStationNotFound
	}
	return nil
}
