package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sashabryl/train-station-api-service/internal/domain"
)

// PostgresTrainRepository implements TrainRepository using PostgreSQL
type PostgresTrainRepository struct {
	pool *pgxpool.Pool
}

var _ TrainRepository = (*PostgresTrainRepository)(nil)

// NewPostgresTrainRepository creates a new PostgresTrainRepository
func NewPostgresTrainRepository(pool *pgxpool.Pool) *PostgresTrainRepository {
	return &PostgresTrainRepository{pool: pool}
}

const trainColumns = `t.id, t.name, t.cargo_num, t.places_in_cargo, t.train_type_id, tt.name`

func scanTrain(row pgx.Row) (*domain.Train, error) {
	train := &domain.Train{TrainType: &domain.TrainType{}}
	err := row.Scan(
		&train.ID,
		&train.Name,
		&train.CargoNum,
		&train.PlacesInCargo,
		&train.TrainTypeID,
		&train.TrainType.Name,
	)
	if err != nil {
		return nil, err
	}
	train.TrainType.ID = train.TrainTypeID
	return train, nil
}

// Create creates a new train
func (r *PostgresTrainRepository) Create(ctx context.Context, train *domain.Train) error {
	query := `
		INSERT INTO trains (id, name, cargo_num, places_in_cargo, train_type_id)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		train.ID,
		train.Name,
		train.CargoNum,
		train.PlacesInCargo,
		train.TrainTypeID,
	)
	if isForeignKeyViolation(err) {
		return domain.ErrTrainTypeNotFound
	}
	return err
}

// GetByID retrieves a train with its type by ID
func (r *PostgresTrainRepository) GetByID(ctx context.Context, id string) (*domain.Train, error) {
	query := `
		SELECT ` + trainColumns + `
		FROM trains t
		JOIN train_types tt ON tt.id = t.train_type_id
		WHERE t.id = $1
	`

	train, err := scanTrain(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTrainNotFound
		}
		return nil, err
	}
	return train, nil
}

// List lists trains with an optional name filter, ordered by name
func (r *PostgresTrainRepository) List(ctx context.Context, name string) ([]*domain.Train, error) {
	query := `
		SELECT ` + trainColumns + `
		FROM trains t
		JOIN train_types tt ON tt.id = t.train_type_id
	`
	var args []interface{}
	if name != "" {
		query += ` WHERE t.name ILIKE $1`
		args = append(args, "%"+name+"%")
	}
	query += ` ORDER BY t.name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trains []*domain.Train
	for rows.Next() {
		train, err := scanTrain(rows)
		if err != nil {
			return nil, err
		}
		trains = append(trains, train)
	}
	return trains, rows.Err()
}

// Update updates a train
func (r *PostgresTrainRepository) Update(ctx context.Context, train *domain.Train) error {
	query := `
		UPDATE trains
		SET name = $2, cargo_num = $3, places_in_cargo = $4, train_type_id = $5
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		train.ID,
		train.Name,
		train.CargoNum,
		train.PlacesInCargo,
		train.TrainTypeID,
	)
	if isForeignKeyViolation(err) {
		return domain.ErrTrainTypeNotFound
	}
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrTrainNotFound
	}
	return nil
}

// Delete deletes a train by ID
func (r *PostgresTrainRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM trains WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrTrainNotFound
	}
	return nil
}
