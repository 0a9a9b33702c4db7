package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sashabryl/train-station-api-service/internal/domain"
)

// PostgresTrainTypeRepository implements TrainTypeRepository using PostgreSQL
type PostgresTrainTypeRepository struct {
	pool *pgxpool.Pool
}

var _ TrainTypeRepository = (*PostgresTrainTypeRepository)(nil)

// NewPostgresTrainTypeRepository creates a new PostgresTrainTypeRepository
func NewPostgresTrainTypeRepository(pool *pgxpool.Pool) *PostgresTrainTypeRepository {
	return &PostgresTrainTypeRepository{pool: pool}
}

// Create creates a new train type
func (r *PostgresTrainTypeRepository) Create(ctx context.Context, trainType *domain.TrainType) error {
	query := `INSERT INTO train_types (id, name) VALUES ($1, $2)`

	_, err := r.pool.Exec(ctx, query, trainType.ID, trainType.Name)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateName
	}
	return err
}

// GetByID retrieves a train type by ID
func (r *PostgresTrainTypeRepository) GetByID(ctx context.Context, id string) (*domain.TrainType, error) {
	query := `SELECT id, name FROM train_types WHERE id = $1`

	trainType := &domain.TrainType{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&trainType.ID, &trainType.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTrainTypeNotFound
		}
		return nil, err
	}
	return trainType, nil
}

// List lists all train types ordered by name
func (r *PostgresTrainTypeRepository) List(ctx context.Context) ([]*domain.TrainType, error) {
	query := `SELECT id, name FROM train_types ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trainTypes []*domain.TrainType
	for rows.Next() {
		trainType := &domain.TrainType{}
		if err := rows.Scan(&trainType.ID, &trainType.Name); err != nil {
			return nil, err
		}
		trainTypes = append(trainTypes, trainType)
	}
	return trainTypes, rows.Err()
}

// Update updates a train type
func (r *PostgresTrainTypeRepository) Update(ctx context.Context, trainType *domain.TrainType) error {
	query := `UPDATE train_types SET name = $2 WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, trainType.ID, trainType.Name)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateName
	}
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrTrainTypeNotFound
	}
	return nil
}

// Delete deletes a train type by ID
func (r *PostgresTrainTypeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM train_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrTrainTypeNotFound
	}
	return nil
}

// isUniqueViolation reports whether err is a postgres unique constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyViolation reports whether err is a postgres foreign key violation
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
