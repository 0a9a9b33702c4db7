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

// PostgresCrewRepository implements CrewRepository using PostgreSQL
type PostgresCrewRepository struct {
	pool *pgxpool.Pool
}

var _ CrewRepository = (*PostgresCrewRepository)(nil)

// NewPostgresCrewRepository creates a new PostgresCrewRepository
func NewPostgresCrewRepository(pool *pgxpool.Pool) *PostgresCrewRepository {
	return &PostgresCrewRepository{pool: pool}
}

// Create creates a new crew member
func (r *PostgresCrewRepository) Create(ctx context.Context, crew *domain.Crew) error {
	query := `
		INSERT INTO crew (id, first_name, last_name, email)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, crew.ID, crew.FirstName, crew.LastName, nullString(crew.Email))
	return err
}

// GetByID retrieves a crew member by ID
func (r *PostgresCrewRepository) GetByID(ctx context.Context, id string) (*domain.Crew, error) {
	query := `
		SELECT id, first_name, last_name, COALESCE(email, '')
		FROM crew WHERE id = $1
	`

	crew := &domain.Crew{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&crew.ID,
		&crew.FirstName,
		&crew.LastName,
		&crew.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCrewNotFound
		}
		return nil, err
	}
	return crew, nil
}

// List lists crew members with an optional full-name filter. Every word of
// the filter must match either name field.
func (r *PostgresCrewRepository) List(ctx context.Context, fullName string) ([]*domain.Crew, error) {
	query := `
		SELECT id, first_name, last_name, COALESCE(email, '')
		FROM crew
	`
	var conditions []string
	var args []interface{}

	for _, word := range strings.Fields(fullName) {
		args = append(args, "%"+word+"%")
		idx := len(args)
		conditions = append(conditions,
			fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d)", idx, idx))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY last_name, first_name"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*domain.Crew
	for rows.Next() {
		crew := &domain.Crew{}
		err := rows.Scan(&crew.ID, &crew.FirstName, &crew.LastName, &crew.Email)
		if err != nil {
			return nil, err
		}
		members = append(members, crew)
	}
	return members, rows.Err()
}

// Update updates a crew member
func (r *PostgresCrewRepository) Update(ctx context.Context, crew *domain.Crew) error {
	query := `
		UPDATE crew
		SET first_name = $2, last_name = $3, email = $4
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, crew.ID, crew.FirstName, crew.LastName, nullString(crew.Email))
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrCrewNotFound
	}
	return nil
}

// Delete deletes a crew member by ID
func (r *PostgresCrewRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM crew WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrCrewNotFound
	}
	return nil
}

// nullString converts an empty string to a SQL NULL
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
