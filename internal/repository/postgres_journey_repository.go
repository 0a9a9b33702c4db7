package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sashabryl/train-station-api-service/internal/domain"
)

// PostgresJourneyRepository implements JourneyRepository using PostgreSQL
type PostgresJourneyRepository struct {
	pool *pgxpool.Pool
}

var _ JourneyRepository = (*PostgresJourneyRepository)(nil)

// NewPostgresJourneyRepository creates a new PostgresJourneyRepository
func NewPostgresJourneyRepository(pool *pgxpool.Pool) *PostgresJourneyRepository {
	return &PostgresJourneyRepository{pool: pool}
}

// journeyColumns selects the journey with its route, stations, train and the
// computed seat availability. Availability is derived on every read so a
// booked seat is reflected immediately.
const journeyColumns = `j.id, j.route_id, j.train_id, j.departure_time,
	r.source_id, r.destination_id, r.distance, COALESCE(r.description, ''),
	src.name, src.latitude, src.longitude,
	dst.name, dst.latitude, dst.longitude,
	t.name, t.cargo_num, t.places_in_cargo, t.train_type_id, tt.name,
	t.cargo_num * t.places_in_cargo - (
		SELECT COUNT(*) FROM tickets tk WHERE tk.journey_id = j.id
	) AS tickets_available`

const journeyJoins = `
	FROM journeys j
	JOIN routes r ON r.id = j.route_id
	JOIN stations src ON src.id = r.source_id
	JOIN stations dst ON dst.id = r.destination_id
	JOIN trains t ON t.id = j.train_id
	JOIN train_types tt ON tt.id = t.train_type_id`

func scanJourney(row pgx.Row) (*domain.Journey, error) {
	journey := &domain.Journey{
		Route: &domain.Route{
			Source:      &domain.Station{},
			Destination: &domain.Station{},
		},
		Train: &domain.Train{TrainType: &domain.TrainType{}},
	}
	err := row.Scan(
		&journey.ID,
		&journey.RouteID,
		&journey.TrainID,
		&journey.DepartureTime,
		&journey.Route.SourceID,
		&journey.Route.DestinationID,
		&journey.Route.Distance,
		&journey.Route.Description,
		&journey.Route.Source.Name,
		&journey.Route.Source.Latitude,
		&journey.Route.Source.Longitude,
		&journey.Route.Destination.Name,
		&journey.Route.Destination.Latitude,
		&journey.Route.Destination.Longitude,
		&journey.Train.Name,
		&journey.Train.CargoNum,
		&journey.Train.PlacesInCargo,
		&journey.Train.TrainTypeID,
		&journey.Train.TrainType.Name,
		&journey.TicketsAvailable,
	)
	if err != nil {
		return nil, err
	}
	journey.Route.ID = journey.RouteID
	journey.Route.Source.ID = journey.Route.SourceID
	journey.Route.Destination.ID = journey.Route.DestinationID
	journey.Train.ID = journey.TrainID
	journey.Train.TrainType.ID = journey.Train.TrainTypeID
	return journey, nil
}

// Create creates a new journey with its crew assignments
func (r *PostgresJourneyRepository) Create(ctx context.Context, journey *domain.Journey) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO journeys (id, route_id, train_id, departure_time)
		VALUES ($1, $2, $3, $4)
	`
	_, err = tx.Exec(ctx, query, journey.ID, journey.RouteID, journey.TrainID, journey.DepartureTime)
	if refErr := journeyRefError(err); refErr != nil {
		return refErr
	}
	if err != nil {
		return err
	}

	if err := insertJourneyCrew(ctx, tx, journey.ID, journey.CrewIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// journeyRefError maps a foreign key violation on the journeys table to the
// missing referenced entity, picked by the violated constraint's name.
func journeyRefError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23503" {
		return nil
	}
	if strings.Contains(pgErr.ConstraintName, "train_id") {
		return domain.ErrTrainNotFound
	}
	return domain.ErrRouteNotFound
}

func insertJourneyCrew(ctx context.Context, tx pgx.Tx, journeyID string, crewIDs []string) error {
	for _, crewID := range crewIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO journey_crew (journey_id, crew_id) VALUES ($1, $2)`,
			journeyID, crewID,
		)
		if isForeignKeyViolation(err) {
			return domain.ErrCrewNotFound
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// GetByID retrieves a journey with route, train, crew and availability
func (r *PostgresJourneyRepository) GetByID(ctx context.Context, id string) (*domain.Journey, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE j.id = $1`, journeyColumns, journeyJoins)

	journey, err := scanJourney(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrJourneyNotFound
		}
		return nil, err
	}

	crew, err := r.journeyCrew(ctx, id)
	if err != nil {
		return nil, err
	}
	journey.Crew = crew
	for _, c := range crew {
		journey.CrewIDs = append(journey.CrewIDs, c.ID)
	}

	return journey, nil
}

func (r *PostgresJourneyRepository) journeyCrew(ctx context.Context, journeyID string) ([]*domain.Crew, error) {
	query := `
		SELECT c.id, c.first_name, c.last_name
		FROM journey_crew jc
		JOIN crew c ON c.id = jc.crew_id
		WHERE jc.journey_id = $1
		ORDER BY c.last_name, c.first_name
	`

	rows, err := r.pool.Query(ctx, query, journeyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*domain.Crew
	for rows.Next() {
		crew := &domain.Crew{}
		if err := rows.Scan(&crew.ID, &crew.FirstName, &crew.LastName); err != nil {
			return nil, err
		}
		members = append(members, crew)
	}
	return members, rows.Err()
}

// List lists journeys with filters, latest departure first
func (r *PostgresJourneyRepository) List(ctx context.Context, filter *JourneyFilter) ([]*domain.Journey, error) {
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
		if filter.DepartureDate != "" {
			conditions = append(conditions, fmt.Sprintf("j.departure_time::date = $%d::date", argIndex))
			args = append(args, filter.DepartureDate)
			argIndex++
		}
		if filter.DepartureTime != "" {
			conditions = append(conditions, fmt.Sprintf("to_char(j.departure_time, 'HH24:MI') = $%d", argIndex))
			args = append(args, filter.DepartureTime)
			argIndex++
		}
	}

	query := fmt.Sprintf(`SELECT %s %s`, journeyColumns, journeyJoins)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY j.departure_time DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var journeys []*domain.Journey
	for rows.Next() {
		journey, err := scanJourney(rows)
		if err != nil {
			return nil, err
		}
		journeys = append(journeys, journey)
	}
	return journeys, rows.Err()
}

// TakenSeats lists all booked (cargo, seat) pairs for a journey
func (r *PostgresJourneyRepository) TakenSeats(ctx context.Context, journeyID string) ([]domain.SeatRef, error) {
	query := `
		SELECT cargo, seat FROM tickets
		WHERE journey_id = $1
		ORDER BY cargo, seat
	`

	rows, err := r.pool.Query(ctx, query, journeyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seats []domain.SeatRef
	for rows.Next() {
		var ref domain.SeatRef
		if err := rows.Scan(&ref.Cargo, &ref.Seat); err != nil {
			return nil, err
		}
		seats = append(seats, ref)
	}
	return seats, rows.Err()
}

// Update updates a journey and replaces its crew assignments
func (r *PostgresJourneyRepository) Update(ctx context.Context, journey *domain.Journey) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE journeys
		SET route_id = $2, train_id = $3, departure_time = $4
		WHERE id = $1
	`
	result, err := tx.Exec(ctx, query, journey.ID, journey.RouteID, journey.TrainID, journey.DepartureTime)
	if refErr := journeyRefError(err); refErr != nil {
		return refErr
	}
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrJourneyNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journey_crew WHERE journey_id = $1`, journey.ID); err != nil {
		return err
	}
	if err := insertJourneyCrew(ctx, tx, journey.ID, journey.CrewIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete deletes a journey by ID, cascading to its tickets
func (r *PostgresJourneyRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM journeys WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrJourneyNotFound
	}
	return nil
}
