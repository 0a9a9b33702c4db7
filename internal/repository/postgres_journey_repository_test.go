package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sashabryl/train-station-api-service/internal/domain"
)

func TestJourneyRefError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "missing train",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: "journeys_train_id_fkey"},
			want: domain.ErrTrainNotFound,
		},
		{
			name: "missing route",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: "journeys_route_id_fkey"},
			want: domain.ErrRouteNotFound,
		},
		{
			name: "wrapped violation",
			err:  fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23503", ConstraintName: "journeys_train_id_fkey"}),
			want: domain.ErrTrainNotFound,
		},
		{
			name: "unique violation passes through",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "journeys_pkey"},
		},
		{
			name: "plain error passes through",
			err:  errors.New("connection reset"),
		},
		{
			name: "nil error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := journeyRefError(tt.err)
			if tt.want == nil {
				if got != nil {
					t.Errorf("expected nil, got %v", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
