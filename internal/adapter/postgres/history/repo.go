// Package history implements the decay-pass history repository using
// PostgreSQL.
package history

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

// Repo provides update-history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetLatest returns the most recent decay pass of userID.
func (r *Repo) GetLatest(ctx context.Context, userID uuid.UUID) (*domain.UpdateHistory, error) {
	query := postgres.Builder().
		Select("id", "user_id", "update_date").
		From("update_history").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("update_date DESC").
		Limit(1)

	var h domain.UpdateHistory
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &h, query); err != nil {
		return nil, postgres.MapError(err, "update_history", userID)
	}
	return &h, nil
}

// Create records a decay pass of userID at the given instant.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, at time.Time) (*domain.UpdateHistory, error) {
	query := postgres.Builder().
		Insert("update_history").
		Columns("id", "user_id", "update_date").
		Values(uuid.New(), userID, at).
		Suffix("RETURNING id, user_id, update_date")

	var h domain.UpdateHistory
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &h, query); err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}
	return &h, nil
}
