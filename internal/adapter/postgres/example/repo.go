// Package example implements the Example repository using PostgreSQL.
package example

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

// Repo provides example persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new example repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a usage example of meaningID at position.
func (r *Repo) Create(ctx context.Context, meaningID uuid.UUID, text string, position int) (*domain.Example, error) {
	query := postgres.Builder().
		Insert("examples").
		Columns("id", "meaning_id", "text", "position").
		Values(uuid.New(), meaningID, text, position).
		Suffix("RETURNING id, meaning_id, text, position")

	var ex domain.Example
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &ex, query); err != nil {
		return nil, postgres.MapError(err, "meaning", meaningID)
	}
	return &ex, nil
}
