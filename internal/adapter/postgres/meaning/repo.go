// Package meaning implements the Meaning repository using PostgreSQL.
package meaning

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

// Repo provides meaning persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new meaning repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a meaning of wordID at position.
func (r *Repo) Create(ctx context.Context, wordID uuid.UUID, text string, position int) (*domain.Meaning, error) {
	query := postgres.Builder().
		Insert("meanings").
		Columns("id", "word_id", "text", "position").
		Values(uuid.New(), wordID, text, position).
		Suffix("RETURNING id, word_id, text, position")

	var m domain.Meaning
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &m, query); err != nil {
		return nil, postgres.MapError(err, "word", wordID)
	}
	return &m, nil
}
