// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := postgres.Builder().
		Select("id", "name", "created_at").
		From("users").
		Where(sq.Eq{"id": id})

	var u domain.User
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, query); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// Create inserts a user. A missing ID is generated.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	query := postgres.Builder().
		Insert("users").
		Columns("id", "name").
		Values(id, u.Name).
		Suffix("RETURNING id, name, created_at")

	var created domain.User
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &created, nil
}
