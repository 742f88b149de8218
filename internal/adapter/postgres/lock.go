package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNoTransaction is returned by lock operations called outside RunInTx.
var ErrNoTransaction = errors.New("postgres: no transaction in context")

const lockUserSQL = `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`

// UserLocker serializes ledger mutations per user with transaction-scoped
// advisory locks. The lock is released on commit or rollback.
type UserLocker struct{}

// NewUserLocker creates a new UserLocker.
func NewUserLocker() *UserLocker {
	return &UserLocker{}
}

// LockUser blocks until the advisory lock for userID is held by the
// transaction in ctx.
func (l *UserLocker) LockUser(ctx context.Context, userID uuid.UUID) error {
	tx, ok := txFromCtx(ctx)
	if !ok {
		return ErrNoTransaction
	}
	if _, err := tx.Exec(ctx, lockUserSQL, userID.String()); err != nil {
		return MapError(err, "user lock", userID)
	}
	return nil
}
