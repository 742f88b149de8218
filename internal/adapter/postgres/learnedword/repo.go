// Package learnedword implements the learned-word ledger repository using
// PostgreSQL. Every query is scoped to one user.
package learnedword

import (
	"context"
	"fmt"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

var columns = []string{
	"id", "user_id", "word_id", "learned_date", "last_review_date",
	"total_answered_count", "correct_answered_count",
	"unfamiliarity", "review_unfamiliarity",
}

const updateUnfamiliaritiesSQL = `
UPDATE learned_words AS lw
SET unfamiliarity = v.unfamiliarity
FROM unnest($1::uuid[], $2::float8[]) AS v(id, unfamiliarity)
WHERE lw.id = v.id AND lw.user_id = $3`

// Repo provides ledger persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new ledger repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

func (r *Repo) selectBuilder(userID uuid.UUID) sq.SelectBuilder {
	return postgres.Builder().
		Select(columns...).
		From("learned_words").
		Where(sq.Eq{"user_id": userID})
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByWordID returns the user's ledger entry for wordID.
func (r *Repo) GetByWordID(ctx context.Context, userID, wordID uuid.UUID) (*domain.LearnedWord, error) {
	query := r.selectBuilder(userID).Where(sq.Eq{"word_id": wordID})

	var lw domain.LearnedWord
	if err := postgres.Get(ctx, r.q(ctx), &lw, query); err != nil {
		return nil, postgres.MapError(err, "learned_word", wordID)
	}
	return &lw, nil
}

// ListByUser returns the whole ledger of a user.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.LearnedWord, error) {
	entries := make([]domain.LearnedWord, 0)
	query := r.selectBuilder(userID).OrderBy("learned_date", "id")
	if err := postgres.Select(ctx, r.q(ctx), &entries, query); err != nil {
		return nil, fmt.Errorf("list learned words: %w", err)
	}
	return entries, nil
}

// ListReviewable returns entries whose unfamiliarity is at least
// minUnfamiliarity, in a stable order.
func (r *Repo) ListReviewable(ctx context.Context, userID uuid.UUID, minUnfamiliarity float64) ([]domain.LearnedWord, error) {
	entries := make([]domain.LearnedWord, 0)
	query := r.selectBuilder(userID).
		Where(sq.GtOrEq{"unfamiliarity": minUnfamiliarity}).
		OrderBy("id")
	if err := postgres.Select(ctx, r.q(ctx), &entries, query); err != nil {
		return nil, fmt.Errorf("list reviewable words: %w", err)
	}
	return entries, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a ledger entry. A missing ID is generated. A second entry
// for the same (user, word) fails with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, lw *domain.LearnedWord) (*domain.LearnedWord, error) {
	id := lw.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	query := postgres.Builder().
		Insert("learned_words").
		Columns(columns...).
		Values(
			id, lw.UserID, lw.WordID, lw.LearnedDate, lw.LastReviewDate,
			lw.TotalAnsweredCount, lw.CorrectAnsweredCount,
			lw.Unfamiliarity, lw.ReviewUnfamiliarity,
		).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var created domain.LearnedWord
	if err := postgres.Get(ctx, r.q(ctx), &created, query); err != nil {
		return nil, postgres.MapError(err, "learned_word", lw.WordID)
	}
	return &created, nil
}

// Update writes the mutable fields of an existing entry.
func (r *Repo) Update(ctx context.Context, lw *domain.LearnedWord) error {
	query := postgres.Builder().
		Update("learned_words").
		Set("last_review_date", lw.LastReviewDate).
		Set("total_answered_count", lw.TotalAnsweredCount).
		Set("correct_answered_count", lw.CorrectAnsweredCount).
		Set("unfamiliarity", lw.Unfamiliarity).
		Set("review_unfamiliarity", lw.ReviewUnfamiliarity).
		Where(sq.Eq{"id": lw.ID, "user_id": lw.UserID})

	tag, err := postgres.Exec(ctx, r.q(ctx), query)
	if err != nil {
		return postgres.MapError(err, "learned_word", lw.ID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "learned_word", lw.ID)
	}
	return nil
}

// UpdateUnfamiliarities sets the unfamiliarity of many entries of one user in
// a single statement. IDs belonging to other users are ignored.
func (r *Repo) UpdateUnfamiliarities(ctx context.Context, userID uuid.UUID, values map[uuid.UUID]float64) error {
	if len(values) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	vals := make([]float64, len(ids))
	for i, id := range ids {
		vals[i] = values[id]
	}

	if _, err := r.q(ctx).Exec(ctx, updateUnfamiliaritiesSQL, ids, vals, userID); err != nil {
		return postgres.MapError(err, "user", userID)
	}
	return nil
}

// DeleteByUser removes the user's whole ledger and returns the number of
// deleted entries. Other users' ledgers are untouched.
func (r *Repo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query := postgres.Builder().
		Delete("learned_words").
		Where(sq.Eq{"user_id": userID})

	tag, err := postgres.Exec(ctx, r.q(ctx), query)
	if err != nil {
		return 0, postgres.MapError(err, "user", userID)
	}
	return int(tag.RowsAffected()), nil
}
