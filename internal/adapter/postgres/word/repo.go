// Package word implements the Word repository using PostgreSQL.
// Words are shared by all users; per-user queries join the learned_words
// ledger to find words a user has not learned yet.
package word

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

const notLearnedCond = `NOT EXISTS (
    SELECT 1 FROM learned_words lw WHERE lw.word_id = w.id AND lw.user_id = ?)`

var columns = []string{"id", "kanji", "kana", "created_at"}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a word by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	query := postgres.Builder().
		Select(columns...).
		From("words").
		Where(sq.Eq{"id": id})

	var w domain.Word
	if err := postgres.Get(ctx, r.q(ctx), &w, query); err != nil {
		return nil, postgres.MapError(err, "word", id)
	}
	return &w, nil
}

// GetByForms returns the word with exactly this kanji and kana.
func (r *Repo) GetByForms(ctx context.Context, kanji, kana string) (*domain.Word, error) {
	query := postgres.Builder().
		Select(columns...).
		From("words").
		Where(sq.Eq{"kanji": kanji, "kana": kana})

	var w domain.Word
	if err := postgres.Get(ctx, r.q(ctx), &w, query); err != nil {
		return nil, postgres.MapError(err, "word", uuid.Nil)
	}
	return &w, nil
}

// GetDetails returns a word with its classes, meanings and examples, all in
// position order.
func (r *Repo) GetDetails(ctx context.Context, id uuid.UUID) (*domain.WordDetails, error) {
	w, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	details := &domain.WordDetails{Word: *w}

	classes := postgres.Builder().
		Select("class").
		From("word_classes").
		Where(sq.Eq{"word_id": id}).
		OrderBy("position")
	if err := postgres.Select(ctx, r.q(ctx), &details.Classes, classes); err != nil {
		return nil, fmt.Errorf("select word classes: %w", err)
	}

	meanings := postgres.Builder().
		Select("id", "word_id", "text", "position").
		From("meanings").
		Where(sq.Eq{"word_id": id}).
		OrderBy("position")
	if err := postgres.Select(ctx, r.q(ctx), &details.Meanings, meanings); err != nil {
		return nil, fmt.Errorf("select meanings: %w", err)
	}
	if len(details.Meanings) == 0 {
		return details, nil
	}

	meaningIDs := make([]uuid.UUID, len(details.Meanings))
	for i, m := range details.Meanings {
		meaningIDs[i] = m.ID
	}
	examplesQuery := postgres.Builder().
		Select("id", "meaning_id", "text", "position").
		From("examples").
		Where(sq.Eq{"meaning_id": meaningIDs}).
		OrderBy("meaning_id", "position")

	var examples []domain.Example
	if err := postgres.Select(ctx, r.q(ctx), &examples, examplesQuery); err != nil {
		return nil, fmt.Errorf("select examples: %w", err)
	}

	byMeaning := make(map[uuid.UUID][]domain.Example, len(details.Meanings))
	for _, ex := range examples {
		byMeaning[ex.MeaningID] = append(byMeaning[ex.MeaningID], ex)
	}
	for i := range details.Meanings {
		details.Meanings[i].Examples = byMeaning[details.Meanings[i].ID]
	}

	return details, nil
}

// ListAll returns every word ordered by reading.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Word, error) {
	query := postgres.Builder().
		Select(columns...).
		From("words").
		OrderBy("kana", "id")

	words := make([]domain.Word, 0)
	if err := postgres.Select(ctx, r.q(ctx), &words, query); err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}

// Search returns words whose kanji or kana contains query, ordered by kanji.
func (r *Repo) Search(ctx context.Context, query string, limit int) ([]domain.Word, error) {
	pattern := "%" + likeEscaper.Replace(query) + "%"
	q := postgres.Builder().
		Select(columns...).
		From("words").
		Where(sq.Or{sq.Like{"kanji": pattern}, sq.Like{"kana": pattern}}).
		OrderBy("kanji", "kana").
		Limit(uint64(limit))

	words := make([]domain.Word, 0)
	if err := postgres.Select(ctx, r.q(ctx), &words, q); err != nil {
		return nil, fmt.Errorf("search words: %w", err)
	}
	return words, nil
}

// CountAll returns the number of words in the store.
func (r *Repo) CountAll(ctx context.Context) (int, error) {
	n, err := postgres.Count(ctx, r.q(ctx), postgres.Builder().Select("count(*)").From("words"))
	if err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}

// CountUnlearned returns the number of words with no ledger entry for userID.
func (r *Repo) CountUnlearned(ctx context.Context, userID uuid.UUID) (int, error) {
	query := postgres.Builder().
		Select("count(*)").
		From("words w").
		Where(notLearnedCond, userID)

	n, err := postgres.Count(ctx, r.q(ctx), query)
	if err != nil {
		return 0, postgres.MapError(err, "user", userID)
	}
	return n, nil
}

// GetUnlearnedAt returns the unlearned word at offset in a stable id order.
// Pair with CountUnlearned to pick uniformly without retries.
func (r *Repo) GetUnlearnedAt(ctx context.Context, userID uuid.UUID, offset int) (*domain.Word, error) {
	if offset < 0 {
		return nil, errors.New("word: negative offset")
	}
	query := postgres.Builder().
		Select("w.id", "w.kanji", "w.kana", "w.created_at").
		From("words w").
		Where(notLearnedCond, userID).
		OrderBy("w.id").
		Limit(1).
		Offset(uint64(offset))

	var w domain.Word
	if err := postgres.Get(ctx, r.q(ctx), &w, query); err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}
	return &w, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a word. A missing ID is generated.
func (r *Repo) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	id := w.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	query := postgres.Builder().
		Insert("words").
		Columns("id", "kanji", "kana").
		Values(id, w.Kanji, w.Kana).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var created domain.Word
	if err := postgres.Get(ctx, r.q(ctx), &created, query); err != nil {
		return nil, postgres.MapError(err, "word", id)
	}
	return &created, nil
}

// AddClasses attaches classes to a word in the given order. Classes already
// attached are left in place.
func (r *Repo) AddClasses(ctx context.Context, wordID uuid.UUID, classes []domain.WordClass) error {
	if len(classes) == 0 {
		return nil
	}
	query := postgres.Builder().
		Insert("word_classes").
		Columns("word_id", "class", "position")
	for i, c := range classes {
		query = query.Values(wordID, string(c), i)
	}
	query = query.Suffix("ON CONFLICT (word_id, class) DO NOTHING")

	if _, err := postgres.Exec(ctx, r.q(ctx), query); err != nil {
		return postgres.MapError(err, "word", wordID)
	}
	return nil
}
