package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	u := domain.User{
		ID:        uuid.New(),
		Name:      "learner-" + uniqueSuffix(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, created_at) VALUES ($1, $2, $3)`,
		u.ID, u.Name, u.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return u
}

// SeedWord inserts a word whose forms carry a unique suffix, so seeded words
// never collide across tests sharing the container.
func SeedWord(t *testing.T, pool *pgxpool.Pool, kanji, kana string) domain.Word {
	t.Helper()

	suffix := uniqueSuffix()
	w := domain.Word{
		ID:        uuid.New(),
		Kanji:     kanji + suffix,
		Kana:      kana + suffix,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO words (id, kanji, kana, created_at) VALUES ($1, $2, $3, $4)`,
		w.ID, w.Kanji, w.Kana, w.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord: %v", err)
	}

	return w
}

// SeedLearnedWord inserts a ledger entry for userID and wordID reviewed on day.
func SeedLearnedWord(t *testing.T, pool *pgxpool.Pool, userID, wordID uuid.UUID, day time.Time, unfamiliarity float64) domain.LearnedWord {
	t.Helper()

	lw := domain.LearnedWord{
		ID:                  uuid.New(),
		UserID:              userID,
		WordID:              wordID,
		LearnedDate:         day,
		LastReviewDate:      day,
		Unfamiliarity:       unfamiliarity,
		ReviewUnfamiliarity: unfamiliarity,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO learned_words (id, user_id, word_id, learned_date, last_review_date,
		     total_answered_count, correct_answered_count, unfamiliarity, review_unfamiliarity)
		 VALUES ($1, $2, $3, $4, $5, 0, 0, $6, $7)`,
		lw.ID, lw.UserID, lw.WordID, lw.LearnedDate, lw.LastReviewDate, lw.Unfamiliarity, lw.ReviewUnfamiliarity,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLearnedWord: %v", err)
	}

	return lw
}
