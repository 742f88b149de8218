// Package question implements the Question repository using PostgreSQL.
package question

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

var columns = []string{
	"id", "word_id", "user_id", "type", "payload::text AS payload", "correct_answer",
	"answered", "answer_date", "answer_is_correct", "created_at",
}

// Repo provides question persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new question repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

func answeredBy(userID uuid.UUID) sq.Eq {
	return sq.Eq{"user_id": userID, "answered": true}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByIDForUpdate returns a question and locks its row until the
// surrounding transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, questionID uuid.UUID) (*domain.Question, error) {
	query := postgres.Builder().
		Select(columns...).
		From("questions").
		Where(sq.Eq{"id": questionID}).
		Suffix("FOR UPDATE")

	var q domain.Question
	if err := postgres.Get(ctx, r.q(ctx), &q, query); err != nil {
		return nil, postgres.MapError(err, "question", questionID)
	}
	return &q, nil
}

// ListUnanswered returns the user's pending questions, oldest first.
func (r *Repo) ListUnanswered(ctx context.Context, userID uuid.UUID) ([]domain.Question, error) {
	query := postgres.Builder().
		Select(columns...).
		From("questions").
		Where(sq.Eq{"user_id": userID, "answered": false}).
		OrderBy("created_at", "id")

	questions := make([]domain.Question, 0)
	if err := postgres.Select(ctx, r.q(ctx), &questions, query); err != nil {
		return nil, fmt.Errorf("list unanswered questions: %w", err)
	}
	return questions, nil
}

// ListAnswered returns the user's answer history in answer order.
func (r *Repo) ListAnswered(ctx context.Context, userID uuid.UUID) ([]domain.AnsweredQuestion, error) {
	query := postgres.Builder().
		Select("word_id", "answer_date", "answer_is_correct AS correct").
		From("questions").
		Where(answeredBy(userID)).
		OrderBy("answer_date", "id")

	answers := make([]domain.AnsweredQuestion, 0)
	if err := postgres.Select(ctx, r.q(ctx), &answers, query); err != nil {
		return nil, fmt.Errorf("list answered questions: %w", err)
	}
	return answers, nil
}

// CountAnswered returns how many questions the user answered and how many of
// those were correct.
func (r *Repo) CountAnswered(ctx context.Context, userID uuid.UUID) (answered, correct int, err error) {
	sql, args, err := postgres.Builder().
		Select("count(*)", "count(*) FILTER (WHERE answer_is_correct)").
		From("questions").
		Where(answeredBy(userID)).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("build query: %w", err)
	}

	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&answered, &correct); err != nil {
		return 0, 0, postgres.MapError(err, "user", userID)
	}
	return answered, correct, nil
}

// CountAnsweredBetween counts answers with from <= answer_date < to.
func (r *Repo) CountAnsweredBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error) {
	query := postgres.Builder().
		Select("count(*)").
		From("questions").
		Where(answeredBy(userID)).
		Where(sq.GtOrEq{"answer_date": from}).
		Where(sq.Lt{"answer_date": to})

	n, err := postgres.Count(ctx, r.q(ctx), query)
	if err != nil {
		return 0, postgres.MapError(err, "user", userID)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a question. A missing ID is generated.
func (r *Repo) Create(ctx context.Context, q *domain.Question) (*domain.Question, error) {
	id := q.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	query := postgres.Builder().
		Insert("questions").
		Columns("id", "word_id", "user_id", "type", "payload", "correct_answer").
		Values(id, q.WordID, q.UserID, string(q.Type), sq.Expr("?::jsonb", q.Payload), q.CorrectAnswer).
		Suffix("RETURNING id, word_id, user_id, type, payload::text AS payload, correct_answer, answered, answer_date, answer_is_correct, created_at")

	var created domain.Question
	if err := postgres.Get(ctx, r.q(ctx), &created, query); err != nil {
		return nil, postgres.MapError(err, "question", id)
	}
	return &created, nil
}

// MarkAnswered records the answer of a pending question owned by userID.
// A question that is already answered yields domain.ErrQuestionAnswered.
func (r *Repo) MarkAnswered(ctx context.Context, userID, questionID uuid.UUID, answeredAt time.Time, correct bool) error {
	query := postgres.Builder().
		Update("questions").
		Set("answered", true).
		Set("answer_date", answeredAt).
		Set("answer_is_correct", correct).
		Where(sq.Eq{"id": questionID, "user_id": userID, "answered": false})

	tag, err := postgres.Exec(ctx, r.q(ctx), query)
	if err != nil {
		return postgres.MapError(err, "question", questionID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %s: %w", questionID, domain.ErrQuestionAnswered)
	}
	return nil
}
