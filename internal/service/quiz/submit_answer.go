package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"github.com/heartmarshall/kotoba-backend/internal/service/quiz/scoring"
	"github.com/heartmarshall/kotoba-backend/pkg/ctxutil"
)

// SubmitAnswer records the answer to a question and updates the ledger entry
// of its word. The correct answer is always returned.
func (s *Service) SubmitAnswer(ctx context.Context, input SubmitAnswerInput) (*domain.AnswerResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		result domain.AnswerResult
		entry  *domain.LearnedWord
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.locker.LockUser(ctx, userID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		q, err := s.questions.GetByIDForUpdate(ctx, input.QuestionID)
		if err != nil {
			return fmt.Errorf("get question: %w", err)
		}
		if q.UserID != userID {
			return domain.ErrQuestionNotOwned
		}
		if q.Answered {
			return domain.ErrQuestionAnswered
		}

		now := s.now()
		today := CalendarDate(now, s.cfg.Location)
		correct := input.Answer == q.CorrectAnswer

		if err := s.questions.MarkAnswered(ctx, userID, q.ID, now, correct); err != nil {
			return fmt.Errorf("mark question answered: %w", err)
		}

		entry, err = s.getOrCreateEntry(ctx, q, today)
		if err != nil {
			return err
		}

		applyAnswer(entry, today, correct)
		if err := s.learned.Update(ctx, entry); err != nil {
			return fmt.Errorf("update ledger entry: %w", err)
		}

		result = domain.AnswerResult{Correct: correct, CorrectAnswer: q.CorrectAnswer}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "answer recorded",
		slog.String("user_id", userID.String()),
		slog.String("question_id", input.QuestionID.String()),
		slog.Bool("correct", result.Correct),
		slog.Float64("unfamiliarity", entry.Unfamiliarity),
	)

	return &result, nil
}

func (s *Service) getOrCreateEntry(ctx context.Context, q *domain.Question, today time.Time) (*domain.LearnedWord, error) {
	lw, err := s.learned.GetByWordID(ctx, q.UserID, q.WordID)
	if err == nil {
		return lw, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}

	lw, err = s.learned.Create(ctx, &domain.LearnedWord{
		UserID:              q.UserID,
		WordID:              q.WordID,
		LearnedDate:         today,
		LastReviewDate:      today,
		Unfamiliarity:       scoring.MaxUnfamiliarity,
		ReviewUnfamiliarity: scoring.MaxUnfamiliarity,
	})
	if err != nil {
		return nil, fmt.Errorf("create ledger entry: %w", err)
	}
	return lw, nil
}

// applyAnswer folds one answer given on day into lw. The prior is the
// review-time unfamiliarity decayed over the days since the last review.
func applyAnswer(lw *domain.LearnedWord, day time.Time, correct bool) {
	u := scoring.Decay(DaysBetween(lw.LastReviewDate, day), lw.ReviewUnfamiliarity, lw.CorrectAnsweredCount)
	u = scoring.ApplyAnswer(u, correct)

	lw.TotalAnsweredCount++
	if correct {
		lw.CorrectAnsweredCount++
	}
	lw.LastReviewDate = day
	lw.Unfamiliarity = u
	lw.ReviewUnfamiliarity = u
}
