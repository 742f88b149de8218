package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"github.com/heartmarshall/kotoba-backend/internal/service/quiz/scoring"
	"github.com/heartmarshall/kotoba-backend/pkg/ctxutil"
)

// wordClassSeparator joins word class labels in a question view.
const wordClassSeparator = ", "

// NextQuestion returns the next question for the user in ctx. A pending
// unanswered question is served first when enabled; otherwise a word is
// chosen for review or introduction and a fresh question is generated.
func (s *Service) NextQuestion(ctx context.Context) (*domain.QuestionView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if s.cfg.PreferUnanswered {
		pending, err := s.questions.ListUnanswered(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("list unanswered questions: %w", err)
		}
		if len(pending) > 0 {
			q := pending[s.rnd.IntN(len(pending))]
			return s.buildView(ctx, &q, s.estimateUnfamiliarity(ctx, userID, q.WordID))
		}
	}

	var (
		question      *domain.Question
		unfamiliarity float64
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.locker.LockUser(ctx, userID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}
		if err := s.runDecayPass(ctx, userID); err != nil {
			return err
		}

		word, u, err := s.chooseWord(ctx, userID)
		if err != nil {
			return err
		}
		unfamiliarity = u

		pool, err := s.words.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("list words: %w", err)
		}
		gen := s.generators.Pick(s.rnd)
		draft, err := gen.Generate(s.rnd, *word, pool)
		if err != nil {
			return fmt.Errorf("generate %s question: %w", gen.Type(), err)
		}

		question, err = s.questions.Create(ctx, &domain.Question{
			WordID:        draft.WordID,
			UserID:        userID,
			Type:          draft.Type,
			Payload:       draft.Payload,
			CorrectAnswer: draft.CorrectAnswer,
		})
		if err != nil {
			return fmt.Errorf("create question: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "question issued",
		slog.String("user_id", userID.String()),
		slog.String("question_id", question.ID.String()),
		slog.String("word_id", question.WordID.String()),
		slog.Float64("unfamiliarity", unfamiliarity),
	)

	return s.buildView(ctx, question, unfamiliarity)
}

// estimateUnfamiliarity returns the decayed unfamiliarity of the user's
// ledger entry for wordID without persisting it. Unknown words and read
// failures count as maximally unfamiliar.
func (s *Service) estimateUnfamiliarity(ctx context.Context, userID, wordID uuid.UUID) float64 {
	lw, err := s.learned.GetByWordID(ctx, userID, wordID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "read ledger entry for pending question",
				slog.String("user_id", userID.String()),
				slog.String("word_id", wordID.String()),
				slog.String("error", err.Error()),
			)
		}
		return scoring.MaxUnfamiliarity
	}
	return s.decayed(*lw)
}

// decayed brings a ledger entry's unfamiliarity to today.
func (s *Service) decayed(lw domain.LearnedWord) float64 {
	days := DaysBetween(lw.LastReviewDate, s.today())
	return scoring.Decay(days, lw.ReviewUnfamiliarity, lw.CorrectAnsweredCount)
}

// runDecayPass decays the user's ledger at most once per calendar day.
// Must run inside a transaction holding the user lock.
func (s *Service) runDecayPass(ctx context.Context, userID uuid.UUID) error {
	done, err := s.decayPassDoneToday(ctx, userID)
	if err != nil || done {
		return err
	}

	entries, err := s.learned.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("list ledger: %w", err)
	}
	values := make(map[uuid.UUID]float64, len(entries))
	for _, lw := range entries {
		if u := s.decayed(lw); u != lw.Unfamiliarity {
			values[lw.ID] = u
		}
	}
	if len(values) > 0 {
		if err := s.learned.UpdateUnfamiliarities(ctx, userID, values); err != nil {
			return fmt.Errorf("update ledger unfamiliarity: %w", err)
		}
	}
	if _, err := s.history.Create(ctx, userID, s.now()); err != nil {
		return fmt.Errorf("create update history: %w", err)
	}

	s.log.InfoContext(ctx, "decay pass completed",
		slog.String("user_id", userID.String()),
		slog.Int("entries", len(entries)),
		slog.Int("changed", len(values)),
	)
	return nil
}

// decayPassDoneToday reports whether the user's ledger was already decayed
// on the current calendar day.
func (s *Service) decayPassDoneToday(ctx context.Context, userID uuid.UUID) (bool, error) {
	latest, err := s.history.GetLatest(ctx, userID)
	switch {
	case err == nil:
		return !CalendarDate(latest.UpdateDate, s.cfg.Location).Before(s.today()), nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("get latest update history: %w", err)
	}
}

// chooseWord decides between a new word and a review and returns the word
// with the unfamiliarity used for the choice.
func (s *Service) chooseWord(ctx context.Context, userID uuid.UUID) (*domain.Word, float64, error) {
	entries, err := s.learned.ListByUser(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("list ledger: %w", err)
	}

	chooseNew := true
	if len(entries) > 0 {
		var sum float64
		for _, lw := range entries {
			sum += lw.Unfamiliarity
		}
		if sum/float64(len(entries)) >= s.cfg.UnfamiliarityThreshold {
			chooseNew = false
		} else {
			chooseNew = s.rnd.Float64() < s.cfg.NewWordProb
		}
	}

	if chooseNew {
		w, err := s.pickNewWord(ctx, userID)
		if err == nil {
			return w, scoring.MaxUnfamiliarity, nil
		}
		if !errors.Is(err, domain.ErrNoWordsAvailable) {
			return nil, 0, err
		}
		return s.pickReviewWord(ctx, userID)
	}

	w, u, err := s.pickReviewWord(ctx, userID)
	if err == nil {
		return w, u, nil
	}
	if !errors.Is(err, domain.ErrNoWordsAvailable) {
		return nil, 0, err
	}
	w, err = s.pickNewWord(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return w, scoring.MaxUnfamiliarity, nil
}

// pickNewWord picks uniformly among words the user has never learned.
func (s *Service) pickNewWord(ctx context.Context, userID uuid.UUID) (*domain.Word, error) {
	n, err := s.words.CountUnlearned(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count unlearned words: %w", err)
	}
	if n == 0 {
		return nil, domain.ErrNoWordsAvailable
	}
	w, err := s.words.GetUnlearnedAt(ctx, userID, s.rnd.IntN(n))
	if err != nil {
		return nil, fmt.Errorf("get unlearned word: %w", err)
	}
	return w, nil
}

// pickReviewWord picks uniformly among ledger entries at or above the
// review floor.
func (s *Service) pickReviewWord(ctx context.Context, userID uuid.UUID) (*domain.Word, float64, error) {
	pool, err := s.learned.ListReviewable(ctx, userID, s.cfg.ReviewFloor)
	if err != nil {
		return nil, 0, fmt.Errorf("list reviewable words: %w", err)
	}
	if len(pool) == 0 {
		return nil, 0, domain.ErrNoWordsAvailable
	}
	lw := pool[s.rnd.IntN(len(pool))]
	details, err := s.words.GetDetails(ctx, lw.WordID)
	if err != nil {
		return nil, 0, fmt.Errorf("get review word: %w", err)
	}
	return &details.Word, lw.Unfamiliarity, nil
}

// buildView strips internal fields from q and attaches the word context.
func (s *Service) buildView(ctx context.Context, q *domain.Question, unfamiliarity float64) (*domain.QuestionView, error) {
	options, err := DecodeOptions(q.Payload)
	if err != nil {
		return nil, err
	}
	details, err := s.words.GetDetails(ctx, q.WordID)
	if err != nil {
		return nil, fmt.Errorf("get question word: %w", err)
	}

	return &domain.QuestionView{
		QuestionID:    q.ID,
		Type:          q.Type,
		Options:       options,
		Kanji:         details.Kanji,
		Meanings:      details.MeaningTexts(),
		WordClasses:   strings.Join(details.ClassLabels(), wordClassSeparator),
		Unfamiliarity: unfamiliarity,
	}, nil
}
