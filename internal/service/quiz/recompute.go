package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"github.com/heartmarshall/kotoba-backend/internal/service/quiz/scoring"
)

// ReplayLedger rebuilds ledger entries from answered questions. Answers are
// applied per word in (answer date, input) order starting from maximal
// unfamiliarity, using the same rules as SubmitAnswer. Dates are calendar
// days in loc. Entries are returned in order of first answer; UserID and ID
// are left empty.
func ReplayLedger(answers []domain.AnsweredQuestion, loc *time.Location) []domain.LearnedWord {
	ordered := slices.Clone(answers)
	slices.SortStableFunc(ordered, func(a, b domain.AnsweredQuestion) int {
		return a.AnswerDate.Compare(b.AnswerDate)
	})

	index := make(map[uuid.UUID]int)
	var entries []domain.LearnedWord
	for _, a := range ordered {
		day := CalendarDate(a.AnswerDate, loc)
		i, ok := index[a.WordID]
		if !ok {
			i = len(entries)
			index[a.WordID] = i
			entries = append(entries, domain.LearnedWord{
				WordID:              a.WordID,
				LearnedDate:         day,
				LastReviewDate:      day,
				Unfamiliarity:       scoring.MaxUnfamiliarity,
				ReviewUnfamiliarity: scoring.MaxUnfamiliarity,
			})
		}
		applyAnswer(&entries[i], day, a.Correct)
	}
	return entries
}

// RecomputeLedger discards the ledger of userID and rebuilds it from the
// user's answered questions. Entries are decayed to today only when today's
// decay pass already ran, so the rebuilt ledger equals the incrementally
// maintained one; otherwise the next pass decays them.
func (s *Service) RecomputeLedger(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return domain.NewValidationError("user_id", "required")
	}

	var deleted, created int
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.locker.LockUser(ctx, userID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		n, err := s.learned.DeleteByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("delete ledger: %w", err)
		}
		deleted = n

		answers, err := s.questions.ListAnswered(ctx, userID)
		if err != nil {
			return fmt.Errorf("list answered questions: %w", err)
		}
		decayNow, err := s.decayPassDoneToday(ctx, userID)
		if err != nil {
			return err
		}

		for _, lw := range ReplayLedger(answers, s.cfg.Location) {
			lw.UserID = userID
			if decayNow {
				lw.Unfamiliarity = s.decayed(lw)
			}
			if _, err := s.learned.Create(ctx, &lw); err != nil {
				return fmt.Errorf("create ledger entry: %w", err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "ledger recomputed",
		slog.String("user_id", userID.String()),
		slog.Int("deleted", deleted),
		slog.Int("created", created),
	)
	return nil
}
