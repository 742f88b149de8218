package quiz

import (
	"context"
	"fmt"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"github.com/heartmarshall/kotoba-backend/internal/service/quiz/scoring"
	"github.com/heartmarshall/kotoba-backend/pkg/ctxutil"
)

// GetStatistics reports accuracy, average unfamiliarity, today's answer count
// and the pace needed to finish within the goal horizon.
func (s *Service) GetStatistics(ctx context.Context, input GetStatisticsInput) (*domain.Statistics, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	goal := input.GoalDays
	if goal == 0 {
		goal = s.cfg.DefaultGoalDays
	}

	answered, correct, err := s.questions.CountAnswered(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count answered questions: %w", err)
	}
	if answered == 0 {
		return nil, fmt.Errorf("no answered questions: %w", domain.ErrInsufficientData)
	}

	entries, err := s.learned.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("empty ledger: %w", domain.ErrInsufficientData)
	}

	now := s.now()
	today, err := s.questions.CountAnsweredBetween(ctx, userID,
		DayStart(now, s.cfg.Location), NextDayStart(now, s.cfg.Location))
	if err != nil {
		return nil, fmt.Errorf("count answered today: %w", err)
	}

	total, err := s.words.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count words: %w", err)
	}

	var sum float64
	for _, lw := range entries {
		sum += lw.Unfamiliarity
	}
	accuracy := float64(correct) / float64(answered)

	return &domain.Statistics{
		Accuracy:             accuracy,
		AverageUnfamiliarity: sum / float64(len(entries)),
		AnsweredToday:        today,
		RequiredToday:        requiredPace(accuracy, sum, total-len(entries), goal),
	}, nil
}

// requiredPace returns the answers per day needed to clear the remaining
// unfamiliarity within goal days. Each answer removes (2*accuracy-1)/K on
// average; nil means the current accuracy never clears the debt.
func requiredPace(accuracy, ledgerDebt float64, unlearned, goal int) *float64 {
	speed := (2*accuracy - 1) / scoring.Coefficient
	if speed <= 0 || goal <= 0 {
		return nil
	}
	debt := ledgerDebt + float64(max(unlearned, 0))
	pace := debt / speed / float64(goal)
	return &pace
}
