package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	GetDetails(ctx context.Context, wordID uuid.UUID) (*domain.WordDetails, error)
	ListAll(ctx context.Context) ([]domain.Word, error)
	CountAll(ctx context.Context) (int, error)
	CountUnlearned(ctx context.Context, userID uuid.UUID) (int, error)
	GetUnlearnedAt(ctx context.Context, userID uuid.UUID, offset int) (*domain.Word, error)
}

type learnedWordRepo interface {
	GetByWordID(ctx context.Context, userID, wordID uuid.UUID) (*domain.LearnedWord, error)
	Create(ctx context.Context, lw *domain.LearnedWord) (*domain.LearnedWord, error)
	Update(ctx context.Context, lw *domain.LearnedWord) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.LearnedWord, error)
	ListReviewable(ctx context.Context, userID uuid.UUID, minUnfamiliarity float64) ([]domain.LearnedWord, error)
	UpdateUnfamiliarities(ctx context.Context, userID uuid.UUID, values map[uuid.UUID]float64) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type questionRepo interface {
	Create(ctx context.Context, q *domain.Question) (*domain.Question, error)
	GetByIDForUpdate(ctx context.Context, questionID uuid.UUID) (*domain.Question, error)
	ListUnanswered(ctx context.Context, userID uuid.UUID) ([]domain.Question, error)
	MarkAnswered(ctx context.Context, userID, questionID uuid.UUID, answeredAt time.Time, correct bool) error
	ListAnswered(ctx context.Context, userID uuid.UUID) ([]domain.AnsweredQuestion, error)
	CountAnswered(ctx context.Context, userID uuid.UUID) (answered, correct int, err error)
	CountAnsweredBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error)
}

type historyRepo interface {
	GetLatest(ctx context.Context, userID uuid.UUID) (*domain.UpdateHistory, error)
	Create(ctx context.Context, userID uuid.UUID, at time.Time) (*domain.UpdateHistory, error)
}

type userLocker interface {
	LockUser(ctx context.Context, userID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements question scheduling, answer scoring and statistics.
type Service struct {
	words      wordRepo
	learned    learnedWordRepo
	questions  questionRepo
	history    historyRepo
	locker     userLocker
	tx         txManager
	generators *Registry
	rnd        Rand
	cfg        domain.QuizConfig
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new Quiz service.
func NewService(
	log *slog.Logger,
	words wordRepo,
	learned learnedWordRepo,
	questions questionRepo,
	history historyRepo,
	locker userLocker,
	tx txManager,
	generators *Registry,
	rnd Rand,
	cfg domain.QuizConfig,
) (*Service, error) {
	if generators == nil || generators.Len() == 0 {
		return nil, errors.New("quiz: at least one question generator is required")
	}
	if rnd == nil {
		return nil, errors.New("quiz: random source is required")
	}
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("quiz: %w", err)
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	return &Service{
		words:      words,
		learned:    learned,
		questions:  questions,
		history:    history,
		locker:     locker,
		tx:         tx,
		generators: generators,
		rnd:        rnd,
		cfg:        cfg,
		log:        log.With("service", "quiz"),
		now:        time.Now,
	}, nil
}

func validateConfig(cfg domain.QuizConfig) error {
	switch {
	case cfg.NewWordProb < 0 || cfg.NewWordProb > 1:
		return fmt.Errorf("new word probability %v out of [0,1]", cfg.NewWordProb)
	case cfg.ReviewFloor < 0 || cfg.ReviewFloor > 1:
		return fmt.Errorf("review floor %v out of [0,1]", cfg.ReviewFloor)
	case cfg.UnfamiliarityThreshold < 0:
		return fmt.Errorf("unfamiliarity threshold %v is negative", cfg.UnfamiliarityThreshold)
	case cfg.DefaultGoalDays < 1:
		return fmt.Errorf("default goal days %d must be positive", cfg.DefaultGoalDays)
	}
	return nil
}

// today returns the current calendar date in the quiz timezone.
func (s *Service) today() time.Time {
	return CalendarDate(s.now(), s.cfg.Location)
}
