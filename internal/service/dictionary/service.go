package dictionary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	GetByForms(ctx context.Context, kanji, kana string) (*domain.Word, error)
	GetDetails(ctx context.Context, wordID uuid.UUID) (*domain.WordDetails, error)
	Create(ctx context.Context, w *domain.Word) (*domain.Word, error)
	AddClasses(ctx context.Context, wordID uuid.UUID, classes []domain.WordClass) error
	Search(ctx context.Context, query string, limit int) ([]domain.Word, error)
}

type meaningRepo interface {
	Create(ctx context.Context, wordID uuid.UUID, text string, position int) (*domain.Meaning, error)
}

type exampleRepo interface {
	Create(ctx context.Context, meaningID uuid.UUID, text string, position int) (*domain.Example, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service manages the shared word store.
type Service struct {
	log      *slog.Logger
	words    wordRepo
	meanings meaningRepo
	examples exampleRepo
	tx       txManager
}

// NewService creates a new Dictionary service.
func NewService(
	logger *slog.Logger,
	words wordRepo,
	meanings meaningRepo,
	examples exampleRepo,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "dictionary"),
		words:    words,
		meanings: meanings,
		examples: examples,
		tx:       tx,
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// clampLimit ensures a limit is within [1, max], defaulting from 0 to defaultVal.
func clampLimit(limit, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit > max {
		return max
	}
	return limit
}
