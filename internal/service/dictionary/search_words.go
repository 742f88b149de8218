package dictionary

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// SearchWords returns words whose kanji or kana contains the query, ordered
// by kanji.
func (s *Service) SearchWords(ctx context.Context, input SearchWordsInput) ([]domain.Word, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := clampLimit(input.Limit, maxSearchLimit, defaultSearchLimit)
	words, err := s.words.Search(ctx, strings.TrimSpace(input.Query), limit)
	if err != nil {
		return nil, fmt.Errorf("search words: %w", err)
	}
	return words, nil
}

// GetWord returns a word with its classes and meanings.
func (s *Service) GetWord(ctx context.Context, wordID uuid.UUID) (*domain.WordDetails, error) {
	if wordID == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	details, err := s.words.GetDetails(ctx, wordID)
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}
	return details, nil
}
