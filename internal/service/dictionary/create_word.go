package dictionary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

// CreateWord stores a word with its classes, meanings and examples in one
// transaction. A word with the same kanji and kana is rejected with
// domain.ErrAlreadyExists.
func (s *Service) CreateWord(ctx context.Context, input CreateWordInput) (*domain.WordDetails, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var details *domain.WordDetails
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		details, err = s.createWord(ctx, input)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "word created",
		slog.String("word_id", details.ID.String()),
		slog.String("kanji", details.Kanji),
		slog.String("kana", details.Kana),
	)
	return details, nil
}

func (s *Service) createWord(ctx context.Context, input CreateWordInput) (*domain.WordDetails, error) {
	_, err := s.words.GetByForms(ctx, input.Kanji, input.Kana)
	if err == nil {
		return nil, fmt.Errorf("word %s (%s): %w", input.Kanji, input.Kana, domain.ErrAlreadyExists)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}

	word, err := s.words.Create(ctx, &domain.Word{Kanji: input.Kanji, Kana: input.Kana})
	if err != nil {
		return nil, fmt.Errorf("create word: %w", err)
	}

	classes := uniqueClasses(input.Classes)
	if len(classes) > 0 {
		if err := s.words.AddClasses(ctx, word.ID, classes); err != nil {
			return nil, fmt.Errorf("add word classes: %w", err)
		}
	}

	details := &domain.WordDetails{Word: *word, Classes: classes}
	for m, mi := range input.Meanings {
		meaning, err := s.meanings.Create(ctx, word.ID, mi.Text, m)
		if err != nil {
			return nil, fmt.Errorf("create meaning: %w", err)
		}
		for e, text := range mi.Examples {
			ex, err := s.examples.Create(ctx, meaning.ID, text, e)
			if err != nil {
				return nil, fmt.Errorf("create example: %w", err)
			}
			meaning.Examples = append(meaning.Examples, *ex)
		}
		details.Meanings = append(details.Meanings, *meaning)
	}
	return details, nil
}

// uniqueClasses drops repeated classes, keeping first occurrences in order.
func uniqueClasses(classes []domain.WordClass) []domain.WordClass {
	out := make([]domain.WordClass, 0, len(classes))
	for _, c := range classes {
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}
