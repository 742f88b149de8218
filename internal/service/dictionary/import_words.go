package dictionary

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

// ImportWords creates every item in its own transaction. A bad or
// duplicate item is reported and the batch continues. Only context
// cancellation stops the import early.
func (s *Service) ImportWords(ctx context.Context, items []ImportItem) (*ImportResult, error) {
	result := &ImportResult{}

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		input := item.Input
		input.Normalize()
		outcome := ImportOutcome{LineNumber: item.LineNumber, Kanji: input.Kanji, Kana: input.Kana}

		if err := input.Validate(); err != nil {
			outcome.Status = ImportInvalid
			outcome.Reason = err.Error()
			result.add(outcome)
			continue
		}

		var details *domain.WordDetails
		err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
			var err error
			details, err = s.createWord(ctx, input)
			return err
		})
		switch {
		case err == nil:
			outcome.Status = ImportCreated
			outcome.WordID = details.ID
		case errors.Is(err, domain.ErrAlreadyExists):
			outcome.Status = ImportDuplicate
			outcome.Reason = "word already exists"
		case errors.Is(err, domain.ErrValidation):
			outcome.Status = ImportInvalid
			outcome.Reason = err.Error()
		default:
			outcome.Status = ImportFailed
			outcome.Reason = err.Error()
			s.log.WarnContext(ctx, "import word failed",
				slog.Int("line", item.LineNumber),
				slog.String("kanji", input.Kanji),
				slog.String("error", err.Error()),
			)
		}
		result.add(outcome)
	}

	s.log.InfoContext(ctx, "words imported",
		slog.Int("created", result.Created),
		slog.Int("duplicate", result.Duplicate),
		slog.Int("invalid", result.Invalid),
		slog.Int("failed", result.Failed),
	)
	return result, nil
}
