package dictionary

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

const (
	maxFormLength    = 100
	maxMeaningLength = 1000
	maxExampleLength = 2000
	maxMeanings      = 20
	maxExamples      = 20
)

// CreateWordInput holds the parameters for creating a word.
type CreateWordInput struct {
	Kanji    string
	Kana     string
	Classes  []domain.WordClass
	Meanings []MeaningInput
}

// MeaningInput is one meaning with its usage examples.
type MeaningInput struct {
	Text     string
	Examples []string
}

// Normalize cleans the written forms and trims meaning and example texts.
func (i *CreateWordInput) Normalize() {
	i.Kanji = domain.CleanJapanese(i.Kanji)
	i.Kana = domain.CleanJapanese(i.Kana)
	for m := range i.Meanings {
		i.Meanings[m].Text = strings.TrimSpace(i.Meanings[m].Text)
		for e := range i.Meanings[m].Examples {
			i.Meanings[m].Examples[e] = strings.TrimSpace(i.Meanings[m].Examples[e])
		}
	}
}

// Validate checks all fields and collects all errors. Call Normalize first.
func (i *CreateWordInput) Validate() error {
	var errs []domain.FieldError

	errs = appendFormErrors(errs, "kanji", i.Kanji)
	errs = appendFormErrors(errs, "kana", i.Kana)

	for idx, c := range i.Classes {
		if !c.IsValid() {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("classes[%d]", idx),
				Message: fmt.Sprintf("unknown word class %q", string(c)),
			})
		}
	}

	if len(i.Meanings) == 0 {
		errs = append(errs, domain.FieldError{Field: "meanings", Message: "at least one meaning is required"})
	}
	if len(i.Meanings) > maxMeanings {
		errs = append(errs, domain.FieldError{Field: "meanings", Message: fmt.Sprintf("max %d meanings", maxMeanings)})
	}
	for m, meaning := range i.Meanings {
		field := fmt.Sprintf("meanings[%d]", m)
		if meaning.Text == "" {
			errs = append(errs, domain.FieldError{Field: field + ".text", Message: "required"})
		}
		if utf8.RuneCountInString(meaning.Text) > maxMeaningLength {
			errs = append(errs, domain.FieldError{Field: field + ".text", Message: fmt.Sprintf("max %d characters", maxMeaningLength)})
		}
		if len(meaning.Examples) > maxExamples {
			errs = append(errs, domain.FieldError{Field: field + ".examples", Message: fmt.Sprintf("max %d examples", maxExamples)})
		}
		for e, ex := range meaning.Examples {
			if ex == "" {
				errs = append(errs, domain.FieldError{Field: fmt.Sprintf("%s.examples[%d]", field, e), Message: "must not be empty"})
			}
			if utf8.RuneCountInString(ex) > maxExampleLength {
				errs = append(errs, domain.FieldError{Field: fmt.Sprintf("%s.examples[%d]", field, e), Message: fmt.Sprintf("max %d characters", maxExampleLength)})
			}
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func appendFormErrors(errs []domain.FieldError, field, value string) []domain.FieldError {
	if value == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if utf8.RuneCountInString(value) > maxFormLength {
		return append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", maxFormLength)})
	}
	return errs
}

// SearchWordsInput holds the parameters for a word search.
type SearchWordsInput struct {
	Query string
	Limit int
}

// Validate checks all fields and collects all errors.
func (i *SearchWordsInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Query) == "" {
		errs = append(errs, domain.FieldError{Field: "query", Message: "required"})
	}
	if utf8.RuneCountInString(i.Query) > maxFormLength {
		errs = append(errs, domain.FieldError{Field: "query", Message: fmt.Sprintf("max %d characters", maxFormLength)})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
