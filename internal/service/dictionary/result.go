package dictionary

import "github.com/google/uuid"

// ImportStatus is the outcome of one imported word.
type ImportStatus string

const (
	ImportCreated   ImportStatus = "created"
	ImportDuplicate ImportStatus = "duplicate"
	ImportInvalid   ImportStatus = "invalid"
	ImportFailed    ImportStatus = "failed"
)

// ImportItem is one word of a batch import with its source line.
type ImportItem struct {
	LineNumber int
	Input      CreateWordInput
}

// ImportOutcome reports what happened to one ImportItem.
type ImportOutcome struct {
	LineNumber int
	Kanji      string
	Kana       string
	Status     ImportStatus
	WordID     uuid.UUID
	Reason     string
}

// ImportResult contains the per-line outcomes of an import.
type ImportResult struct {
	Created   int
	Duplicate int
	Invalid   int
	Failed    int
	Outcomes  []ImportOutcome
}

func (r *ImportResult) add(o ImportOutcome) {
	switch o.Status {
	case ImportCreated:
		r.Created++
	case ImportDuplicate:
		r.Duplicate++
	case ImportInvalid:
		r.Invalid++
	case ImportFailed:
		r.Failed++
	}
	r.Outcomes = append(r.Outcomes, o)
}
