package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a dictionary word: its written form and its kana reading.
type Word struct {
	ID        uuid.UUID
	Kanji     string
	Kana      string
	CreatedAt time.Time
}

// Meaning is one sense of a word with its usage examples.
type Meaning struct {
	ID       uuid.UUID
	WordID   uuid.UUID
	Text     string
	Position int
	Examples []Example
}

// Example is a usage example attached to a meaning.
type Example struct {
	ID        uuid.UUID
	MeaningID uuid.UUID
	Text      string
	Position  int
}

// WordDetails is a word with its classes and meanings.
type WordDetails struct {
	Word
	Classes  []WordClass
	Meanings []Meaning
}

// ClassLabels returns the display labels of the word classes.
func (d WordDetails) ClassLabels() []string {
	labels := make([]string, len(d.Classes))
	for i, c := range d.Classes {
		labels[i] = c.Label()
	}
	return labels
}

// MeaningTexts returns the meaning texts in display order.
func (d WordDetails) MeaningTexts() []string {
	texts := make([]string, len(d.Meanings))
	for i, m := range d.Meanings {
		texts[i] = m.Text
	}
	return texts
}
