package domain

import (
	"time"

	"github.com/google/uuid"
)

// QuizConfig holds the question scheduling parameters (pure domain type).
type QuizConfig struct {
	NumOptions             int
	NewWordProb            float64
	UnfamiliarityThreshold float64
	ReviewFloor            float64
	PreferUnanswered       bool
	Location               *time.Location
	DefaultGoalDays        int
}

// QuestionView is a question prepared for the client: internal fields are
// stripped and the option payload is expanded.
type QuestionView struct {
	QuestionID    uuid.UUID
	Type          QuestionType
	Options       []string
	Kanji         string
	Meanings      []string
	WordClasses   string
	Unfamiliarity float64
}

// AnswerResult is returned after an answer is recorded.
type AnswerResult struct {
	Correct       bool
	CorrectAnswer string
}

// Statistics summarizes a user's progress.
// RequiredToday is nil when the current accuracy can never clear the debt.
type Statistics struct {
	Accuracy             float64
	AverageUnfamiliarity float64
	AnsweredToday        int
	RequiredToday        *float64
}

// StatPair is one labelled statistic.
type StatPair struct {
	Label string
	Value any
}

// Pairs returns the statistics as an ordered list of labelled values.
func (s Statistics) Pairs() []StatPair {
	var required any
	if s.RequiredToday != nil {
		required = *s.RequiredToday
	}
	return []StatPair{
		{Label: "accuracy", Value: s.Accuracy},
		{Label: "average_unfamiliarity", Value: s.AverageUnfamiliarity},
		{Label: "answered_today", Value: s.AnsweredToday},
		{Label: "required_today", Value: required},
	}
}
