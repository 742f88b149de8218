package domain

import (
	"time"

	"github.com/google/uuid"
)

// LearnedWord is the ledger entry tracking one user's progress on one word.
//
// LearnedDate and LastReviewDate are calendar dates stored as UTC midnight.
// ReviewUnfamiliarity is the unfamiliarity right after the review on
// LastReviewDate; Unfamiliarity is that value decayed to the last decay pass.
type LearnedWord struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	WordID               uuid.UUID
	LearnedDate          time.Time
	LastReviewDate       time.Time
	TotalAnsweredCount   int
	CorrectAnsweredCount int
	Unfamiliarity        float64
	ReviewUnfamiliarity  float64
}

// Question is a quiz instance issued to a user.
type Question struct {
	ID              uuid.UUID
	WordID          uuid.UUID
	UserID          uuid.UUID
	Type            QuestionType
	Payload         string
	CorrectAnswer   string
	Answered        bool
	AnswerDate      *time.Time
	AnswerIsCorrect bool
	CreatedAt       time.Time
}

// UpdateHistory marks a completed decay pass for a user.
type UpdateHistory struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	UpdateDate time.Time
}

// AnsweredQuestion is the slice of an answered question needed to replay
// the ledger.
type AnsweredQuestion struct {
	WordID     uuid.UUID
	AnswerDate time.Time
	Correct    bool
}
