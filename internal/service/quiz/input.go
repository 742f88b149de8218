package quiz

import (
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

// MaxGoalDays bounds the completion horizon accepted by GetStatistics.
const MaxGoalDays = 3650

// SubmitAnswerInput holds the parameters for answering a question.
type SubmitAnswerInput struct {
	QuestionID uuid.UUID
	Answer     string
}

// Validate checks all fields and collects all errors.
func (i *SubmitAnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	if strings.TrimSpace(i.Answer) == "" {
		errs = append(errs, domain.FieldError{Field: "answer", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GetStatisticsInput holds the parameters for the statistics report.
// Zero GoalDays selects the configured default.
type GetStatisticsInput struct {
	GoalDays int
}

// Validate checks all fields and collects all errors.
func (i *GetStatisticsInput) Validate() error {
	if i.GoalDays < 0 || i.GoalDays > MaxGoalDays {
		return domain.NewValidationError("goal_days", "must be between 1 and 3650")
	}
	return nil
}
