package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"github.com/heartmarshall/kotoba-backend/internal/service/quiz"
	"github.com/heartmarshall/kotoba-backend/pkg/ctxutil"
)

type quizService interface {
	NextQuestion(ctx context.Context) (*domain.QuestionView, error)
	SubmitAnswer(ctx context.Context, input quiz.SubmitAnswerInput) (*domain.AnswerResult, error)
	GetStatistics(ctx context.Context, input quiz.GetStatisticsInput) (*domain.Statistics, error)
	RecomputeLedger(ctx context.Context, userID uuid.UUID) error
}

// QuizHandler serves the /api/quiz endpoints. All routes expect an
// authenticated learner in the request context.
type QuizHandler struct {
	svc quizService
	log *slog.Logger
}

func NewQuizHandler(svc quizService, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{svc: svc, log: logger.With("handler", "quiz")}
}

type questionResponse struct {
	QuestionID    string   `json:"questionId"`
	QuestionType  string   `json:"questionType"`
	Options       []string `json:"options"`
	Kanji         string   `json:"kanji"`
	Meanings      []string `json:"meanings"`
	WordClasses   string   `json:"wordClasses"`
	Unfamiliarity float64  `json:"unfamiliarity"`
}

type answerRequest struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

type answerResponse struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer"`
}

type statResponse struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

// Next handles GET /api/quiz/next.
func (h *QuizHandler) Next(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.NextQuestion(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuestionResponse(view))
}

// Answer handles POST /api/quiz/answer.
func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := quiz.SubmitAnswerInput{Answer: req.Answer}
	if req.QuestionID != "" {
		id, err := uuid.Parse(req.QuestionID)
		if err != nil {
			writeDomainError(w, r, h.log, domain.NewValidationError("question_id", "must be a UUID"))
			return
		}
		input.QuestionID = id
	}

	result, err := h.svc.SubmitAnswer(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, answerResponse{
		Correct:       result.Correct,
		CorrectAnswer: result.CorrectAnswer,
	})
}

// Statistics handles GET /api/quiz/statistics?goalDays=N.
func (h *QuizHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	var input quiz.GetStatisticsInput
	if raw := r.URL.Query().Get("goalDays"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeDomainError(w, r, h.log, domain.NewValidationError("goal_days", "must be an integer"))
			return
		}
		input.GoalDays = n
	}

	stats, err := h.svc.GetStatistics(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	pairs := stats.Pairs()
	resp := make([]statResponse, len(pairs))
	for i, p := range pairs {
		resp[i] = statResponse{Label: p.Label, Value: p.Value}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Recompute handles POST /api/quiz/recompute. It rebuilds the caller's own
// ledger from their answer history.
func (h *QuizHandler) Recompute(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeDomainError(w, r, h.log, domain.ErrUnauthorized)
		return
	}
	if err := h.svc.RecomputeLedger(r.Context(), userID); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toQuestionResponse(v *domain.QuestionView) questionResponse {
	options := v.Options
	if options == nil {
		options = []string{}
	}
	meanings := v.Meanings
	if meanings == nil {
		meanings = []string{}
	}
	return questionResponse{
		QuestionID:    v.QuestionID.String(),
		QuestionType:  string(v.Type),
		Options:       options,
		Kanji:         v.Kanji,
		Meanings:      meanings,
		WordClasses:   v.WordClasses,
		Unfamiliarity: v.Unfamiliarity,
	}
}
