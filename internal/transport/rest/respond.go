package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"github.com/heartmarshall/kotoba-backend/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

// Error codes returned in the "code" field of error responses.
const (
	codeBadRequest             = "BAD_REQUEST"
	codeValidation             = "VALIDATION"
	codeUnauthorized           = "UNAUTHORIZED"
	codeNotFound               = "NOT_FOUND"
	codeAlreadyExists          = "ALREADY_EXISTS"
	codeConflict               = "CONFLICT"
	codeInsufficientData       = "INSUFFICIENT_DATA"
	codeInsufficientCandidates = "INSUFFICIENT_CANDIDATES"
	codeNoWords                = "NO_WORDS_AVAILABLE"
	codeUnavailable            = "UNAVAILABLE"
	codeInternal               = "INTERNAL"
)

type errorResponse struct {
	Error  string              `json:"error"`
	Code   string              `json:"code"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

// writeDomainError maps a service error onto an HTTP status. Anything that is
// not a known domain kind is logged and hidden behind a generic message.
func writeDomainError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  verr.Error(),
			Code:   codeValidation,
			Fields: verr.Errors,
		})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidation, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "authentication required")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, codeAlreadyExists, "already exists")
	case errors.Is(err, domain.ErrQuestionAnswered):
		writeError(w, http.StatusConflict, codeConflict, "question already answered")
	case errors.Is(err, domain.ErrQuestionNotOwned):
		writeError(w, http.StatusConflict, codeConflict, "question belongs to another user")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, codeConflict, "conflict")
	case errors.Is(err, domain.ErrInsufficientData):
		writeError(w, http.StatusUnprocessableEntity, codeInsufficientData, "not enough answers yet")
	case errors.Is(err, domain.ErrInsufficientCandidates):
		writeError(w, http.StatusUnprocessableEntity, codeInsufficientCandidates, "not enough words to build a question")
	case errors.Is(err, domain.ErrNoWordsAvailable):
		writeError(w, http.StatusUnprocessableEntity, codeNoWords, "no words available")
	case postgres.IsUnavailable(err):
		log.WarnContext(r.Context(), "database unavailable",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		w.Header().Set("Retry-After", "5")
		writeError(w, http.StatusServiceUnavailable, codeUnavailable, "service temporarily unavailable")
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, codeInternal, "operation failed")
	}
}

// decodeJSON reads a single JSON object from the body, rejecting unknown
// fields and trailing data.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, codeBadRequest, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body")
		return false
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body")
		return false
	}
	return true
}
