package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"github.com/heartmarshall/kotoba-backend/internal/service/dictionary"
)

type dictionaryService interface {
	CreateWord(ctx context.Context, input dictionary.CreateWordInput) (*domain.WordDetails, error)
	SearchWords(ctx context.Context, input dictionary.SearchWordsInput) ([]domain.Word, error)
	GetWord(ctx context.Context, wordID uuid.UUID) (*domain.WordDetails, error)
}

// WordHandler serves the /api/words endpoints.
type WordHandler struct {
	svc dictionaryService
	log *slog.Logger
}

func NewWordHandler(svc dictionaryService, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, log: logger.With("handler", "words")}
}

type createWordRequest struct {
	Kanji    string           `json:"kanji"`
	Kana     string           `json:"kana"`
	Classes  []string         `json:"classes"`
	Meanings []meaningRequest `json:"meanings"`
}

type meaningRequest struct {
	Text     string   `json:"text"`
	Examples []string `json:"examples"`
}

type wordResponse struct {
	ID        string    `json:"id"`
	Kanji     string    `json:"kanji"`
	Kana      string    `json:"kana"`
	CreatedAt time.Time `json:"createdAt"`
}

type wordDetailsResponse struct {
	wordResponse
	Classes  []classResponse   `json:"classes"`
	Meanings []meaningResponse `json:"meanings"`
}

type classResponse struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type meaningResponse struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Examples []string `json:"examples"`
}

// Create handles POST /api/words.
func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createWordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	details, err := h.svc.CreateWord(r.Context(), req.toInput())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWordDetailsResponse(details))
}

// Search handles GET /api/words?q=&limit=.
func (h *WordHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := dictionary.SearchWordsInput{Query: q.Get("q")}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeDomainError(w, r, h.log, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		input.Limit = n
	}

	words, err := h.svc.SearchWords(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := make([]wordResponse, len(words))
	for i, word := range words {
		resp[i] = toWordResponse(word)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/words/{id}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, h.log, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	details, err := h.svc.GetWord(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toWordDetailsResponse(details))
}

// toInput keeps unrecognised class names verbatim so validation can name them.
func (req createWordRequest) toInput() dictionary.CreateWordInput {
	input := dictionary.CreateWordInput{
		Kanji:    req.Kanji,
		Kana:     req.Kana,
		Classes:  make([]domain.WordClass, 0, len(req.Classes)),
		Meanings: make([]dictionary.MeaningInput, 0, len(req.Meanings)),
	}
	for _, raw := range req.Classes {
		c, ok := domain.ParseWordClass(raw)
		if !ok {
			c = domain.WordClass(raw)
		}
		input.Classes = append(input.Classes, c)
	}
	for _, m := range req.Meanings {
		input.Meanings = append(input.Meanings, dictionary.MeaningInput{Text: m.Text, Examples: m.Examples})
	}
	return input
}

func toWordResponse(w domain.Word) wordResponse {
	return wordResponse{
		ID:        w.ID.String(),
		Kanji:     w.Kanji,
		Kana:      w.Kana,
		CreatedAt: w.CreatedAt,
	}
}

func toWordDetailsResponse(d *domain.WordDetails) wordDetailsResponse {
	resp := wordDetailsResponse{
		wordResponse: toWordResponse(d.Word),
		Classes:      make([]classResponse, len(d.Classes)),
		Meanings:     make([]meaningResponse, len(d.Meanings)),
	}
	for i, c := range d.Classes {
		resp.Classes[i] = classResponse{Code: c.String(), Label: c.Label()}
	}
	for i, m := range d.Meanings {
		examples := make([]string, len(m.Examples))
		for j, ex := range m.Examples {
			examples[j] = ex.Text
		}
		resp.Meanings[i] = meaningResponse{ID: m.ID.String(), Text: m.Text, Examples: examples}
	}
	return resp
}
