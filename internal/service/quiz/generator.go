package quiz

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"github.com/heartmarshall/kotoba-backend/internal/service/quiz/scoring"
)

// DefaultNumOptions is the number of options on a generated question.
const DefaultNumOptions = 6

// QuestionDraft is a generated question not yet bound to a user.
type QuestionDraft struct {
	WordID        uuid.UUID
	Type          domain.QuestionType
	Payload       string // JSON array of option strings
	CorrectAnswer string // index of the correct option
}

// Generator builds one kind of question for a target word.
type Generator interface {
	Type() domain.QuestionType
	Generate(rnd Rand, target domain.Word, pool []domain.Word) (QuestionDraft, error)
}

// Registry is the set of generators the scheduler picks from.
type Registry struct {
	generators []Generator
}

// NewRegistry returns a registry holding gens in order.
func NewRegistry(gens ...Generator) *Registry {
	return &Registry{generators: slices.Clone(gens)}
}

// Len returns the number of registered generators.
func (r *Registry) Len() int {
	return len(r.generators)
}

// Pick returns a uniformly chosen generator.
func (r *Registry) Pick(rnd Rand) Generator {
	if len(r.generators) == 1 {
		return r.generators[0]
	}
	return r.generators[rnd.IntN(len(r.generators))]
}

// ---------------------------------------------------------------------------
// Kana recognition
// ---------------------------------------------------------------------------

// KanaGenerator asks for the reading of a word. Distractors are sampled from
// the readings most similar to the correct one.
type KanaGenerator struct {
	numOptions int
}

// NewKanaGenerator returns a generator producing numOptions options.
// Values below 2 fall back to DefaultNumOptions.
func NewKanaGenerator(numOptions int) *KanaGenerator {
	if numOptions < 2 {
		numOptions = DefaultNumOptions
	}
	return &KanaGenerator{numOptions: numOptions}
}

func (g *KanaGenerator) Type() domain.QuestionType {
	return domain.QuestionTypeKana
}

type rankedReading struct {
	reading string
	lcs     int
}

// Generate builds a kana question for target using pool as the distractor
// source. It fails with domain.ErrInsufficientCandidates when the pool has
// fewer distinct other readings than needed.
func (g *KanaGenerator) Generate(rnd Rand, target domain.Word, pool []domain.Word) (QuestionDraft, error) {
	need := g.numOptions - 1

	ranked := rankReadings(target.Kana, pool)
	if len(ranked) < need {
		return QuestionDraft{}, fmt.Errorf("kana question for %q: %d distractors available, %d needed: %w",
			target.Kana, len(ranked), need, domain.ErrInsufficientCandidates)
	}

	shortlist := ranked[:min(len(ranked), 2*need)]
	options := make([]string, 0, g.numOptions)
	for _, i := range sampleIndexes(rnd, len(shortlist), need) {
		options = append(options, shortlist[i].reading)
	}
	options = append(options, target.Kana)
	rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correct := slices.Index(options, target.Kana)
	payload, err := json.Marshal(options)
	if err != nil {
		return QuestionDraft{}, fmt.Errorf("encode options: %w", err)
	}

	return QuestionDraft{
		WordID:        target.ID,
		Type:          domain.QuestionTypeKana,
		Payload:       string(payload),
		CorrectAnswer: strconv.Itoa(correct),
	}, nil
}

// rankReadings returns the distinct pool readings other than target, most
// similar first with a lexical tie-break.
func rankReadings(target string, pool []domain.Word) []rankedReading {
	seen := make(map[string]struct{}, len(pool))
	ranked := make([]rankedReading, 0, len(pool))
	for _, w := range pool {
		if w.Kana == target || w.Kana == "" {
			continue
		}
		if _, dup := seen[w.Kana]; dup {
			continue
		}
		seen[w.Kana] = struct{}{}
		ranked = append(ranked, rankedReading{reading: w.Kana, lcs: scoring.LCSLength(target, w.Kana)})
	}

	slices.SortFunc(ranked, func(a, b rankedReading) int {
		if a.lcs != b.lcs {
			return b.lcs - a.lcs
		}
		return strings.Compare(a.reading, b.reading)
	})
	return ranked
}

// sampleIndexes picks k distinct indexes from [0, n) uniformly.
// Partial Fisher-Yates over an index slice.
func sampleIndexes(rnd Rand, n, k int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rnd.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

// DecodeOptions returns the option list stored in a question payload.
func DecodeOptions(payload string) ([]string, error) {
	var options []string
	if err := json.Unmarshal([]byte(payload), &options); err != nil {
		return nil, fmt.Errorf("decode question options: %w", err)
	}
	return options, nil
}
