package scoring

import "math"

// Coefficient is the unfamiliarity coefficient K. One answer moves the score
// by 1/K and decay slows down by K extra correct answers.
const Coefficient = 8

const (
	// MaxUnfamiliarity is the score of a word that was never learned.
	MaxUnfamiliarity = 1.0
	// MinUnfamiliarity is the score of a fully familiar word.
	MinUnfamiliarity = 0.0
)

// Decay returns prior grown by days of elapsed time. Growth slows with the
// number of correct answers. Negative days count as zero.
func Decay(days int, prior float64, correct int) float64 {
	if days < 0 {
		days = 0
	}
	if correct < 0 {
		correct = 0
	}
	return Bound(prior + float64(days)/float64(5*(correct+Coefficient)))
}

// ApplyAnswer moves prior by 1/K: down on a correct answer, up otherwise.
func ApplyAnswer(prior float64, correct bool) float64 {
	step := 1.0 / Coefficient
	if correct {
		return Bound(prior - step)
	}
	return Bound(prior + step)
}

// Bound clamps v to [0, 1]. NaN is treated as maximally unfamiliar.
func Bound(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return MaxUnfamiliarity
	case v < MinUnfamiliarity:
		return MinUnfamiliarity
	case v > MaxUnfamiliarity:
		return MaxUnfamiliarity
	default:
		return v
	}
}
