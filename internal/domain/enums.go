package domain

import "strings"

// WordClass is the grammatical class of a Japanese word.
type WordClass string

const (
	WordClassGodanVerb     WordClass = "GODAN_VERB"
	WordClassIAdjective    WordClass = "I_ADJECTIVE"
	WordClassIrregularVerb WordClass = "IRREGULAR_VERB"
	WordClassIchidanVerb   WordClass = "ICHIDAN_VERB"
	WordClassNaAdjective   WordClass = "NA_ADJECTIVE"
	WordClassTransitive    WordClass = "TRANSITIVE"
	WordClassPronoun       WordClass = "PRONOUN"
	WordClassAdverb        WordClass = "ADVERB"
	WordClassParticle      WordClass = "PARTICLE"
	WordClassNoun          WordClass = "NOUN"
	WordClassExpression    WordClass = "EXPRESSION"
	WordClassSuffix        WordClass = "SUFFIX"
	WordClassConjunction   WordClass = "CONJUNCTION"
	WordClassIntransitive  WordClass = "INTRANSITIVE"
	WordClassAuxiliaryVerb WordClass = "AUXILIARY_VERB"
	WordClassInterjection  WordClass = "INTERJECTION"
	WordClassAdnominal     WordClass = "ADNOMINAL"
	WordClassCollocation   WordClass = "COLLOCATION"
	WordClassCounter       WordClass = "COUNTER"
)

// wordClassInfo holds the display label and the textbook label used by
// imported word lists.
var wordClassInfo = map[WordClass]struct {
	label    string
	textbook string
}{
	WordClassGodanVerb:     {"godan verb", "一类动词"},
	WordClassIAdjective:    {"i-adjective", "一类形容词"},
	WordClassIrregularVerb: {"irregular verb", "三类动词"},
	WordClassIchidanVerb:   {"ichidan verb", "二类动词"},
	WordClassNaAdjective:   {"na-adjective", "二类形容词"},
	WordClassTransitive:    {"transitive", "他动词"},
	WordClassPronoun:       {"pronoun", "代词"},
	WordClassAdverb:        {"adverb", "副词"},
	WordClassParticle:      {"particle", "助词"},
	WordClassNoun:          {"noun", "名词"},
	WordClassExpression:    {"expression", "常用语"},
	WordClassSuffix:        {"suffix", "接尾词"},
	WordClassConjunction:   {"conjunction", "接续词"},
	WordClassIntransitive:  {"intransitive", "自动词"},
	WordClassAuxiliaryVerb: {"auxiliary verb", "补助动词"},
	WordClassInterjection:  {"interjection", "语气词"},
	WordClassAdnominal:     {"adnominal", "连体词"},
	WordClassCollocation:   {"collocation", "连语"},
	WordClassCounter:       {"counter", "量词"},
}

func (c WordClass) String() string { return string(c) }

func (c WordClass) IsValid() bool {
	_, ok := wordClassInfo[c]
	return ok
}

// Label returns the human-readable name of the class.
func (c WordClass) Label() string {
	if info, ok := wordClassInfo[c]; ok {
		return info.label
	}
	return string(c)
}

// ParseWordClass accepts either the enum code (case-insensitive) or the
// textbook label found in imported word lists.
func ParseWordClass(s string) (WordClass, bool) {
	s = strings.TrimSpace(s)
	if c := WordClass(strings.ToUpper(s)); c.IsValid() {
		return c, true
	}
	for c, info := range wordClassInfo {
		if info.textbook == s || strings.EqualFold(info.label, s) {
			return c, true
		}
	}
	return "", false
}

// QuestionType identifies a question generator variant.
type QuestionType string

const (
	// QuestionTypeKana asks for the reading of a word among similar readings.
	QuestionTypeKana QuestionType = "KANA"
)

func (t QuestionType) String() string { return string(t) }

func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeKana:
		return true
	}
	return false
}
