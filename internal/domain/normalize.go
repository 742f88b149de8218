package domain

import (
	"strings"
	"unicode"
)

// CleanJapanese prepares kanji or kana text for storage: ASCII letters,
// ASCII digits and all whitespace are removed. Everything else, including
// full-width characters and punctuation, is kept.
func CleanJapanese(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
