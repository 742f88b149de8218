// Package importer reads word lists into dictionary import items.
//
// Two formats are supported. The text format holds one word per line:
//
//	kanji||kana||classes||meanings
//
// where classes are separated by "," or "，" and meanings by "#"; each
// meaning is "text*example*example...". The xlsx format holds the same four
// components in columns A to D of the first sheet, below a header row.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"github.com/heartmarshall/kotoba-backend/internal/service/dictionary"
)

const (
	componentSeparator = "||"
	meaningSeparator   = "#"
	exampleSeparator   = "*"
	componentCount     = 4
)

// LineError reports a line that could not be parsed.
type LineError struct {
	Line   int
	Reason string
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Result holds the parsed items and the lines that were rejected.
type Result struct {
	Items  []dictionary.ImportItem
	Errors []LineError
}

func (r *Result) reject(line int, format string, args ...any) {
	r.Errors = append(r.Errors, LineError{Line: line, Reason: fmt.Sprintf(format, args...)})
}

// ParseFile parses path, choosing the format from its extension.
func ParseFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ParseXLSX(f, DefaultSheetConfig())
	default:
		return ParseText(f)
	}
}

// ParseRecord converts the four components of one word into a create input.
// Unknown word classes reject the record.
func ParseRecord(kanji, kana, classes, meanings string) (dictionary.CreateWordInput, error) {
	input := dictionary.CreateWordInput{
		Kanji: strings.TrimSpace(kanji),
		Kana:  strings.TrimSpace(kana),
	}

	for _, name := range splitClasses(classes) {
		c, ok := domain.ParseWordClass(name)
		if !ok {
			return dictionary.CreateWordInput{}, fmt.Errorf("unknown word class %q", name)
		}
		input.Classes = append(input.Classes, c)
	}

	for _, m := range strings.Split(meanings, meaningSeparator) {
		if strings.TrimSpace(m) == "" {
			continue
		}
		items := strings.Split(m, exampleSeparator)
		mi := dictionary.MeaningInput{Text: strings.TrimSpace(items[0])}
		for _, ex := range items[1:] {
			if ex = strings.TrimSpace(ex); ex != "" {
				mi.Examples = append(mi.Examples, ex)
			}
		}
		input.Meanings = append(input.Meanings, mi)
	}
	return input, nil
}

func splitClasses(s string) []string {
	s = strings.ReplaceAll(s, "，", ",")
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
