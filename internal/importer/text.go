package importer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/kotoba-backend/internal/service/dictionary"
)

const maxLineBytes = 1 << 20

// ParseText reads the "||" separated word list format. Blank lines are
// skipped; malformed lines are reported with their 1-based line number.
func ParseText(r io.Reader) (*Result, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	result := &Result{}
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if line == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		parts := strings.Split(text, componentSeparator)
		if len(parts) != componentCount {
			result.reject(line, "expected %d components separated by %q, got %d", componentCount, componentSeparator, len(parts))
			continue
		}

		input, err := ParseRecord(parts[0], parts[1], parts[2], parts[3])
		if err != nil {
			result.reject(line, "%v", err)
			continue
		}
		result.Items = append(result.Items, dictionary.ImportItem{LineNumber: line, Input: input})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return result, nil
}
