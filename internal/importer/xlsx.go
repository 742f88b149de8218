package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/kotoba-backend/internal/service/dictionary"
)

// SheetConfig selects where word rows live in a workbook.
type SheetConfig struct {
	SheetName      string // empty selects the first sheet
	KanjiColumn    string
	KanaColumn     string
	ClassesColumn  string
	MeaningsColumn string
	StartRow       int // 1-based
}

// DefaultSheetConfig reads columns A to D of the first sheet from row 2.
func DefaultSheetConfig() SheetConfig {
	return SheetConfig{
		KanjiColumn:    "A",
		KanaColumn:     "B",
		ClassesColumn:  "C",
		MeaningsColumn: "D",
		StartRow:       2,
	}
}

// ParseXLSX reads word rows from a workbook. Rows with an empty kanji and
// kana cell are skipped.
func ParseXLSX(r io.Reader, cfg SheetConfig) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := cfg.SheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	cols := [componentCount]int{}
	for i, name := range []string{cfg.KanjiColumn, cfg.KanaColumn, cfg.ClassesColumn, cfg.MeaningsColumn} {
		n, err := excelize.ColumnNameToNumber(name)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		cols[i] = n - 1
	}

	result := &Result{}
	for i, row := range rows {
		line := i + 1
		if line < cfg.StartRow {
			continue
		}

		var cells [componentCount]string
		for c, idx := range cols {
			if idx < len(row) {
				cells[c] = row[idx]
			}
		}
		if strings.TrimSpace(cells[0]) == "" && strings.TrimSpace(cells[1]) == "" {
			continue
		}

		input, err := ParseRecord(cells[0], cells[1], cells[2], cells[3])
		if err != nil {
			result.reject(line, "%v", err)
			continue
		}
		result.Items = append(result.Items, dictionary.ImportItem{LineNumber: line, Input: input})
	}
	return result, nil
}
