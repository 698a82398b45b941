package dataset

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// readXLSX parses the first sheet of an Office Open XML workbook.
func readXLSX(name string, data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	sheet := sheets[0]
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	shown, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	for i, row := range rows {
		for j, raw := range row {
			if i >= len(shown) || j >= len(shown[i]) || shown[i][j] == raw {
				continue
			}
			if keepFormatted(f, sheet, j, i) {
				row[j] = shown[i][j]
			}
		}
	}
	return tableFromRows(name, rows)
}

// keepFormatted reports whether the cell at (col, row) should be read as
// displayed rather than raw: booleans (raw 1/0) and dates (raw serial
// numbers). Every other number is read raw so "1,234" or "12.50%" formats
// do not turn numeric columns into text.
func keepFormatted(f *excelize.File, sheet string, col, row int) bool {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return false
	}
	typ, err := f.GetCellType(sheet, cell)
	if err != nil {
		return false
	}
	switch typ {
	case excelize.CellTypeBool, excelize.CellTypeDate:
		return true
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		idx, err := f.GetCellStyle(sheet, cell)
		if err != nil || idx == 0 {
			return false
		}
		style, err := f.GetStyle(idx)
		if err != nil {
			return false
		}
		return isDateFormat(style)
	}
	return false
}

// isDateFormat reports whether a number format displays a date or time:
// one of the built-in date ids, or a custom code with date or time tokens
// outside quoted text and [bracketed] sections.
func isDateFormat(style *excelize.Style) bool {
	switch id := style.NumFmt; {
	case id >= 14 && id <= 22, id >= 27 && id <= 36, id >= 45 && id <= 47, id >= 50 && id <= 58:
		return true
	}
	if style.CustomNumFmt == nil {
		return false
	}

	var b strings.Builder
	quoted, bracket := false, false
	for _, r := range strings.ToLower(*style.CustomNumFmt) {
		switch {
		case r == '"':
			quoted = !quoted
		case quoted:
		case r == '[':
			bracket = true
		case r == ']':
			bracket = false
		case !bracket:
			b.WriteRune(r)
		}
	}
	code := b.String()
	if code == "general" {
		return false
	}
	return strings.ContainsAny(code, "ymdhs")
}

// tableFromRows builds a table from spreadsheet rows, header first.
// Empty rows are skipped, so the first non-empty row is the header; rows
// wider than the header widen the header with blank names.
func tableFromRows(name string, rows [][]string) (*Table, error) {
	for len(rows) > 0 && isBlankRow(rows[0]) {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no columns to parse from file")
	}

	header := append([]string(nil), rows[0]...)
	var records [][]string
	for _, rec := range rows[1:] {
		if isBlankRow(rec) {
			continue
		}
		for len(rec) > len(header) {
			header = append(header, "")
		}
		records = append(records, rec)
	}
	return NewTable(name, header, records)
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
