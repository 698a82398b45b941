package views

import (
	"strings"
	"unicode/utf8"
)

// Line is one printed label/value pair, as print("label", value) writes it.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Frame is a printed data frame: column headers, a row index and cells.
type Frame struct {
	Columns []string   `json:"columns"`
	Index   []string   `json:"index"`
	Rows    [][]string `json:"rows"`
}

// Series is a printed pandas series with its footer.
type Series struct {
	Index  []string `json:"index"`
	Values []string `json:"values"`
	Name   string   `json:"name,omitempty"`
	Dtype  string   `json:"dtype,omitempty"`
}

// Result is the output of one view. Any combination of parts may be set and
// they are displayed in field order.
type Result struct {
	Lines  []Line   `json:"lines,omitempty"`
	Frame  *Frame   `json:"frame,omitempty"`
	Series *Series  `json:"series,omitempty"`
	Values []string `json:"values,omitempty"`
	// Bools marks Values as Python booleans, printed without quotes.
	Bools bool `json:"bools,omitempty"`
}

// Text renders the result the way print() shows it in a terminal.
func (r Result) Text() string {
	var parts []string
	for _, l := range r.Lines {
		parts = append(parts, l.Label+" "+l.Value)
	}
	if r.Frame != nil {
		parts = append(parts, r.Frame.Text())
	}
	if r.Series != nil {
		parts = append(parts, r.Series.Text())
	}
	if r.Values != nil {
		parts = append(parts, valuesText(r.Values, !r.Bools))
	}
	return strings.Join(parts, "\n")
}

// Text renders the frame with a left-aligned index and right-aligned cells.
func (f *Frame) Text() string {
	if len(f.Columns) == 0 {
		return "Empty DataFrame\nColumns: []\nIndex: [" + strings.Join(f.Index, ", ") + "]"
	}

	indexWidth := maxWidth(f.Index)
	widths := make([]int, len(f.Columns))
	for j, c := range f.Columns {
		widths[j] = width(c)
		for _, row := range f.Rows {
			if j < len(row) && width(row[j]) > widths[j] {
				widths[j] = width(row[j])
			}
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", indexWidth))
	for j, c := range f.Columns {
		b.WriteString("  ")
		b.WriteString(padLeft(c, widths[j]))
	}
	for i, row := range f.Rows {
		b.WriteByte('\n')
		idx := ""
		if i < len(f.Index) {
			idx = f.Index[i]
		}
		b.WriteString(padRight(idx, indexWidth))
		for j := range f.Columns {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			b.WriteString("  ")
			b.WriteString(padLeft(cell, widths[j]))
		}
	}
	return b.String()
}

// Text renders the series followed by its Name/dtype footer.
func (s *Series) Text() string {
	indexWidth := maxWidth(s.Index)
	valueWidth := maxWidth(s.Values)

	var b strings.Builder
	for i, v := range s.Values {
		idx := ""
		if i < len(s.Index) {
			idx = s.Index[i]
		}
		b.WriteString(padRight(idx, indexWidth))
		b.WriteString("    ")
		b.WriteString(padLeft(v, valueWidth))
		b.WriteByte('\n')
	}
	if len(s.Values) == 0 {
		b.WriteString("Series([], ")
		if s.Name != "" {
			b.WriteString("Name: " + s.Name + ", ")
		}
		b.WriteString("dtype: " + s.Dtype + ")")
		return b.String()
	}
	if s.Name != "" {
		b.WriteString("Name: " + s.Name + ", ")
	}
	b.WriteString("dtype: " + s.Dtype)
	return b.String()
}

// valuesText renders an object array the way numpy prints it. Strings are
// quoted, bools and nan are not.
func valuesText(values []string, quote bool) string {
	parts := make([]string, len(values))
	for i, v := range values {
		switch {
		case v == nullText:
			parts[i] = "nan"
		case quote:
			parts[i] = "'" + v + "'"
		default:
			parts[i] = v
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func width(s string) int { return utf8.RuneCountInString(s) }

func maxWidth(ss []string) int {
	w := 0
	for _, s := range ss {
		if n := width(s); n > w {
			w = n
		}
	}
	return w
}

func padLeft(s string, w int) string {
	if n := width(s); n < w {
		return strings.Repeat(" ", w-n) + s
	}
	return s
}

func padRight(s string, w int) string {
	if n := width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
