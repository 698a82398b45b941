// Package snippet builds the Python source shown next to each view so the
// user can reproduce it with pandas and seaborn.
package snippet

import (
	"strconv"
	"strings"
)

// Single quotes s as a single-quoted Python string literal.
func Single(s string) string { return quote(s, '\'') }

// Double quotes s as a double-quoted Python string literal.
func Double(s string) string { return quote(s, '"') }

func quote(s string, q byte) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(q)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case rune(q):
			b.WriteByte('\\')
			b.WriteByte(q)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(q)
	return b.String()
}

// Column returns the expression selecting a column of the data frame,
// for example data['price'].
func Column(name string) string {
	return "data[" + Single(name) + "]"
}

// Arg is one argument of a Python call. An empty Name is positional.
type Arg struct {
	Name  string
	Value string
}

// Call is a Python function call.
type Call struct {
	Func string
	Args []Arg
}

// Has reports whether the call passes the keyword arg name.
func (c Call) Has(name string) bool {
	for _, a := range c.Args {
		if a.Name == name {
			return true
		}
	}
	return false
}

// String renders the call as Python source.
func (c Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		if a.Name == "" {
			parts[i] = a.Value
			continue
		}
		parts[i] = a.Name + "=" + a.Value
	}
	return c.Func + "(" + strings.Join(parts, ", ") + ")"
}

// Number renders a float the way it would be typed in Python source.
func Number(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Lines joins statements into a multi-line snippet.
func Lines(stmts ...string) string {
	return strings.Join(stmts, "\n")
}
