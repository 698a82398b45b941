// Package dataset turns uploaded spreadsheets into typed, read-only tables.
//
// A [Table] is built once by [Ingest] (or [NewTable]) and never mutated
// afterwards: its column count and row count are fixed, and every accessor
// hands out copies. Views over a table are computed by other packages from
// these accessors.
package dataset

import (
	"fmt"
	"strconv"
)

// Kind is the inferred dtype of a column.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindObject
)

// Dtype returns the pandas dtype name for the kind.
func (k Kind) Dtype() string {
	switch k {
	case KindInt:
		return "int64"
	case KindFloat:
		return "float64"
	case KindBool:
		return "bool"
	default:
		return "object"
	}
}

// IsNumeric reports whether the kind survives select_dtypes(exclude=["object", "bool"]).
func (k Kind) IsNumeric() bool {
	return k == KindInt || k == KindFloat
}

func (k Kind) String() string {
	return k.Dtype()
}

// Cell is one value of a column.
// Num is set for int and float columns, Bool for bool cells.
// Text is the printed form and is always set for non-null cells.
type Cell struct {
	Text string
	Num  float64
	Bool bool
	Null bool
}

// String returns the printed form, NaN for missing values.
func (c Cell) String() string {
	if c.Null {
		return "NaN"
	}
	return c.Text
}

// Column is a named, typed sequence of cells.
type Column struct {
	name    string
	kind    Kind
	cells   []Cell
	boolish bool
}

// Name returns the column header.
func (c *Column) Name() string { return c.name }

// Kind returns the inferred dtype.
func (c *Column) Kind() Kind { return c.kind }

// Boolean reports whether every non-null cell holds a bool. That is the
// case for bool columns and for object columns of bools with nulls.
func (c *Column) Boolean() bool { return c.kind == KindBool || c.boolish }

// Len returns the number of cells, equal to the table's row count.
func (c *Column) Len() int { return len(c.cells) }

// Cell returns the i-th cell.
func (c *Column) Cell(i int) Cell { return c.cells[i] }

// Cells returns a copy of all cells.
func (c *Column) Cells() []Cell {
	out := make([]Cell, len(c.cells))
	copy(out, c.cells)
	return out
}

// Count returns the number of non-null cells.
func (c *Column) Count() int {
	n := 0
	for _, cell := range c.cells {
		if !cell.Null {
			n++
		}
	}
	return n
}

// NullCount returns the number of null cells.
func (c *Column) NullCount() int {
	return len(c.cells) - c.Count()
}

// Floats returns the non-null numeric values in row order.
// It returns nil for non-numeric columns.
func (c *Column) Floats() []float64 {
	if !c.kind.IsNumeric() {
		return nil
	}
	out := make([]float64, 0, len(c.cells))
	for _, cell := range c.cells {
		if !cell.Null {
			out = append(out, cell.Num)
		}
	}
	return out
}

// Table is an immutable, column-oriented dataset.
type Table struct {
	name    string
	columns []*Column
	rows    int
}

// NewTable builds a table from a header row and data records.
// Records shorter than the header are padded with nulls; longer records are
// rejected. Empty header cells become "Unnamed: <i>" and duplicate names
// are suffixed ".1", ".2", ... in order of appearance.
func NewTable(name string, header []string, records [][]string) (*Table, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("no columns to parse from file")
	}
	names := mangleHeader(header)
	ncol := len(names)

	raw := make([][]string, ncol)
	for j := range raw {
		raw[j] = make([]string, len(records))
	}
	for i, rec := range records {
		if len(rec) > ncol {
			return nil, fmt.Errorf("expected %d fields in line %d, saw %d", ncol, i+2, len(rec))
		}
		for j := 0; j < len(rec); j++ {
			raw[j][i] = rec[j]
		}
	}

	t := &Table{name: name, rows: len(records), columns: make([]*Column, ncol)}
	for j, values := range raw {
		kind, boolish := inferKind(values)
		cells := make([]Cell, len(values))
		for i, s := range values {
			cells[i] = makeCell(s, kind, boolish)
		}
		t.columns[j] = &Column{name: names[j], kind: kind, cells: cells, boolish: boolish}
	}
	return t, nil
}

// mangleHeader names blank headers and de-duplicates repeated ones.
func mangleHeader(header []string) []string {
	names := make([]string, len(header))
	counts := make(map[string]int, len(header))
	for i, h := range header {
		if h == "" {
			h = "Unnamed: " + strconv.Itoa(i)
		}
		n := counts[h]
		for n > 0 {
			counts[h] = n + 1
			h = h + "." + strconv.Itoa(n)
			n = counts[h]
		}
		names[i] = h
		counts[h] = n + 1
	}
	return names
}

// Name returns the source filename.
func (t *Table) Name() string { return t.name }

// NumRows returns the row count.
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the column count.
func (t *Table) NumCols() int { return len(t.columns) }

// Shape returns (rows, columns).
func (t *Table) Shape() (int, int) { return t.rows, len(t.columns) }

// Columns returns the columns in header order.
func (t *Table) Columns() []*Column {
	out := make([]*Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// ColumnNames returns the headers in order.
func (t *Table) ColumnNames() []string {
	out := make([]string, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.name
	}
	return out
}

// Column looks up a column by exact name.
func (t *Table) Column(name string) (*Column, bool) {
	for _, c := range t.columns {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// Select returns the columns whose kind satisfies keep, in header order.
func (t *Table) Select(keep func(Kind) bool) []*Column {
	var out []*Column
	for _, c := range t.columns {
		if keep(c.kind) {
			out = append(out, c)
		}
	}
	return out
}

// NumericColumns returns int and float columns.
func (t *Table) NumericColumns() []*Column {
	return t.Select(Kind.IsNumeric)
}

// ObjectColumns returns object columns.
func (t *Table) ObjectColumns() []*Column {
	return t.Select(func(k Kind) bool { return k == KindObject })
}

// Row returns the printed cells of row i in column order.
func (t *Table) Row(i int) []string {
	out := make([]string, len(t.columns))
	for j, c := range t.columns {
		out[j] = c.cells[i].String()
	}
	return out
}
