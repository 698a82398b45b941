package views

import (
	"fmt"
	"math"
	"strconv"

	"github.com/JonMunkholm/explore/internal/dataset"
	"github.com/JonMunkholm/explore/internal/stats"
)

// nullText is how a missing value prints in results.
const nullText = "NaN"

var describeIndex = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

func rowsColumns(t *dataset.Table) (Result, error) {
	rows, cols := t.Shape()
	return Result{Lines: []Line{
		{Label: "Number of rows : ", Value: strconv.Itoa(rows)},
		{Label: "Number Of Columns : ", Value: strconv.Itoa(cols)},
	}}, nil
}

func dimensionShape(t *dataset.Table) (Result, error) {
	rows, cols := t.Shape()
	return Result{Lines: []Line{
		{Label: "Dimension : ", Value: "2"},
		{Label: "Shape : ", Value: fmt.Sprintf("(%d, %d)", rows, cols)},
	}}, nil
}

func columnNames(t *dataset.Table) (Result, error) {
	names := t.ColumnNames()
	rows := make([][]string, len(names))
	for i, n := range names {
		rows[i] = []string{n}
	}
	return Result{
		Lines: []Line{{Label: "Columns : "}},
		Frame: &Frame{Columns: []string{"Attribute Names"}, Index: rangeIndex(len(names)), Rows: rows},
	}, nil
}

func nonNullCounts(t *dataset.Table) (Result, error) {
	return Result{Series: countSeries(t, (*dataset.Column).Count)}, nil
}

func nullCounts(t *dataset.Table) (Result, error) {
	return Result{Series: countSeries(t, (*dataset.Column).NullCount)}, nil
}

func countSeries(t *dataset.Table, count func(*dataset.Column) int) *Series {
	cols := t.Columns()
	s := &Series{Index: make([]string, len(cols)), Values: make([]string, len(cols)), Dtype: "int64"}
	for i, c := range cols {
		s.Index[i] = c.Name()
		s.Values[i] = strconv.Itoa(count(c))
	}
	return s
}

func dtypes(t *dataset.Table) (Result, error) {
	cols := t.Columns()
	f := &Frame{Columns: []string{"data type"}, Index: make([]string, len(cols)), Rows: make([][]string, len(cols))}
	for i, c := range cols {
		f.Index[i] = c.Name()
		f.Rows[i] = []string{c.Kind().Dtype()}
	}
	return Result{Frame: f}, nil
}

// columnsFrame prints the first rows of the given columns.
func columnsFrame(cols []*dataset.Column, rows int) *Frame {
	f := &Frame{Columns: make([]string, len(cols)), Index: rangeIndex(rows), Rows: make([][]string, rows)}
	for j, c := range cols {
		f.Columns[j] = c.Name()
	}
	for i := 0; i < rows; i++ {
		row := make([]string, len(cols))
		for j, c := range cols {
			row[j] = c.Cell(i).String()
		}
		f.Rows[i] = row
	}
	return f
}

// Preview returns the first maxRows rows of every column; maxRows <= 0
// means all rows.
func Preview(t *dataset.Table, maxRows int) *Frame {
	rows := t.NumRows()
	if maxRows > 0 && maxRows < rows {
		rows = maxRows
	}
	return columnsFrame(t.Columns(), rows)
}

func unique(t *dataset.Table, name string) (Result, error) {
	col, err := column(t, name)
	if err != nil {
		return Result{}, err
	}
	uniq := stats.Unique(cellValues(col))
	out := make([]string, len(uniq))
	for i, v := range uniq {
		out[i] = valueText(v)
	}
	return Result{Values: out, Bools: col.Boolean()}, nil
}

func mode(t *dataset.Table, name string) (Result, error) {
	col, err := column(t, name)
	if err != nil {
		return Result{}, err
	}
	modes := stats.Mode(cellValues(col))
	s := &Series{Index: rangeIndex(len(modes)), Values: make([]string, len(modes)), Name: name, Dtype: col.Kind().Dtype()}
	for i, v := range modes {
		s.Values[i] = valueText(v)
	}
	return Result{Series: s}, nil
}

func describeColumn(t *dataset.Table, name string) (Result, error) {
	col, err := column(t, name)
	if err != nil {
		return Result{}, err
	}
	if !col.Kind().IsNumeric() {
		return Result{}, fmt.Errorf("column %q is not numeric", name)
	}
	return Result{Series: &Series{
		Index:  describeIndex,
		Values: formatColumn(summaryValues(stats.Describe(col.Floats()))),
		Name:   name,
		Dtype:  "float64",
	}}, nil
}

// describeAll summarises numeric columns, or every column by count, unique,
// top and freq when there are none.
func describeAll(t *dataset.Table) (Result, error) {
	if t.NumCols() == 0 {
		return Result{}, ErrNoColumns
	}

	numeric := t.NumericColumns()
	if len(numeric) > 0 {
		f := &Frame{Columns: make([]string, len(numeric)), Index: describeIndex, Rows: make([][]string, len(describeIndex))}
		for i := range f.Rows {
			f.Rows[i] = make([]string, len(numeric))
		}
		for j, c := range numeric {
			f.Columns[j] = c.Name()
			for i, v := range formatColumn(summaryValues(stats.Describe(c.Floats()))) {
				f.Rows[i][j] = v
			}
		}
		return Result{Frame: f}, nil
	}

	cols := t.Columns()
	f := &Frame{
		Columns: make([]string, len(cols)),
		Index:   []string{"count", "unique", "top", "freq"},
		Rows:    make([][]string, 4),
	}
	for i := range f.Rows {
		f.Rows[i] = make([]string, len(cols))
	}
	for j, c := range cols {
		f.Columns[j] = c.Name()
		values := cellValues(c)
		f.Rows[0][j] = strconv.Itoa(c.Count())
		f.Rows[1][j] = strconv.Itoa(stats.CountDistinct(values))
		if top, freq, ok := stats.Top(values); ok {
			f.Rows[2][j] = top.Text
			f.Rows[3][j] = strconv.Itoa(freq)
		} else {
			f.Rows[2][j] = nullText
			f.Rows[3][j] = nullText
		}
	}
	return Result{Frame: f}, nil
}

func column(t *dataset.Table, name string) (*dataset.Column, error) {
	col, ok := t.Column(name)
	if !ok {
		return nil, fmt.Errorf("no column named %q", name)
	}
	return col, nil
}

func cellValues(col *dataset.Column) []stats.Value {
	out := make([]stats.Value, col.Len())
	for i := range out {
		c := col.Cell(i)
		out[i] = stats.Value{Text: c.Text, Null: c.Null}
	}
	return out
}

func valueText(v stats.Value) string {
	if v.Null {
		return nullText
	}
	return v.Text
}

func summaryValues(s stats.Summary) []float64 {
	return []float64{float64(s.Count), s.Mean, s.Std, s.Min, s.Q25, s.Q50, s.Q75, s.Max}
}

// formatColumn prints floats with a shared precision as pandas does: one
// decimal when every finite value is integral, six otherwise.
func formatColumn(values []float64) []string {
	integral := true
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) && v != math.Trunc(v) {
			integral = false
			break
		}
	}

	out := make([]string, len(values))
	for i, v := range values {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			out[i] = dataset.FormatFloat(v)
		case integral:
			out[i] = strconv.FormatFloat(v, 'f', 1, 64)
		default:
			out[i] = strconv.FormatFloat(v, 'f', 6, 64)
		}
	}
	return out
}

func rangeIndex(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}
