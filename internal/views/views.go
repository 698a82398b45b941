// Package views builds the catalogue of read-only views offered for a loaded
// table. Each view pairs a computation with the pandas snippet that
// reproduces it; per-column views are produced by iterating the table's
// columns, so the catalogue always reflects the columns that exist.
package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JonMunkholm/explore/internal/dataset"
	"github.com/JonMunkholm/explore/internal/snippet"
)

// Section groups views under one toggle.
type Section string

const (
	Insights      Section = "insights"
	Statistics    Section = "statistics"
	Visualization Section = "visualization"
)

// SectionInfo describes a section toggle and its heading.
type SectionInfo struct {
	ID    Section
	Label string
	Title string
}

// Sections lists the toggles in page order.
func Sections() []SectionInfo {
	return []SectionInfo{
		{ID: Insights, Label: "Show Basic Insights💡", Title: "Basic Insights💡"},
		{ID: Statistics, Label: "Show Statistics🔍", Title: "STATISTICS🔍"},
		{ID: Visualization, Label: "Show Visualization📊", Title: "VISUALIZATION📊"},
	}
}

// ParseSection returns the section with the given id.
func ParseSection(id string) (Section, bool) {
	for _, s := range Sections() {
		if string(s.ID) == id {
			return s.ID, true
		}
	}
	return "", false
}

// ErrNoColumns is returned by describe over a table without columns.
var ErrNoColumns = errors.New("cannot describe a DataFrame without columns")

// View is one checkbox of the explore page.
type View struct {
	ID        string
	Section   Section
	Label     string
	CodeLabel string
	Code      string

	run func(*dataset.Table) (Result, error)
}

// Run computes the view over t.
func (v View) Run(t *dataset.Table) (Result, error) {
	res, err := v.run(t)
	if err != nil {
		return Result{}, fmt.Errorf("view %s: %w", v.ID, err)
	}
	return res, nil
}

// Catalog lists the views available for t in display order.
func Catalog(t *dataset.Table) []View {
	out := []View{
		{
			ID:        "rows_columns",
			Section:   Insights,
			Label:     "How many rows and columns in the DataSet?",
			CodeLabel: "Show Code for Rows and Columns",
			Code: snippet.Lines(
				`print("Number of rows : ", len(data))`,
				`print("Number Of Columns : ", len(data.columns))`,
			),
			run: rowsColumns,
		},
		{
			ID:        "dimension_shape",
			Section:   Insights,
			Label:     "Display the dimension and Shape of DataSet",
			CodeLabel: "Show Code for Dimension and Shape",
			Code: snippet.Lines(
				`print("Dimension : ", data.ndim)`,
				`print("Shape : ", data.shape)`,
			),
			run: dimensionShape,
		},
		{
			ID:        "column_names",
			Section:   Insights,
			Label:     "List the name of Attributes/columns in dataset",
			CodeLabel: "Show Code for Columns",
			Code: snippet.Lines(
				`print("Columns : ")`,
				`print(pd.DataFrame(data.columns, columns=["Attribute Names"]))`,
			),
			run: columnNames,
		},
		{
			ID:        "non_null_counts",
			Section:   Insights,
			Label:     "Display the count of Non-Null values in dataset",
			CodeLabel: "Show Code for Non-Null Count",
			Code:      `print(data.count())`,
			run:       nonNullCounts,
		},
		{
			ID:        "null_counts",
			Section:   Insights,
			Label:     "Display the count of Null values in dataset",
			CodeLabel: "Show Code for Null Count",
			Code:      `print(data.isna().sum())`,
			run:       nullCounts,
		},
		{
			ID:        "dtypes",
			Section:   Insights,
			Label:     "Display the Data types of each column",
			CodeLabel: "Show Code for Data Types",
			Code:      `print(pd.DataFrame(data.dtypes, columns=["data type"]))`,
			run:       dtypes,
		},
		{
			ID:        "numeric_data",
			Section:   Insights,
			Label:     "Display the Data of Numeric columns",
			CodeLabel: "Show Code for Numeric Data",
			Code: snippet.Lines(
				`num_data = data.select_dtypes(exclude=["object", "bool"])`,
				`print(num_data)`,
			),
			run: func(t *dataset.Table) (Result, error) {
				return Result{Frame: columnsFrame(t.NumericColumns(), t.NumRows())}, nil
			},
		},
		{
			ID:        "object_data",
			Section:   Insights,
			Label:     "Display the Data of Object Columns",
			CodeLabel: "Show Code for Object Data",
			Code: snippet.Lines(
				`obj_data = data.select_dtypes(include="object")`,
				`print(obj_data)`,
			),
			run: func(t *dataset.Table) (Result, error) {
				return Result{Frame: columnsFrame(t.ObjectColumns(), t.NumRows())}, nil
			},
		},
	}

	for _, col := range t.ObjectColumns() {
		out = append(out, uniqueView(col.Name()))
	}
	for _, col := range t.NumericColumns() {
		out = append(out, describeView(col.Name()))
	}
	for _, col := range t.ObjectColumns() {
		out = append(out, modeView(col.Name()))
	}

	return append(out, View{
		ID:        "describe_all",
		Section:   Statistics,
		Label:     "Display the statistics of Numeric data in dataset",
		CodeLabel: "Show Code for Numeric Statistics",
		Code:      `print(data.describe())`,
		run:       describeAll,
	})
}

// Lookup finds a view of t by id.
func Lookup(t *dataset.Table, id string) (View, bool) {
	for _, v := range Catalog(t) {
		if v.ID == id {
			return v, true
		}
	}
	return View{}, false
}

// InSection filters views to one section, keeping order.
func InSection(all []View, s Section) []View {
	var out []View
	for _, v := range all {
		if v.Section == s {
			out = append(out, v)
		}
	}
	return out
}

// ColumnOf returns the column a per-column view id refers to.
func ColumnOf(id string) (string, bool) {
	_, col, ok := strings.Cut(id, ":")
	return col, ok
}

func uniqueView(col string) View {
	return View{
		ID:        "unique:" + col,
		Section:   Insights,
		Label:     fmt.Sprintf("Display the Unique Values of %s Column", snippet.Single(col)),
		CodeLabel: "Show Code for Unique Values of " + col,
		Code:      "print(" + snippet.Column(col) + ".unique())",
		run:       func(t *dataset.Table) (Result, error) { return unique(t, col) },
	}
}

func describeView(col string) View {
	return View{
		ID:        "describe:" + col,
		Section:   Statistics,
		Label:     fmt.Sprintf("Display the Basic Statistics of %s Column", snippet.Single(col)),
		CodeLabel: "Show Code for Statistics of " + col,
		Code:      "print(" + snippet.Column(col) + ".describe())",
		run:       func(t *dataset.Table) (Result, error) { return describeColumn(t, col) },
	}
}

func modeView(col string) View {
	return View{
		ID:        "mode:" + col,
		Section:   Statistics,
		Label:     fmt.Sprintf("Display the Mode of %s Column", snippet.Single(col)),
		CodeLabel: "Show Code for Mode of " + col,
		Code:      "print(" + snippet.Column(col) + ".mode(dropna=False))",
		run:       func(t *dataset.Table) (Result, error) { return mode(t, col) },
	}
}
