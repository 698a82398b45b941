package views

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/JonMunkholm/explore/internal/dataset"
)

func testTable(t *testing.T) *dataset.Table {
	t.Helper()
	table, err := dataset.NewTable("pets.csv",
		[]string{"name", "age", "kind", "weight", "vaccinated"},
		[][]string{
			{"rex", "3", "dog", "12.5", "True"},
			{"tom", "5", "cat", "4", "False"},
			{"", "2", "dog", "", "True"},
			{"rex", "7", "bird", "0.5", "True"},
		})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return table
}

func ids(vs []View) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}
	return out
}

func TestCatalog_Order(t *testing.T) {
	got := ids(Catalog(testTable(t)))
	want := []string{
		"rows_columns", "dimension_shape", "column_names", "non_null_counts",
		"null_counts", "dtypes", "numeric_data", "object_data",
		"unique:name", "unique:kind",
		"describe:age", "describe:weight",
		"mode:name", "mode:kind",
		"describe_all",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Catalog() ids =\n%q\nwant\n%q", got, want)
	}
}

func TestCatalog_Sections(t *testing.T) {
	all := Catalog(testTable(t))
	if n := len(InSection(all, Insights)); n != 10 {
		t.Errorf("insights has %d views, want 10", n)
	}
	if n := len(InSection(all, Statistics)); n != 5 {
		t.Errorf("statistics has %d views, want 5", n)
	}
	if n := len(InSection(all, Visualization)); n != 0 {
		t.Errorf("visualization has %d views, want 0", n)
	}
}

func TestCatalog_ColumnLabelsAndCode(t *testing.T) {
	table, err := dataset.NewTable("x.csv", []string{"owner's pet"}, [][]string{{"a"}})
	if err != nil {
		t.Fatal(err)
	}
	v, ok := Lookup(table, "unique:owner's pet")
	if !ok {
		t.Fatal("unique view missing")
	}
	if v.Label != `Display the Unique Values of 'owner\'s pet' Column` {
		t.Errorf("Label = %s", v.Label)
	}
	if v.Code != `print(data['owner\'s pet'].unique())` {
		t.Errorf("Code = %s", v.Code)
	}
	if v.CodeLabel != "Show Code for Unique Values of owner's pet" {
		t.Errorf("CodeLabel = %s", v.CodeLabel)
	}
}

func run(t *testing.T, table *dataset.Table, id string) Result {
	t.Helper()
	v, ok := Lookup(table, id)
	if !ok {
		t.Fatalf("view %q not in catalogue", id)
	}
	res, err := v.Run(table)
	if err != nil {
		t.Fatalf("Run(%s) error = %v", id, err)
	}
	return res
}

func TestRun_Insights(t *testing.T) {
	table := testTable(t)

	res := run(t, table, "rows_columns")
	if got := res.Text(); got != "Number of rows :  4\nNumber Of Columns :  5" {
		t.Errorf("rows_columns = %q", got)
	}

	res = run(t, table, "dimension_shape")
	if got := res.Lines[1].Value; got != "(4, 5)" {
		t.Errorf("shape = %q", got)
	}

	res = run(t, table, "null_counts")
	if want := []string{"1", "0", "0", "1", "0"}; !reflect.DeepEqual(res.Series.Values, want) {
		t.Errorf("null counts = %v, want %v", res.Series.Values, want)
	}

	res = run(t, table, "dtypes")
	var got []string
	for _, row := range res.Frame.Rows {
		got = append(got, row[0])
	}
	if want := []string{"object", "int64", "object", "float64", "bool"}; !reflect.DeepEqual(got, want) {
		t.Errorf("dtypes = %v, want %v", got, want)
	}

	res = run(t, table, "numeric_data")
	if want := []string{"age", "weight"}; !reflect.DeepEqual(res.Frame.Columns, want) {
		t.Errorf("numeric columns = %v, want %v", res.Frame.Columns, want)
	}
	if got := res.Frame.Rows[2][1]; got != "NaN" {
		t.Errorf("missing weight = %q, want NaN", got)
	}

	res = run(t, table, "object_data")
	if want := []string{"name", "kind"}; !reflect.DeepEqual(res.Frame.Columns, want) {
		t.Errorf("object columns = %v, want %v", res.Frame.Columns, want)
	}

	res = run(t, table, "unique:name")
	if want := []string{"rex", "tom", "NaN"}; !reflect.DeepEqual(res.Values, want) {
		t.Errorf("unique = %v, want %v", res.Values, want)
	}
	if got := res.Text(); got != "['rex' 'tom' nan]" {
		t.Errorf("unique text = %s", got)
	}
}

func TestRun_UniqueBools(t *testing.T) {
	table, err := dataset.NewTable("flags.csv",
		[]string{"paid", "answer"},
		[][]string{
			{"True", "True"},
			{"False", "maybe"},
			{"", "True"},
		})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		id   string
		want string
	}{
		// bools with a null load as object but keep Python bool values
		{"unique:paid", "[True False nan]"},
		// a mixed column holds the string 'True'
		{"unique:answer", "['True' 'maybe']"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := run(t, table, tt.id).Text(); got != tt.want {
				t.Errorf("Text() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRun_Statistics(t *testing.T) {
	table := testTable(t)

	res := run(t, table, "describe:age")
	want := []string{"4.000000", "4.250000", "2.217356", "2.000000", "2.750000", "4.000000", "5.500000", "7.000000"}
	if !reflect.DeepEqual(res.Series.Values, want) {
		t.Errorf("describe age = %v, want %v", res.Series.Values, want)
	}
	if !strings.HasSuffix(res.Text(), "Name: age, dtype: float64") {
		t.Errorf("describe footer missing:\n%s", res.Text())
	}

	res = run(t, table, "mode:kind")
	if want := []string{"dog"}; !reflect.DeepEqual(res.Series.Values, want) {
		t.Errorf("mode kind = %v, want %v", res.Series.Values, want)
	}

	res = run(t, table, "describe_all")
	if want := []string{"age", "weight"}; !reflect.DeepEqual(res.Frame.Columns, want) {
		t.Errorf("describe_all columns = %v", res.Frame.Columns)
	}
	if got := res.Frame.Rows[0][1]; got != "3.000000" {
		t.Errorf("weight count = %q, want 3.000000", got)
	}
}

func TestRun_DescribeAllWithoutNumericColumns(t *testing.T) {
	table, err := dataset.NewTable("x.csv", []string{"city", "open"}, [][]string{
		{"oslo", "True"},
		{"rome", "False"},
		{"oslo", "True"},
	})
	if err != nil {
		t.Fatal(err)
	}
	res := run(t, table, "describe_all")
	if want := []string{"count", "unique", "top", "freq"}; !reflect.DeepEqual(res.Frame.Index, want) {
		t.Fatalf("index = %v, want %v", res.Frame.Index, want)
	}
	if want := []string{"oslo", "True"}; !reflect.DeepEqual(res.Frame.Rows[2], want) {
		t.Errorf("top = %v, want %v", res.Frame.Rows[2], want)
	}
}

func TestRun_DescribeAllWithoutColumns(t *testing.T) {
	table, err := dataset.NewTable("x.csv", []string{"a"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	v := View{ID: "describe_all", run: describeAll}
	if _, err := v.Run(table); err != nil {
		t.Fatalf("one empty column should describe, got %v", err)
	}
	if _, err := describeAll(&dataset.Table{}); !errors.Is(err, ErrNoColumns) {
		t.Errorf("describeAll() error = %v, want ErrNoColumns", err)
	}
}

func TestPreview(t *testing.T) {
	table := testTable(t)
	if got := len(Preview(table, 2).Rows); got != 2 {
		t.Errorf("Preview(2) rows = %d", got)
	}
	if got := len(Preview(table, 0).Rows); got != 4 {
		t.Errorf("Preview(0) rows = %d", got)
	}
}

func TestParseSection(t *testing.T) {
	if s, ok := ParseSection("statistics"); !ok || s != Statistics {
		t.Errorf("ParseSection(statistics) = %q, %v", s, ok)
	}
	if _, ok := ParseSection("charts"); ok {
		t.Error("ParseSection(charts) reported ok")
	}
}

func TestColumnOf(t *testing.T) {
	if col, ok := ColumnOf("describe:a:b"); !ok || col != "a:b" {
		t.Errorf("ColumnOf() = %q, %v", col, ok)
	}
	if _, ok := ColumnOf("dtypes"); ok {
		t.Error("ColumnOf(dtypes) reported ok")
	}
}
