package dataset

import (
	"math"
	"reflect"
	"testing"
)

func TestInferKind(t *testing.T) {
	tests := []struct {
		name        string
		values      []string
		want        Kind
		wantBoolish bool
	}{
		{"integers", []string{"1", "-2", "+3"}, KindInt, false},
		{"integers with null", []string{"1", "", "3"}, KindFloat, false},
		{"floats", []string{"1.5", "2", "3e2"}, KindFloat, false},
		{"infinity", []string{"inf", "-inf", "1"}, KindFloat, false},
		{"booleans", []string{"True", "false", "TRUE"}, KindBool, false},
		{"booleans with null", []string{"True", "NA", "False"}, KindObject, true},
		{"all null", []string{"", "NaN", "null"}, KindFloat, false},
		{"no rows", nil, KindFloat, false},
		{"text", []string{"a", "1", "True"}, KindObject, false},
		{"currency is text", []string{"$1", "$2"}, KindObject, false},
		{"thousands separator is text", []string{"1,000"}, KindObject, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, boolish := inferKind(tt.values)
			if got != tt.want {
				t.Errorf("inferKind(%q) = %s, want %s", tt.values, got, tt.want)
			}
			if boolish != tt.wantBoolish {
				t.Errorf("inferKind(%q) boolish = %v, want %v", tt.values, boolish, tt.wantBoolish)
			}
		})
	}
}

func TestIsNA(t *testing.T) {
	for _, s := range []string{"", "NA", "N/A", "NaN", "nan", "null", "NULL", "None", "#N/A", "<NA>"} {
		if !IsNA(s) {
			t.Errorf("IsNA(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"0", "none", "n.a.", " ", "-"} {
		if IsNA(s) {
			t.Errorf("IsNA(%q) = true, want false", s)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{-3, "-3.0"},
		{2.5, "2.5"},
		{0.1, "0.1"},
		{1e20, "1e+20"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "inf"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.in); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMangleHeader(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   []string
	}{
		{"unique", []string{"a", "b"}, []string{"a", "b"}},
		{"duplicates", []string{"a", "a", "a"}, []string{"a", "a.1", "a.2"}},
		{"duplicate collides with existing", []string{"a", "a.1", "a"}, []string{"a", "a.1", "a.1.1"}},
		{"blank", []string{"", "x", ""}, []string{"Unnamed: 0", "x", "Unnamed: 2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mangleHeader(tt.header); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("mangleHeader(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestNewTable(t *testing.T) {
	table, err := NewTable("people.csv",
		[]string{"name", "age", "member"},
		[][]string{
			{"ann", "31", "True"},
			{"bob", "", "False"},
			{"cy"},
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rows, cols := table.Shape(); rows != 3 || cols != 3 {
		t.Fatalf("Shape() = (%d, %d), want (3, 3)", rows, cols)
	}

	age, ok := table.Column("age")
	if !ok {
		t.Fatal("age column missing")
	}
	if age.Kind() != KindFloat {
		t.Errorf("age kind = %s, want float64", age.Kind())
	}
	if age.Count() != 1 || age.NullCount() != 2 {
		t.Errorf("age count/null = %d/%d, want 1/2", age.Count(), age.NullCount())
	}
	if got := age.Floats(); !reflect.DeepEqual(got, []float64{31}) {
		t.Errorf("age floats = %v, want [31]", got)
	}

	member, _ := table.Column("member")
	if member.Kind() != KindObject {
		t.Errorf("member kind = %s, want object (padded row adds a null)", member.Kind())
	}

	if got := table.Row(2); !reflect.DeepEqual(got, []string{"cy", "NaN", "NaN"}) {
		t.Errorf("Row(2) = %q", got)
	}

	if got := len(table.NumericColumns()); got != 1 {
		t.Errorf("NumericColumns() = %d columns, want 1", got)
	}
	if got := len(table.ObjectColumns()); got != 2 {
		t.Errorf("ObjectColumns() = %d columns, want 2", got)
	}
}

func TestNewTable_Errors(t *testing.T) {
	if _, err := NewTable("x", nil, nil); err == nil {
		t.Error("expected error for empty header")
	}
	if _, err := NewTable("x", []string{"a"}, [][]string{{"1", "2"}}); err == nil {
		t.Error("expected error for record wider than header")
	}
}

func TestTable_ColumnsIsACopy(t *testing.T) {
	table, err := NewTable("x", []string{"a", "b"}, [][]string{{"1", "2"}})
	if err != nil {
		t.Fatal(err)
	}
	cols := table.Columns()
	cols[0] = nil
	if table.Columns()[0] == nil {
		t.Error("mutating Columns() result changed the table")
	}
}
