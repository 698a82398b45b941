package stats

import (
	"reflect"
	"testing"
)

func texts(ss ...string) []Value {
	out := make([]Value, len(ss))
	for i, s := range ss {
		if s == "<null>" {
			out[i] = Value{Null: true}
			continue
		}
		out[i] = Value{Text: s}
	}
	return out
}

func TestUnique(t *testing.T) {
	got := Unique(texts("b", "a", "<null>", "b", "<null>", "c"))
	want := texts("b", "a", "<null>", "c")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Unique() = %v, want %v", got, want)
	}
}

func TestMode(t *testing.T) {
	tests := []struct {
		name   string
		values []Value
		want   []Value
	}{
		{"single winner", texts("x", "y", "y"), texts("y")},
		{"ties sorted", texts("b", "a", "b", "a", "c"), texts("a", "b")},
		{"null counted", texts("<null>", "<null>", "a"), texts("<null>")},
		{"null tie sorts last", texts("<null>", "z", "a"), texts("a", "z", "<null>")},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mode(tt.values); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Mode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTop(t *testing.T) {
	top, freq, ok := Top(texts("<null>", "<null>", "<null>", "b", "a", "a", "b"))
	if !ok || top.Text != "b" || freq != 2 {
		t.Errorf("Top() = (%v, %d, %v), want (b, 2, true)", top, freq, ok)
	}

	if _, _, ok := Top(texts("<null>")); ok {
		t.Error("Top() of only nulls reported ok")
	}
}

func TestCountDistinct(t *testing.T) {
	if got := CountDistinct(texts("a", "<null>", "a", "b")); got != 2 {
		t.Errorf("CountDistinct() = %d, want 2", got)
	}
}
