package stats

import "sort"

// Value is one printed cell of a non-numeric column.
type Value struct {
	Text string
	Null bool
}

// Count is a value with its number of occurrences.
type Count struct {
	Value Value
	N     int
}

// ValueCounts counts occurrences in order of first appearance.
// Nulls are counted as a single value when dropNull is false.
func ValueCounts(values []Value, dropNull bool) []Count {
	index := make(map[Value]int, len(values))
	var out []Count
	for _, v := range values {
		if v.Null {
			if dropNull {
				continue
			}
			v = Value{Null: true}
		}
		if i, ok := index[v]; ok {
			out[i].N++
			continue
		}
		index[v] = len(out)
		out = append(out, Count{Value: v, N: 1})
	}
	return out
}

// Unique returns the distinct values in order of first appearance,
// with at most one null.
func Unique(values []Value) []Value {
	counts := ValueCounts(values, false)
	out := make([]Value, len(counts))
	for i, c := range counts {
		out[i] = c.Value
	}
	return out
}

// Mode returns every most-frequent value with nulls counted (dropna=False),
// sorted ascending with the null last.
func Mode(values []Value) []Value {
	counts := ValueCounts(values, false)
	best := 0
	for _, c := range counts {
		if c.N > best {
			best = c.N
		}
	}

	var out []Value
	for _, c := range counts {
		if c.N == best {
			out = append(out, c.Value)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Null != out[j].Null {
			return out[j].Null
		}
		return out[i].Text < out[j].Text
	})
	return out
}

// Top returns the most frequent non-null value and its frequency.
// Ties go to the value seen first. ok is false when there are no values.
func Top(values []Value) (top Value, freq int, ok bool) {
	for _, c := range ValueCounts(values, true) {
		if c.N > freq {
			top, freq, ok = c.Value, c.N, true
		}
	}
	return top, freq, ok
}

// CountDistinct returns the number of distinct non-null values.
func CountDistinct(values []Value) int {
	return len(ValueCounts(values, true))
}
