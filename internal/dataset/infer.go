package dataset

// infer.go decides the dtype of a column from its raw cell text, following
// the rules pandas applies when it reads a CSV or workbook with default
// options:
//
//   - Null markers (empty string, "NA", "NaN", "null", ...) become missing.
//   - Integer-only columns are int64, or float64 once a value is missing.
//   - Float-only columns are float64.
//   - True/False columns are bool, or object once a value is missing.
//   - A column with no values at all is float64.
//   - Everything else is object.

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// intRegex matches plain integer literals. Thousands separators and
// currency symbols are not accepted.
var intRegex = regexp.MustCompile(`^[+-]?\d+$`)

// floatRegex matches decimal, scientific and infinity literals.
var floatRegex = regexp.MustCompile(`^[+-]?((\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?|inf|Inf|INF|infinity|Infinity)$`)

// naValues is the default pandas set of strings read as missing.
var naValues = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

// IsNA reports whether a raw cell is read as a missing value.
func IsNA(s string) bool {
	return naValues[s]
}

// ParseBool accepts the literals pandas recognises as booleans.
func ParseBool(s string) (value, ok bool) {
	switch s {
	case "True", "TRUE", "true":
		return true, true
	case "False", "FALSE", "false":
		return false, true
	default:
		return false, false
	}
}

// ParseInt parses an integer literal that fits in 64 bits.
func ParseInt(s string) (int64, bool) {
	if !intRegex.MatchString(s) {
		return 0, false
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// ParseFloat parses a float literal, including infinities.
func ParseFloat(s string) (float64, bool) {
	if !floatRegex.MatchString(s) {
		return 0, false
	}
	lower := strings.ToLower(strings.TrimLeft(s, "+-"))
	if lower == "inf" || lower == "infinity" {
		if strings.HasPrefix(s, "-") {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// inferKind returns the dtype for a column of raw values. boolish is set for
// object columns that only hold booleans and nulls; their cells keep the
// True/False spelling.
func inferKind(raw []string) (kind Kind, boolish bool) {
	var (
		nonNull  int
		hasNull  bool
		allInt   = true
		allFloat = true
		allBool  = true
	)

	for _, s := range raw {
		if IsNA(s) {
			hasNull = true
			continue
		}
		nonNull++
		if allInt {
			if _, ok := ParseInt(s); !ok {
				allInt = false
			}
		}
		if allFloat {
			if _, ok := ParseFloat(s); !ok {
				allFloat = false
			}
		}
		if allBool {
			if _, ok := ParseBool(s); !ok {
				allBool = false
			}
		}
		if !allInt && !allFloat && !allBool {
			return KindObject, false
		}
	}

	switch {
	case nonNull == 0:
		return KindFloat, false
	case allInt && !hasNull:
		return KindInt, false
	case allInt, allFloat:
		return KindFloat, false
	case allBool && !hasNull:
		return KindBool, false
	case allBool:
		return KindObject, true
	default:
		return KindObject, false
	}
}

// makeCell converts raw text into a cell of the given kind.
// kind and boolish must come from inferKind over the same column.
func makeCell(s string, kind Kind, boolish bool) Cell {
	if IsNA(s) {
		return Cell{Null: true}
	}
	switch kind {
	case KindInt:
		i, _ := ParseInt(s)
		return Cell{Num: float64(i), Text: strconv.FormatInt(i, 10)}
	case KindFloat:
		f, _ := ParseFloat(s)
		return Cell{Num: f, Text: FormatFloat(f)}
	case KindBool:
		b, _ := ParseBool(s)
		return Cell{Bool: b, Text: boolText(b)}
	default:
		if boolish {
			b, _ := ParseBool(s)
			return Cell{Bool: b, Text: boolText(b)}
		}
		return Cell{Text: s}
	}
}

func boolText(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// FormatFloat renders a float the way Python prints it: integral values keep
// a trailing ".0", missing values print as NaN.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e16 {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
