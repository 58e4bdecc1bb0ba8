package tabular

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// InferColumn converts the raw text cells of one column into typed values. The
// column becomes int64 when every non-empty cell is an integer, float64 when every
// non-empty cell is numeric, bool when every non-empty cell is a boolean literal
// and string otherwise. Empty cells are nil whatever the column type.
func InferColumn(raw []string) []any {
	out := make([]any, len(raw))

	switch {
	case allCells(raw, isInt):
		for i, s := range raw {
			if s != "" {
				out[i], _ = strconv.ParseInt(s, 10, 64)
			}
		}
	case allCells(raw, isFloat):
		for i, s := range raw {
			if s != "" {
				out[i], _ = strconv.ParseFloat(s, 64)
			}
		}
	case allCells(raw, isBool):
		for i, s := range raw {
			if s != "" {
				out[i] = strings.EqualFold(s, "true")
			}
		}
	default:
		for i, s := range raw {
			if s != "" {
				out[i] = s
			}
		}
	}

	return out
}

func allCells(raw []string, ok func(string) bool) bool {
	seen := false

	for _, s := range raw {
		if s == "" {
			continue
		}

		if !ok(s) {
			return false
		}

		seen = true
	}

	return seen
}

func isInt(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

func isFloat(s string) bool {
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isBool(s string) bool {
	switch s {
	case "True", "False", "true", "false", "TRUE", "FALSE":
		return true
	}

	return false
}

// FormatValue renders a cell as text. Integral floats keep one decimal ("2.0") so
// that numeric columns compare the same way they are written to CSV. Nil renders
// as the empty string.
func FormatValue(v any) string {
	switch x := Normalize(v).(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return formatFloat(x)
	case bool:
		if x {
			return "True"
		}

		return "False"
	default:
		return toString(x)
	}
}

func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return ""
	}

	if f == math.Trunc(f) && math.Abs(f) < 1e16 {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Normalize widens Go scalar types to the set used in records: int64, float64,
// bool, string and nil. Unsigned values above math.MaxInt64 stay uint64.
func Normalize(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint:
		return widenUnsigned(uint64(x))
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return widenUnsigned(x)
	case float32:
		return float64(x)
	case *string:
		if x == nil {
			return nil
		}

		return *x
	case *int:
		if x == nil {
			return nil
		}

		return int64(*x)
	case *float64:
		if x == nil {
			return nil
		}

		return *x
	default:
		return v
	}
}

// AsFloat returns the numeric value of v. Strings are parsed; anything else that
// is not a number reports false.
func AsFloat(v any) (float64, bool) {
	switch x := Normalize(v).(type) {
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float64:
		return x, !math.IsNaN(x)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// AsInt returns the integral value of v when it has one.
func AsInt(v any) (int64, bool) {
	switch x := Normalize(v).(type) {
	case int64:
		return x, true
	case float64:
		if x == math.Trunc(x) {
			return int64(x), true
		}
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		return i, err == nil
	}

	return 0, false
}

func widenUnsigned(u uint64) any {
	if u > math.MaxInt64 {
		return u
	}

	return int64(u)
}

func toString(v any) string {
	return fmt.Sprint(v)
}
