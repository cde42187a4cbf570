package record

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CoerceNumber converts a JSON number literal to int64 when it is integral,
// float64 otherwise. Falls back to the literal text if neither parses.
func CoerceNumber(n json.Number) Value {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

// Format returns the text representation of a cell value. Null renders as
// the empty string. Nested records and slices render as compact JSON so the
// output stays deterministic.
func Format(v Value) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case *Record:
		raw, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(raw)
	case []Value:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = Format(e)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(t)
	}
}
