package price

import (
	"math"
	"strconv"
	"strings"
)

const (
	rupee = "₹"

	// UTF-8 bytes of the rupee sign read back as Windows-1252.
	rupeeMojibake = "â‚¹"
)

// Normalize turns a raw price cell into a number. Numbers pass through,
// strings go through Parse, anything else is absent.
func Normalize(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		if math.IsNaN(x) {
			return 0, false
		}
		return x, true
	case float32:
		return Normalize(float64(x))
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case string:
		return Parse(x)
	case *string:
		if x == nil {
			return 0, false
		}
		return Parse(*x)
	case *float64:
		if x == nil {
			return 0, false
		}
		return Normalize(*x)
	default:
		return 0, false
	}
}

// Parse strips currency symbols and thousands separators and parses the rest.
func Parse(s string) (float64, bool) {
	s = strings.ReplaceAll(s, rupeeMojibake, "")
	s = strings.ReplaceAll(s, rupee, "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) {
		return 0, false
	}

	return value, true
}

// Format renders a number for CSV output. Whole
// numbers keep a trailing ".0".
func Format(value float64) string {
	switch {
	case math.IsNaN(value):
		return ""
	case math.IsInf(value, 1):
		return "inf"
	case math.IsInf(value, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatPtr is Format for optional values; nil renders as an empty cell.
func FormatPtr(value *float64) string {
	if value == nil {
		return ""
	}
	return Format(*value)
}
