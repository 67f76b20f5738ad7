package utils

import (
	"strconv"
	"strings"
)

// ParseNumber coerces a value that may arrive as a comma-grouped string
// ("1,250,000") into a float64. Malformed input yields 0 rather than an
// error; price and area fields in the store are not uniformly typed.
func ParseNumber(value interface{}) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		return parseNumericString(v)
	case *string:
		if v == nil {
			return 0
		}
		return parseNumericString(*v)
	default:
		return 0
	}
}

func parseNumericString(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
