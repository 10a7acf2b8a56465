package plant

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

// DefaultStat is the value substituted for a missing or invalid stat.
const DefaultStat = 50.0

// CoerceStat converts a supplied stat value to a number in [0, 100].
//
// The value is rendered to text and checked against the stat_value rule.
// Integers render bare, floats always keep a fractional part ("75.0") and
// therefore fall back to DefaultStat, json.Number keeps its literal text.
// Anything that does not pass yields DefaultStat.
func CoerceStat(v any) float64 {
	return coerceStat(validator.Default(), v)
}

func coerceStat(c *validator.Catalog, v any) float64 {
	if v == nil {
		return DefaultStat
	}
	rule, ok := c.Lookup(validator.FieldStatValue)
	if !ok {
		return DefaultStat
	}
	text := statText(v)
	if !rule.Match(text) {
		return DefaultStat
	}
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return DefaultStat
	}
	return n
}

func statText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case int:
		return strconv.Itoa(x)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x)
	case float32:
		return floatText(float64(x))
	case float64:
		return floatText(x)
	case bool:
		if x {
			return "True"
		}
		return "False"
	default:
		return fmt.Sprint(x)
	}
}

// floatText renders f with at least one fractional digit.
func floatText(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if f == math.Trunc(f) {
		s += ".0"
	}
	return s
}
