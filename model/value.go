package model

import (
	"encoding/json"
	"math"

	ordered "gitlab.com/c0b/go-ordered-json"
)

// Converts a decoded JSON value into plain Go values
//
// Integral numbers become int64, other numbers float64, objects
// map[string]any and arrays []any
func NormalizeValue(value any) any {
	switch v := value.(type) {
	case *ordered.OrderedMap:
		result := make(map[string]any)
		iter := v.EntriesIter()
		for {
			pair, ok := iter()
			if !ok {
				break
			}
			result[pair.Key] = NormalizeValue(pair.Value)
		}
		return result
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, item := range v {
			result[key] = NormalizeValue(item)
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = NormalizeValue(item)
		}
		return result
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		f, err := v.Float64()
		if err != nil {
			return v.String()
		}
		return normalizeFloat(f)
	case float64:
		return normalizeFloat(v)
	}

	return value
}

func normalizeFloat(f float64) any {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return int64(f)
	}
	return f
}
