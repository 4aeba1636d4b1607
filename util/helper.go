package util

import (
	"encoding/json"
	"math"
	"os"
	"strconv"
	"strings"
)

// used in tests
func IsRunningOnCI() bool {
	return os.Getenv("ACTION_ENVIRONMENT") == "CI"
}

func Ptr[T any](v T) *T {
	return &v
}

// quick way to a struct into another
func DeepCopy[A any](source, dest A) {
	byt, _ := json.Marshal(source)
	_ = json.Unmarshal(byt, dest)
}

// standardize the provided serial number strings
func NormalizeSerial(serial string) string {
	serial = strings.TrimSpace(serial)
	serial = strings.ReplaceAll(serial, " ", "")
	serial = strings.ReplaceAll(serial, "-", "")

	return serial
}

// returns the numeric value of v, if it is a number
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// returns the integer value of v, floats are truncated
func ToInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
	}

	f, ok := ToFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int64(f), true
}

// returns the string representation used for value maps and topics
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
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
	}

	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
