package client

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/schema"
	"github.com/enbility/wattpilot-go/util"
)

// convert a value to the json type declared for the property
//
// properties without a declared type are sent as provided
func (w *Wattpilot) coerceValue(key string, value any) (any, error) {
	if w.definition == nil {
		return value, nil
	}

	return CoerceValue(key, value, w.definition.JsonType(key))
}

func CoerceValue(key string, value any, jsonType string) (any, error) {
	switch jsonType {
	case schema.JsonTypeBoolean:
		return toBool(key, value)
	case schema.JsonTypeInteger:
		return toInt(key, value)
	case schema.JsonTypeFloat:
		return toFloat(key, value)
	case schema.JsonTypeString:
		return util.FormatValue(value), nil
	}

	return value, nil
}

func toBool(key string, value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes":
			return true, nil
		case "false", "0", "no":
			return false, nil
		}
		return false, api.NewPropertyError(fmt.Sprintf("Cannot convert '%s' to bool for property '%s'", v, key), nil)
	}

	if f, ok := util.ToFloat(value); ok {
		return f != 0, nil
	}

	return false, api.NewPropertyError(fmt.Sprintf("Cannot convert %T to bool for property '%s'", value, key), nil)
}

func toInt(key string, value any) (int64, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		s := strings.TrimSpace(v)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			if i, ok := util.ToInt(f); ok {
				return i, nil
			}
		}
		return 0, api.NewPropertyError(fmt.Sprintf("Cannot convert '%s' to int for property '%s'", v, key), nil)
	}

	if i, ok := util.ToInt(value); ok {
		return i, nil
	}

	return 0, api.NewPropertyError(fmt.Sprintf("Cannot convert %T to int for property '%s'", value, key), nil)
}

func toFloat(key string, value any) (float64, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, api.NewPropertyError(fmt.Sprintf("Cannot convert '%s' to float for property '%s'", v, key), err)
		}
		return f, nil
	}

	if f, ok := util.ToFloat(value); ok {
		return f, nil
	}

	return 0, api.NewPropertyError(fmt.Sprintf("Cannot convert %T to float for property '%s'", value, key), nil)
}
